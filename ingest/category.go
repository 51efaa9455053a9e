package ingest

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/Patrick-M8/tabelog-map/models/venue"
)

// jpToEN maps the tabelog Japanese category labels to their English
// display labels.
var jpToEN = map[string]string{
	"そば":            "Soba",
	"カフェ":           "Cafe",
	"洋食":            "Western Food",
	"フレンチ":          "French",
	"創作料理・イノベーティブ":  "Creative Cuisine/Innovative",
	"イタリアン":         "Italian",
	"ピザ":            "Pizza",
	"日本料理":          "Japanese",
	"天ぷら":           "Tempura",
	"寿司":            "Sushi",
	"ラーメン":          "Ramen",
	"焼き鳥":           "Yakitori",
	"焼肉":            "Yakiniku",
	"居酒屋":           "Izakaya",
	"食堂":            "Shokudo (Japanese Diner)",
	"すき焼き・しゃぶしゃぶ":   "Sukiyaki, Shabushabu",
	"スペイン料理":        "Spanish",
	"カレー":           "Curry",
	"アジア・エスニック":     "Asian Ethnic",
	"うなぎ":           "Unagi",
	"餃子":            "Gyoza",
	"中華料理":          "Chinese",
	"お好み焼き":         "Okonomiyaki",
	"ステーキ・鉄板焼き":     "Steak, Teppanyaki",
	"とんかつ":          "Tonkatsu",
	"ハンバーガー":        "Hamburger",
	"うどん":           "Udon",
	"和菓子・甘味処":       "Wagashi",
	"スイーツ":          "Sweets",
	"アイス・ジェラート":     "Ice Cream & Gelato",
	"バー":            "Bar",
	"パン":            "Bakery",
	"立ち飲み":          "Standing Bar",
}

var slugSepRE = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Slugify folds a display label into a stable ASCII key: NFKD
// decomposition, ASCII-only, non-alphanumerics collapsed to underscores.
func Slugify(label string) string {
	if label == "" {
		return "unknown"
	}
	decomposed := norm.NFKD.String(label)
	var ascii strings.Builder
	for _, r := range decomposed {
		if r < unicode.MaxASCII {
			ascii.WriteRune(r)
		}
	}
	slug := slugSepRE.ReplaceAllString(ascii.String(), "_")
	slug = strings.ToLower(strings.Trim(slug, "_"))
	if slug == "" {
		return "unknown"
	}
	return slug
}

// DeriveCategory resolves the category labels of a record, filling
// whichever side is missing from the mapping table, and returns the
// category plus its slug key.
func DeriveCategory(rec *venue.RawRecord) (venue.Category, string) {
	jp, en := rec.CategoryJP, rec.CategoryEN
	if jp != "" && en == "" {
		en = jpToEN[jp]
	}
	if en != "" && jp == "" {
		for k, v := range jpToEN {
			if v == en {
				jp = k
				break
			}
		}
	}
	if jp == "" && en == "" {
		return venue.Category{}, "unknown"
	}
	labelEN := en
	if labelEN == "" {
		labelEN = jpToEN[jp]
	}
	if labelEN == "" {
		labelEN = "Unknown"
	}
	return venue.Category{JP: jp, EN: labelEN}, Slugify(labelEN)
}
