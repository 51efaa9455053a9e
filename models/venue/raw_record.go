package venue

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// HoursEntry is one raw opening-hours row as scraped: a day title
// ("Mon", "Sat, Sun", "Public Holiday") and the detail text holding the
// time ranges. The scraper emitted the fields under a few different names
// over time, so all aliases are read.
type HoursEntry struct {
	Title     string `json:"title,omitempty"`
	ListTitle string `json:"list_title,omitempty"`
	Dtl       string `json:"dtl,omitempty"`
	DtlText   string `json:"dtl_text,omitempty"`
	DtlTextV2 string `json:"dtlText,omitempty"`
}

// DayTitle returns whichever title alias is present.
func (e HoursEntry) DayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return e.ListTitle
}

// Detail returns whichever detail-text alias is present.
func (e HoursEntry) Detail() string {
	if e.Dtl != "" {
		return e.Dtl
	}
	if e.DtlText != "" {
		return e.DtlText
	}
	return e.DtlTextV2
}

// HoursNotes is the structured notes block scraped alongside the hours
// table.
type HoursNotes struct {
	ClosedOn string `json:"closed_on,omitempty"`
}

// FlexFloat reads a JSON number, a numeric string, or null into an
// optional float. The scraper wrote ratings as either form depending on
// the page layout it hit.
type FlexFloat struct {
	Value *float64
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		f.Value = nil
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			f.Value = nil
			return nil
		}
		f.Value = &v
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("flex float: %w", err)
	}
	f.Value = &v
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}

// RawRecord is one venue as produced by the external scraping pipeline.
// The ingest boundary validates it once into a typed Venue; nothing past
// that boundary touches these loosely-shaped fields again.
type RawRecord struct {
	PlaceID       string       `json:"place_id,omitempty"`
	URL           string       `json:"url,omitempty"`
	GoogleMapsURL string       `json:"google_maps_url,omitempty"`
	Name          string       `json:"name,omitempty"`
	NameEN        string       `json:"name_en,omitempty"`
	Region        string       `json:"region,omitempty"`
	Area          string       `json:"area,omitempty"`
	CategoryJP    string       `json:"category_jp,omitempty"`
	CategoryEN    string       `json:"category_en,omitempty"`
	SubCategories string       `json:"sub_categories,omitempty"`
	ImageURL      string       `json:"image_url,omitempty"`
	Rating        FlexFloat    `json:"rating"`
	ReviewCount   int          `json:"review_count_tabelog,omitempty"`
	GoogleRating  FlexFloat    `json:"google_rating"`
	GRating       FlexFloat    `json:"g_rating"`
	GoogleReviews int          `json:"google_reviews,omitempty"`
	GReviews      int          `json:"g_reviews,omitempty"`
	GAddress      string       `json:"g_address,omitempty"`
	Lat           *float64     `json:"lat"`
	Lng           *float64     `json:"lng"`
	PriceDinner   string       `json:"price_dinner,omitempty"`
	PriceLunch    string       `json:"price_lunch,omitempty"`
	HoursRaw      []HoursEntry `json:"hours_raw,omitempty"`
	HoursNotes    *HoursNotes  `json:"hours_notes_structured,omitempty"`
}

// BestGoogleRating resolves the two google rating aliases.
func (r *RawRecord) BestGoogleRating() *float64 {
	if r.GoogleRating.Value != nil {
		return r.GoogleRating.Value
	}
	return r.GRating.Value
}

// BestGoogleReviews resolves the two google review-count aliases.
func (r *RawRecord) BestGoogleReviews() int {
	if r.GoogleReviews != 0 {
		return r.GoogleReviews
	}
	return r.GReviews
}
