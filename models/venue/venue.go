package venue

import (
	"fmt"

	"github.com/Patrick-M8/tabelog-map/models/hours"
)

// Category pairs the Japanese and English labels of a cuisine category.
type Category struct {
	JP string `json:"jp,omitempty"`
	EN string `json:"en,omitempty"`
}

// RatingSource is one review source's score and volume.
type RatingSource struct {
	Score   *float64 `json:"score"`
	Reviews int      `json:"reviews,omitempty"`
}

// Ratings groups the per-source review scores of a venue.
type Ratings struct {
	Tabelog RatingSource `json:"tabelog"`
	Google  RatingSource `json:"google"`
}

// Price carries the parsed yen price bands of a venue.
type Price struct {
	DinnerRaw  string `json:"dinner_raw,omitempty"`
	LunchRaw   string `json:"lunch_raw,omitempty"`
	DinnerLo   *int   `json:"dinner_lo"`
	DinnerHi   *int   `json:"dinner_hi"`
	LunchLo    *int   `json:"lunch_lo"`
	LunchHi    *int   `json:"lunch_hi"`
	Bucket     int    `json:"bucket"`
	MinForSort *int   `json:"min_for_sort"`
}

// URLs groups the venue's external links.
type URLs struct {
	Tabelog string `json:"tabelog,omitempty"`
	Google  string `json:"google,omitempty"`
}

// Hours bundles the weekly schedule with its precomputed display strings.
// OpenNow is the evaluation snapshot taken at build time; it goes stale and
// the serving layer always re-evaluates live instead of reading it.
type Hours struct {
	Weekly       *hours.WeeklySchedule   `json:"weekly"`
	TodayCompact string                  `json:"today_compact,omitempty"`
	WeekCompact  string                  `json:"week_compact,omitempty"`
	OpenNow      *hours.EvaluationResult `json:"open_now,omitempty"`
	PolicyChips  []string                `json:"policy_chips,omitempty"`
}

// SortKeys are the comparison keys merged into sortable feature
// properties. OpenRank is a coarse two-tier partition: open venues
// outrank closed ones regardless of the other fields.
type SortKeys struct {
	OpenRank      int      `json:"open_rank"`
	ClosesInMin   *int     `json:"closes_in_min"`
	PriceMin      *int     `json:"price_min"`
	RatingTabelog *float64 `json:"rating_tabelog"`
	RatingGoogle  *float64 `json:"rating_google"`
}

// Venue is one built venue record: the typed form produced by the ingest
// boundary and stored in Redis. Each venue owns exactly one WeeklySchedule.
type Venue struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameLocal     string   `json:"name_local,omitempty"`
	Region        string   `json:"region,omitempty"`
	Area          string   `json:"area,omitempty"`
	Category      Category `json:"category"`
	CategoryKey   string   `json:"category_key"`
	SubCategories []string `json:"sub_categories,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	URLs          URLs     `json:"urls"`
	Address       string   `json:"address,omitempty"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	Ratings       Ratings  `json:"ratings"`
	HasGoogle     bool     `json:"has_google"`
	Price         Price    `json:"price"`
	Hours         Hours    `json:"hours"`
	SortKeys      SortKeys `json:"sort_keys"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, lat=%f, lng=%f)",
		v.ID, v.Name, v.Lat, v.Lng)
}

// WeeklySchedule returns the venue's schedule, which may be nil for venues
// whose hours never parsed. Callers treat nil as closed all day.
func (v *Venue) WeeklySchedule() *hours.WeeklySchedule {
	if v == nil {
		return nil
	}
	return v.Hours.Weekly
}
