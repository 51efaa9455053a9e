package ingest

import (
	"errors"
	"strings"

	"github.com/Patrick-M8/tabelog-map/models/venue"
	"github.com/Patrick-M8/tabelog-map/schedule"
)

// ErrNoCoordinates marks records the geocoder never resolved; they cannot
// appear on the map and are skipped, not failed.
var ErrNoCoordinates = errors.New("record has no coordinates")

// ErrNoID marks records with neither a place ID nor a source URL.
var ErrNoID = errors.New("record has no usable id")

// BuildVenue validates one raw record into a typed venue. Hours, price
// and category parsing are all tolerant: what cannot be parsed is left
// empty rather than failing the record. Live evaluation state (open-now,
// today line, sort keys) is attached later by the serving layer.
func BuildVenue(rec *venue.RawRecord) (*venue.Venue, error) {
	if rec.Lat == nil || rec.Lng == nil {
		return nil, ErrNoCoordinates
	}
	id := rec.PlaceID
	if id == "" {
		id = rec.URL
	}
	if id == "" {
		return nil, ErrNoID
	}

	weekly, exceptions := BuildSchedule(rec.HoursRaw, rec.HoursNotes)
	category, categoryKey := DeriveCategory(rec)

	name := rec.NameEN
	if name == "" {
		name = rec.Name
	}
	address := rec.GAddress
	if address == "" {
		address = rec.Area
	}

	googleScore := rec.BestGoogleRating()

	v := &venue.Venue{
		ID:            id,
		Name:          name,
		NameLocal:     rec.Name,
		Region:        rec.Region,
		Area:          rec.Area,
		Category:      category,
		CategoryKey:   categoryKey,
		SubCategories: splitSubCategories(rec.SubCategories),
		ImageURL:      rec.ImageURL,
		URLs: venue.URLs{
			Tabelog: rec.URL,
			Google:  rec.GoogleMapsURL,
		},
		Address: address,
		Lat:     *rec.Lat,
		Lng:     *rec.Lng,
		Ratings: venue.Ratings{
			Tabelog: venue.RatingSource{Score: rec.Rating.Value, Reviews: rec.ReviewCount},
			Google:  venue.RatingSource{Score: googleScore, Reviews: rec.BestGoogleReviews()},
		},
		HasGoogle: googleScore != nil,
		Price:     ChoosePrice(rec),
	}
	v.Hours = venue.Hours{
		Weekly:      weekly,
		WeekCompact: schedule.WeekCompact(weekly),
		PolicyChips: PolicyChips(exceptions.Policies),
	}
	return v, nil
}

func splitSubCategories(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
