package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Patrick-M8/tabelog-map/models/venue"
)

func f64P(v float64) *float64 { return &v }

func fullRawRecord() *venue.RawRecord {
	return &venue.RawRecord{
		PlaceID:       "ChIJtest",
		URL:           "https://tabelog.com/tokyo/A1303/A130301/13001234/",
		GoogleMapsURL: "https://maps.google.com/?cid=42",
		Name:          "麺屋一燈",
		NameEN:        "Menya Itto",
		Region:        "tokyo",
		Area:          "Shinjuku",
		CategoryJP:    "ラーメン",
		SubCategories: "つけ麺, 油そば",
		Rating:        venue.FlexFloat{Value: f64P(3.7)},
		ReviewCount:   812,
		GRating:       venue.FlexFloat{Value: f64P(4.4)},
		GReviews:      1500,
		GAddress:      "1-2-3 Kabukicho, Shinjuku",
		Lat:           f64P(35.6938),
		Lng:           f64P(139.7034),
		PriceDinner:   "￥1,000～￥1,999",
		HoursRaw: []venue.HoursEntry{
			{Title: "Mon-Fri", Dtl: "11:00-14:00 (L.O. 13:30) 17:00-22:00"},
			{Title: "Sat, Sun", Dtl: "Closed"},
		},
	}
}

func TestBuildVenue(t *testing.T) {
	v, err := BuildVenue(fullRawRecord())
	require.NoError(t, err)

	assert.Equal(t, "ChIJtest", v.ID)
	assert.Equal(t, "Menya Itto", v.Name)
	assert.Equal(t, "麺屋一燈", v.NameLocal)
	assert.Equal(t, venue.Category{JP: "ラーメン", EN: "Ramen"}, v.Category)
	assert.Equal(t, "ramen", v.CategoryKey)
	assert.Equal(t, []string{"つけ麺", "油そば"}, v.SubCategories)
	assert.Equal(t, "1-2-3 Kabukicho, Shinjuku", v.Address)
	assert.Equal(t, 35.6938, v.Lat)

	require.NotNil(t, v.Ratings.Tabelog.Score)
	assert.Equal(t, 3.7, *v.Ratings.Tabelog.Score)
	require.NotNil(t, v.Ratings.Google.Score)
	assert.Equal(t, 4.4, *v.Ratings.Google.Score)
	assert.Equal(t, 1500, v.Ratings.Google.Reviews)
	assert.True(t, v.HasGoogle)

	assert.Equal(t, 2, v.Price.Bucket)

	require.NotNil(t, v.Hours.Weekly)
	require.Len(t, v.Hours.Weekly.Mon, 2)
	assert.Equal(t, "11:00", v.Hours.Weekly.Mon[0].Open)
	assert.Empty(t, v.Hours.Weekly.Sat)
	assert.Contains(t, v.Hours.WeekCompact, "Mon–Fri")
	assert.Contains(t, v.Hours.WeekCompact, "Sat, Sun closed")

	assert.Nil(t, v.Hours.OpenNow, "open state is attached at serve time, not build time")
	assert.Empty(t, v.Hours.TodayCompact)
}

func TestBuildVenue_NoCoordinates(t *testing.T) {
	rec := fullRawRecord()
	rec.Lat = nil

	_, err := BuildVenue(rec)
	assert.ErrorIs(t, err, ErrNoCoordinates)
}

func TestBuildVenue_IDFallsBackToURL(t *testing.T) {
	rec := fullRawRecord()
	rec.PlaceID = ""

	v, err := BuildVenue(rec)
	require.NoError(t, err)
	assert.Equal(t, rec.URL, v.ID)
}

func TestBuildVenue_NoID(t *testing.T) {
	rec := fullRawRecord()
	rec.PlaceID = ""
	rec.URL = ""

	_, err := BuildVenue(rec)
	assert.ErrorIs(t, err, ErrNoID)
}

func TestBuildVenue_UnparseableHoursStillBuilds(t *testing.T) {
	rec := fullRawRecord()
	rec.HoursRaw = []venue.HoursEntry{{Title: "Mon", Dtl: "ask the staff"}}

	v, err := BuildVenue(rec)
	require.NoError(t, err)
	assert.Empty(t, v.Hours.Weekly.Mon, "unparseable detail text leaves the day closed")
}
