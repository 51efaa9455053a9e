package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Patrick-M8/tabelog-map/clock"
	redisdao "github.com/Patrick-M8/tabelog-map/dao/redis"
	"github.com/Patrick-M8/tabelog-map/db"
	"github.com/Patrick-M8/tabelog-map/models/hours"
	"github.com/Patrick-M8/tabelog-map/models/venue"
	services "github.com/Patrick-M8/tabelog-map/service"
)

func newTestHandler(t *testing.T, venues ...*venue.Venue) *VenueHandler {
	t.Helper()
	dao := redisdao.NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
	for _, v := range venues {
		require.NoError(t, dao.UpsertVenue(v))
	}
	clk := clock.MockClock{Reading: clock.CivilTime{WeekdayIdx: 0, Hour: 12, Minute: 0}}
	return NewVenueHandler(services.NewVenueService(dao, clk))
}

func mondayLunchVenue(id string) *venue.Venue {
	return &venue.Venue{
		ID:  id,
		Lat: 35.65,
		Lng: 139.70,
		Hours: venue.Hours{
			Weekly: &hours.WeeklySchedule{
				Mon: hours.DaySegments{{Open: "11:00", Close: "14:00"}},
			},
			WeekCompact: "Mon 11:00–14:00; Tue–Sun closed",
		},
	}
}

func TestGetVenuesNearby_CompactByDefault(t *testing.T) {
	h := newTestHandler(t, mondayLunchVenue("v-1"))

	req := httptest.NewRequest(http.MethodGet, "/v1/venues/nearby?lat=35.65&lon=139.70&radius=2", nil)
	rec := httptest.NewRecorder()
	h.GetVenuesNearby(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []services.VenueWithStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.True(t, got[0].OpenNow.IsOpen())
	assert.Equal(t, "11:00–14:00", got[0].Venue.Hours.TodayCompact)
	assert.Nil(t, got[0].Venue.Hours.Weekly, "weekly grid is opt-in")
	assert.Empty(t, got[0].Venue.Hours.WeekCompact)
}

func TestGetVenuesNearby_Verbose(t *testing.T) {
	h := newTestHandler(t, mondayLunchVenue("v-1"))

	req := httptest.NewRequest(http.MethodGet, "/v1/venues/nearby?lat=35.65&lon=139.70&radius=2&verbose=true", nil)
	rec := httptest.NewRecorder()
	h.GetVenuesNearby(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []services.VenueWithStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Venue.Hours.Weekly)
	assert.Len(t, got[0].Venue.Hours.Weekly.Mon, 1)
	assert.NotEmpty(t, got[0].Venue.Hours.WeekCompact)
}

func TestGetVenuesNearby_BadArgs(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/venues/nearby?lat=abc&lon=139.70&radius=2", nil)
	rec := httptest.NewRecorder()
	h.GetVenuesNearby(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetVenue(t *testing.T) {
	h := newTestHandler(t, mondayLunchVenue("v-1"))

	muxRouter := mux.NewRouter()
	muxRouter.HandleFunc("/v1/venues/{id}", h.GetVenue)

	req := httptest.NewRequest(http.MethodGet, "/v1/venues/v-1", nil)
	rec := httptest.NewRecorder()
	muxRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got services.VenueWithStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "v-1", got.Venue.ID)
	assert.True(t, got.OpenNow.IsOpen())
}

func TestGetVenue_NotFound(t *testing.T) {
	h := newTestHandler(t)

	muxRouter := mux.NewRouter()
	muxRouter.HandleFunc("/v1/venues/{id}", h.GetVenue)

	req := httptest.NewRequest(http.MethodGet, "/v1/venues/missing", nil)
	rec := httptest.NewRecorder()
	muxRouter.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPing(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Ping(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pong", body["status"])
}
