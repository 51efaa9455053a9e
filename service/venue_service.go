package services

import (
	"log"
	"sort"

	"github.com/Patrick-M8/tabelog-map/clock"
	redisdao "github.com/Patrick-M8/tabelog-map/dao/redis"
	"github.com/Patrick-M8/tabelog-map/models/hours"
	"github.com/Patrick-M8/tabelog-map/models/venue"
	"github.com/Patrick-M8/tabelog-map/schedule"
)

// VenueWithStatus pairs a stored venue with its live evaluation. The
// evaluation is computed fresh on every request; the open_now snapshot
// stored at build time is never served.
type VenueWithStatus struct {
	Venue      venue.Venue            `json:"venue"`
	OpenNow    hours.EvaluationResult `json:"open_now"`
	NextChange string                 `json:"next_change"`
}

// VenueService loads venues from the store and attaches live open/closed
// state against the configured civil timezone.
type VenueService struct {
	venueDao *redisdao.RedisVenueDAO
	clk      clock.Clock
}

// NewVenueService constructs a VenueService with its dependencies.
func NewVenueService(venueDao *redisdao.RedisVenueDAO, clk clock.Clock) *VenueService {
	return &VenueService{
		venueDao: venueDao,
		clk:      clk,
	}
}

// GetVenuesNearby returns the venues within radiusKM of the point,
// evaluated live and sorted open-first, soonest-closing first.
func (vs *VenueService) GetVenuesNearby(lat, lng, radiusKM float64, openOnly bool) ([]VenueWithStatus, error) {
	venues, err := vs.venueDao.GetNearbyVenues(lat, lng, radiusKM)
	if err != nil {
		return nil, err
	}
	return vs.evaluateAndSort(venues, openOnly), nil
}

// GetVenue returns one venue with its live evaluation.
func (vs *VenueService) GetVenue(venueID string) (*VenueWithStatus, error) {
	v, err := vs.venueDao.GetVenue(venueID)
	if err != nil {
		return nil, err
	}
	now, clockOK := vs.now()
	vws := vs.evaluate(*v, now, clockOK)
	return &vws, nil
}

// ListAllVenueIDs exposes the stored venue IDs.
func (vs *VenueService) ListAllVenueIDs() ([]string, error) {
	return vs.venueDao.ListAllVenueIDs()
}

func (vs *VenueService) now() (clock.CivilTime, bool) {
	now, err := vs.clk.Now()
	if err != nil {
		// Clock failure degrades every venue to closed with no
		// countdowns rather than failing the request.
		log.Printf("[VenueService] Clock read failed: %v", err)
		return clock.CivilTime{}, false
	}
	return now, true
}

func (vs *VenueService) evaluate(v venue.Venue, now clock.CivilTime, clockOK bool) VenueWithStatus {
	res := hours.Closed()
	if clockOK {
		res = schedule.Evaluate(v.Hours.Weekly, now)
		v.Hours.TodayCompact = schedule.CompactToday(v.Hours.Weekly, now.WeekdayIdx)
	}
	v.Hours.OpenNow = nil // stale build-time snapshot, never served
	v.SortKeys = schedule.RankKeys(res, v.Price, v.Ratings)
	return VenueWithStatus{
		Venue:      v,
		OpenNow:    res,
		NextChange: schedule.FormatNextChange(res),
	}
}

func (vs *VenueService) evaluateAndSort(venues []venue.Venue, openOnly bool) []VenueWithStatus {
	now, clockOK := vs.now()
	out := make([]VenueWithStatus, 0, len(venues))
	for _, v := range venues {
		vws := vs.evaluate(v, now, clockOK)
		if openOnly && !vws.OpenNow.IsOpen() {
			continue
		}
		out = append(out, vws)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return schedule.Less(&out[i].Venue, &out[j].Venue)
	})
	return out
}
