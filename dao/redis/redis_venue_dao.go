package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/Patrick-M8/tabelog-map/db"
	"github.com/Patrick-M8/tabelog-map/models/venue"
)

const VENUES_GEO_KEY_V1 = "tabelog_venues_geo_v1"
const VENUE_MEMBER_FORMAT_V1 = "tabelog_venue_v1:%s"

// RedisVenueDAO stores built venues in Redis: each venue sits in one geo
// index plus one JSON value keyed by its member name.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

// UpsertVenue stores the venue as a geolocation with the venue's JSON data.
func (dao *RedisVenueDAO) UpsertVenue(v *venue.Venue) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(VENUE_MEMBER_FORMAT_V1, v.ID)
	if err := dao.client.AddLocationWithJSON(ctx, VENUES_GEO_KEY_V1, memberKey, v.Lat, v.Lng, v); err != nil {
		return fmt.Errorf("failed to upsert venue %s: %w", v.ID, err)
	}
	return nil
}

// GetVenue retrieves one venue by its ID.
func (dao *RedisVenueDAO) GetVenue(venueID string) (*venue.Venue, error) {
	key := fmt.Sprintf(VENUE_MEMBER_FORMAT_V1, venueID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue %s: %w", venueID, err)
	}
	var v venue.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue %s: %w", venueID, err)
	}
	return &v, nil
}

// GetNearbyVenues retrieves the venues within a given radius in km.
// A venue whose stored JSON no longer parses is skipped so one bad record
// never hides the rest.
func (dao *RedisVenueDAO) GetNearbyVenues(lat, lng, radiusKM float64) ([]venue.Venue, error) {
	payloads, err := dao.client.GetLocationsWithinRadius(VENUES_GEO_KEY_V1, lat, lng, radiusKM)
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby venues: %w", err)
	}

	venues := make([]venue.Venue, 0, len(payloads))
	for _, payload := range payloads {
		var v venue.Venue
		if err := json.Unmarshal([]byte(payload), &v); err != nil {
			log.Printf("[RedisVenueDAO] Skipping unparseable venue record: %v", err)
			continue
		}
		venues = append(venues, v)
	}
	return venues, nil
}

// ListAllVenueIDs returns all venue IDs present in the store.
func (dao *RedisVenueDAO) ListAllVenueIDs() ([]string, error) {
	pattern := fmt.Sprintf(VENUE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue keys: %w", err)
	}
	prefix := fmt.Sprintf(VENUE_MEMBER_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteVenue removes the venue's JSON payload. The geo index entry is
// left behind; radius reads skip members without payloads.
func (dao *RedisVenueDAO) DeleteVenue(venueID string) error {
	key := fmt.Sprintf(VENUE_MEMBER_FORMAT_V1, venueID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete venue key %s: %w", key, err)
	}
	return nil
}
