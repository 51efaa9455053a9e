package db

import "context"

// RedisClient is the storage surface the venue DAO needs: plain key-value
// plus a geo index whose members carry JSON payloads.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error
	GetLocationsWithinRadius(geoKey string, lat, lng, radiusKM float64) ([]string, error)
	GetContext() context.Context
	Ping() error
}
