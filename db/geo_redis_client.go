package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// GeoRedisClient backs the venue store with a real Redis: GEOADD for the
// spatial index and a plain key per member for the JSON payload.
type GeoRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewGeoRedisClient wraps an already-configured go-redis client.
func NewGeoRedisClient(ctx context.Context, client *redis.Client) *GeoRedisClient {
	return &GeoRedisClient{
		client: client,
		ctx:    ctx,
	}
}

func (r *GeoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

func (r *GeoRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

func (r *GeoRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *GeoRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// AddLocationWithJSON stores a member in the geo index and its JSON
// payload under the member key, so radius queries can resolve payloads.
func (r *GeoRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON for %s: %w", memberKey, err)
	}

	if _, err := r.client.GeoAdd(ctx, geoKey, &redis.GeoLocation{
		Name:      memberKey,
		Latitude:  lat,
		Longitude: lng,
	}).Result(); err != nil {
		return fmt.Errorf("failed to add geolocation for %s: %w", memberKey, err)
	}

	if err := r.client.Set(ctx, memberKey, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to set JSON data for %s: %w", memberKey, err)
	}
	return nil
}

// GetLocationsWithinRadius returns the JSON payload of every member
// within radiusKM of the point. Members whose payload went missing are
// skipped, not fatal.
func (r *GeoRedisClient) GetLocationsWithinRadius(geoKey string, lat, lng, radiusKM float64) ([]string, error) {
	results, err := r.client.GeoRadius(r.ctx, geoKey, lng, lat, &redis.GeoRadiusQuery{
		Radius: radiusKM,
		Unit:   "km",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query geo radius on %s: %w", geoKey, err)
	}

	var payloads []string
	for _, loc := range results {
		data, err := r.client.Get(r.ctx, loc.Name).Result()
		if err != nil {
			log.Printf("[GeoRedisClient] Skipping member %s: %v", loc.Name, err)
			continue
		}
		payloads = append(payloads, data)
	}
	return payloads, nil
}

func (r *GeoRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *GeoRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
