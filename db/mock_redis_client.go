package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// MockRedisClient is an in-memory RedisClient for tests.
type MockRedisClient struct {
	data    map[string]string
	geoData map[string]map[string]GeoPoint
	mu      sync.RWMutex
	ctx     context.Context
}

// GeoPoint is one indexed coordinate pair.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// NewMockRedisClient initializes an empty in-memory store.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		geoData: make(map[string]map[string]GeoPoint),
		ctx:     ctx,
	}
}

func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	for _, members := range m.geoData {
		delete(members, key)
	}
	return nil
}

// Keys supports the one pattern shape the DAO uses: a literal prefix
// followed by "*".
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoPoint)
	}
	m.geoData[geoKey][memberKey] = GeoPoint{Latitude: lat, Longitude: lng}
	m.data[memberKey] = string(jsonData)
	return nil
}

// GetLocationsWithinRadius returns every indexed member's payload; the
// mock does not model distance.
func (m *MockRedisClient) GetLocationsWithinRadius(geoKey string, lat, lng, radiusKM float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	members, exists := m.geoData[geoKey]
	if !exists {
		return nil, nil
	}
	var results []string
	for memberKey := range members {
		if data, ok := m.data[memberKey]; ok {
			results = append(results, data)
		}
	}
	return results, nil
}

func (m *MockRedisClient) GetContext() context.Context {
	return m.ctx
}

func (m *MockRedisClient) Ping() error {
	return nil
}
