package redis

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Patrick-M8/tabelog-map/db"
	"github.com/Patrick-M8/tabelog-map/models/venue"
)

func testVenue(id, name string, lat, lng float64) *venue.Venue {
	return &venue.Venue{ID: id, Name: name, Lat: lat, Lng: lng}
}

func TestUpsertAndGetVenue(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(client)

	stored := testVenue("v-1", "Menya Itto", 35.6595, 139.7005)
	require.NoError(t, dao.UpsertVenue(stored))

	got, err := dao.GetVenue("v-1")
	require.NoError(t, err)
	assert.Equal(t, "v-1", got.ID)
	assert.Equal(t, "Menya Itto", got.Name)
	assert.Equal(t, 35.6595, got.Lat)
}

func TestGetVenue_NotFound(t *testing.T) {
	dao := NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))

	_, err := dao.GetVenue("missing")
	assert.Error(t, err)
}

func TestUpsertVenue_Overwrites(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(client)

	require.NoError(t, dao.UpsertVenue(testVenue("v-1", "Old Name", 35.0, 139.0)))
	require.NoError(t, dao.UpsertVenue(testVenue("v-1", "New Name", 35.0, 139.0)))

	got, err := dao.GetVenue("v-1")
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
}

func TestGetNearbyVenues(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(client)

	require.NoError(t, dao.UpsertVenue(testVenue("v-1", "Venue One", 35.65, 139.70)))
	require.NoError(t, dao.UpsertVenue(testVenue("v-2", "Venue Two", 35.66, 139.71)))

	venues, err := dao.GetNearbyVenues(35.65, 139.70, 2.0)
	require.NoError(t, err)
	require.Len(t, venues, 2)

	ids := []string{venues[0].ID, venues[1].ID}
	sort.Strings(ids)
	assert.Equal(t, []string{"v-1", "v-2"}, ids)
}

func TestGetNearbyVenues_SkipsUnparseableRecord(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(client)

	require.NoError(t, dao.UpsertVenue(testVenue("v-1", "Good", 35.65, 139.70)))
	require.NoError(t, dao.UpsertVenue(testVenue("v-2", "Corrupted", 35.66, 139.71)))
	require.NoError(t, client.Set(fmt.Sprintf(VENUE_MEMBER_FORMAT_V1, "v-2"), "{not json"))

	venues, err := dao.GetNearbyVenues(35.65, 139.70, 2.0)
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "v-1", venues[0].ID)
}

func TestListAllVenueIDs(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(client)

	require.NoError(t, dao.UpsertVenue(testVenue("v-1", "One", 35.0, 139.0)))
	require.NoError(t, dao.UpsertVenue(testVenue("v-2", "Two", 35.1, 139.1)))

	ids, err := dao.ListAllVenueIDs()
	require.NoError(t, err)
	sort.Strings(ids)
	assert.Equal(t, []string{"v-1", "v-2"}, ids)
}

func TestDeleteVenue(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(client)

	require.NoError(t, dao.UpsertVenue(testVenue("v-1", "One", 35.0, 139.0)))
	require.NoError(t, dao.DeleteVenue("v-1"))

	_, err := dao.GetVenue("v-1")
	assert.Error(t, err)

	// The payload is gone, so radius reads no longer return the member.
	venues, err := dao.GetNearbyVenues(35.0, 139.0, 2.0)
	require.NoError(t, err)
	assert.Empty(t, venues)
}
