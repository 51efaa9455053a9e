// Package geojson holds the static map payload types: per-category
// feature collections, the category manifest, and the centroid index the
// frontend uses for cheap far-zoom rendering.
package geojson

import (
	"fmt"
	"strconv"

	"github.com/Patrick-M8/tabelog-map/models/venue"
)

// Geometry is a GeoJSON point, coordinates ordered [lng, lat].
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Feature is one venue feature. The venue record itself is the property
// bag; its sort_keys and hours blocks are what the map layer consumes.
type Feature struct {
	Type       string       `json:"type"`
	Geometry   Geometry     `json:"geometry"`
	Properties *venue.Venue `json:"properties"`
}

// FeatureCollection is one category's venue set.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// ManifestItem describes one built category file.
type ManifestItem struct {
	Key   string      `json:"key"`
	Label string      `json:"label"`
	URL   string      `json:"url"`
	Count int         `json:"count"`
	BBox  *BoundingBox `json:"bbox"`
}

// Manifest indexes every category payload for the frontend loader.
type Manifest struct {
	Categories []ManifestItem `json:"categories"`
}

// BoundingBox is [minLng, minLat, maxLng, maxLat].
type BoundingBox [4]float64

// NewBoundingBox starts a box at a single point.
func NewBoundingBox(lng, lat float64) *BoundingBox {
	return &BoundingBox{lng, lat, lng, lat}
}

// Extend grows the box to include the point.
func (b *BoundingBox) Extend(lng, lat float64) {
	if lng < b[0] {
		b[0] = lng
	}
	if lat < b[1] {
		b[1] = lat
	}
	if lng > b[2] {
		b[2] = lng
	}
	if lat > b[3] {
		b[3] = lat
	}
}

// ToFeature wraps an annotated venue as a GeoJSON feature.
func ToFeature(v *venue.Venue) Feature {
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: [2]float64{v.Lng, v.Lat},
		},
		Properties: v,
	}
}

// QuantizeCoord rounds a coordinate to the given number of decimals for
// the centroid index.
func QuantizeCoord(val float64, decimals int) float64 {
	s := strconv.FormatFloat(val, 'f', decimals, 64)
	out, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return val
	}
	return out
}

// FileName is the on-disk name of one category payload.
func FileName(key, version string) string {
	return fmt.Sprintf("%s_%s.min.geojson", key, version)
}
