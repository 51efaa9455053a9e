package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Patrick-M8/tabelog-map/clock"
	"github.com/Patrick-M8/tabelog-map/geojson"
	"github.com/Patrick-M8/tabelog-map/ingest"
	"github.com/Patrick-M8/tabelog-map/models/hours"
	"github.com/Patrick-M8/tabelog-map/models/venue"
	"github.com/Patrick-M8/tabelog-map/schedule"
)

// GeoJSONBuildService turns the raw dataset into the static map payload:
// one FeatureCollection per category, a category manifest with bounding
// boxes, and a downsampled centroid index. The embedded open_now fields
// are a build-time convenience; live evaluation stays canonical.
type GeoJSONBuildService struct {
	clk           clock.Clock
	outDir        string
	version       string
	centroidMax   int
	coordDecimals int
}

// NewGeoJSONBuildService constructs a builder with its output settings.
func NewGeoJSONBuildService(clk clock.Clock, outDir, version string, centroidMax, coordDecimals int) *GeoJSONBuildService {
	return &GeoJSONBuildService{
		clk:           clk,
		outDir:        outDir,
		version:       version,
		centroidMax:   centroidMax,
		coordDecimals: coordDecimals,
	}
}

// BuildFromDir reads the dataset directory and writes the full payload.
func (gb *GeoJSONBuildService) BuildFromDir(datasetDir string) error {
	records, err := ingest.ReadDatasetDir(datasetDir)
	if err != nil {
		return err
	}
	return gb.Build(records)
}

// Build converts the records and writes every artifact to the output dir.
func (gb *GeoJSONBuildService) Build(records []venue.RawRecord) error {
	if err := os.MkdirAll(gb.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir %q: %w", gb.outDir, err)
	}

	now, clockErr := gb.clk.Now()
	if clockErr != nil {
		log.Printf("[GeoJSONBuildService] Clock read failed, open_now snapshots degrade to closed: %v", clockErr)
	}

	byCategory := map[string][]geojson.Feature{}
	bboxes := map[string]*geojson.BoundingBox{}
	var keyOrder []string

	for i := range records {
		v, err := ingest.BuildVenue(&records[i])
		if err != nil {
			if !errors.Is(err, ingest.ErrNoCoordinates) && !errors.Is(err, ingest.ErrNoID) {
				log.Printf("[GeoJSONBuildService] Failed to build venue: %v", err)
			}
			continue
		}
		gb.annotate(v, now, clockErr == nil)

		key := v.CategoryKey
		if _, seen := byCategory[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		byCategory[key] = append(byCategory[key], geojson.ToFeature(v))
		if bboxes[key] == nil {
			bboxes[key] = geojson.NewBoundingBox(v.Lng, v.Lat)
		} else {
			bboxes[key].Extend(v.Lng, v.Lat)
		}
	}

	var manifestItems []geojson.ManifestItem
	centroids := map[string][][2]float64{}

	for _, key := range keyOrder {
		feats := byCategory[key]
		fc := geojson.FeatureCollection{Type: "FeatureCollection", Features: feats}
		outName := geojson.FileName(key, gb.version)
		if err := gb.writeJSON(outName, fc, false); err != nil {
			return err
		}
		centroids[key] = gb.sampleCentroids(feats)
		manifestItems = append(manifestItems, geojson.ManifestItem{
			Key:   key,
			Label: categoryLabel(feats, key),
			URL:   "geojson/" + outName,
			Count: len(feats),
			BBox:  bboxes[key],
		})
		log.Printf("[GeoJSONBuildService] Wrote %s features=%d", outName, len(feats))
	}

	if err := gb.writeJSON("category_centroids.min.json", centroids, false); err != nil {
		return err
	}

	sort.Slice(manifestItems, func(i, j int) bool {
		return strings.ToLower(manifestItems[i].Label) < strings.ToLower(manifestItems[j].Label)
	})
	if err := gb.writeJSON("manifest.json", geojson.Manifest{Categories: manifestItems}, true); err != nil {
		return err
	}

	log.Printf("[GeoJSONBuildService] Build complete: %d categories", len(manifestItems))
	return nil
}

// annotate attaches the build-time evaluation snapshot and sort keys.
func (gb *GeoJSONBuildService) annotate(v *venue.Venue, now clock.CivilTime, clockOK bool) {
	if !clockOK {
		v.SortKeys = schedule.RankKeys(hours.Closed(), v.Price, v.Ratings)
		return
	}
	res := schedule.Evaluate(v.Hours.Weekly, now)
	v.Hours.TodayCompact = schedule.CompactToday(v.Hours.Weekly, now.WeekdayIdx)
	v.Hours.OpenNow = &res
	v.SortKeys = schedule.RankKeys(res, v.Price, v.Ratings)
}

// sampleCentroids downsamples a category to at most centroidMax quantized
// points.
func (gb *GeoJSONBuildService) sampleCentroids(feats []geojson.Feature) [][2]float64 {
	step := 1
	if gb.centroidMax > 0 && len(feats) > gb.centroidMax {
		step = (len(feats) + gb.centroidMax - 1) / gb.centroidMax
	}
	pts := make([][2]float64, 0, (len(feats)+step-1)/step)
	for i := 0; i < len(feats); i += step {
		lng, lat := feats[i].Geometry.Coordinates[0], feats[i].Geometry.Coordinates[1]
		pts = append(pts, [2]float64{
			geojson.QuantizeCoord(lng, gb.coordDecimals),
			geojson.QuantizeCoord(lat, gb.coordDecimals),
		})
	}
	return pts
}

func (gb *GeoJSONBuildService) writeJSON(name string, payload interface{}, indent bool) error {
	path := filepath.Join(gb.outDir, name)
	var data []byte
	var err error
	if indent {
		data, err = json.MarshalIndent(payload, "", "  ")
	} else {
		data, err = json.Marshal(payload)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func categoryLabel(feats []geojson.Feature, key string) string {
	if len(feats) > 0 && feats[0].Properties.Category.EN != "" {
		return feats[0].Properties.Category.EN
	}
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
