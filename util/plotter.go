package util

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/Patrick-M8/tabelog-map/models/venue"
)

// PlotVenuePoints renders the venues of one dataset as a geo scatter into
// an HTML file. Dev-only sanity check for freshly built datasets; the
// real map lives in the frontend.
func PlotVenuePoints(title string, venues []venue.Venue, outPath string) error {
	points := make([]opts.GeoData, 0, len(venues))
	for _, v := range venues {
		points = append(points, opts.GeoData{
			Name:  v.Name,
			Value: []float64{v.Lng, v.Lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Venues", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(false),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create plot file %q: %w", outPath, err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		return fmt.Errorf("failed to render venue plot: %w", err)
	}
	return nil
}
