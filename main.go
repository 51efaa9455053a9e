package main

import (
	"flag"
	"log"
	"time"

	"github.com/Patrick-M8/tabelog-map/di"
)

func main() {
	env := flag.String("env", "prod", "environment: prod or dev")
	buildGeoJSON := flag.Bool("build-geojson", false, "build the static GeoJSON payload and exit")
	flag.Parse()

	container := di.NewContainer(*env)

	if *buildGeoJSON {
		if err := container.GeoJSONBuildService.BuildFromDir(container.Config.DatasetDir); err != nil {
			log.Fatalf("GeoJSON build failed: %v", err)
		}
		return
	}

	log.Println("refreshing venues from dataset")
	if err := container.DatasetRefresherService.RefreshVenuesData(); err != nil {
		log.Printf("Initial refresh failed: %v", err)
	}

	refreshInterval := time.Duration(container.Config.RefreshMinutes) * time.Minute
	container.DatasetRefresherService.StartPeriodicJob(refreshInterval)

	container.TabelogMapHttpServer.Start()
}
