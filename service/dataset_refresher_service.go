package services

import (
	"errors"
	"log"
	"time"

	redisdao "github.com/Patrick-M8/tabelog-map/dao/redis"
	"github.com/Patrick-M8/tabelog-map/ingest"
)

// DatasetRefresherService periodically re-reads the scraped dataset
// directory, rebuilds the typed venues through the ingest boundary, and
// upserts them into the store. Scraping itself happens outside this
// service; it only consumes what the pipeline already wrote.
type DatasetRefresherService struct {
	venueDao   *redisdao.RedisVenueDAO
	datasetDir string
}

// NewDatasetRefresherService constructs a refresher with its dependencies.
func NewDatasetRefresherService(venueDao *redisdao.RedisVenueDAO, datasetDir string) *DatasetRefresherService {
	return &DatasetRefresherService{
		venueDao:   venueDao,
		datasetDir: datasetDir,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (dr *DatasetRefresherService) StartPeriodicJob(interval time.Duration) {
	go dr.runPeriodicJob(interval)
}

func (dr *DatasetRefresherService) runPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[DatasetRefresherService] Running periodic dataset refresh.")
		if err := dr.RefreshVenuesData(); err != nil {
			log.Printf("[DatasetRefresherService] RefreshVenuesData returned error: %v", err)
		} else {
			log.Println("[DatasetRefresherService] RefreshVenuesData completed successfully.")
		}
	}
}

// RefreshVenuesData reads every dataset file, dedupes records by ID and
// name, and upserts the venues that build cleanly. Records without
// coordinates are expected and skipped quietly.
func (dr *DatasetRefresherService) RefreshVenuesData() error {
	records, err := ingest.ReadDatasetDir(dr.datasetDir)
	if err != nil {
		return err
	}
	log.Printf("[DatasetRefresherService] Loaded %d raw records from %s", len(records), dr.datasetDir)

	seenIDs := make(map[string]struct{})
	seenNames := make(map[string]struct{})
	upserted, skipped := 0, 0

	for i := range records {
		v, err := ingest.BuildVenue(&records[i])
		if err != nil {
			if !errors.Is(err, ingest.ErrNoCoordinates) && !errors.Is(err, ingest.ErrNoID) {
				log.Printf("[DatasetRefresherService] Failed to build venue: %v", err)
			}
			skipped++
			continue
		}
		if _, dup := seenIDs[v.ID]; dup {
			skipped++
			continue
		}
		if _, dup := seenNames[v.Name]; dup {
			log.Printf("[DatasetRefresherService] Skipping duplicate venue name %q", v.Name)
			skipped++
			continue
		}
		seenIDs[v.ID] = struct{}{}
		seenNames[v.Name] = struct{}{}

		if err := dr.venueDao.UpsertVenue(v); err != nil {
			log.Printf("[DatasetRefresherService] Upsert failed for %s: %v", v.ID, err)
			continue
		}
		upserted++
	}

	log.Printf("[DatasetRefresherService] Upserted %d venues (%d skipped)", upserted, skipped)
	return nil
}
