package ingest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Patrick-M8/tabelog-map/models/venue"
)

// Top-level dataset files are either a bare record array or an object
// wrapping the array under one of these keys.
var recordListKeys = []string{"restaurants", "items", "results", "data"}

// ReadRawRecordsFromJSON loads the raw records from one dataset file.
func ReadRawRecordsFromJSON(filePath string) ([]venue.RawRecord, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var records []venue.RawRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal records from %q: %w", filePath, err)
		}
		return records, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset %q: %w", filePath, err)
	}
	for _, key := range recordListKeys {
		raw, ok := wrapper[key]
		if !ok {
			continue
		}
		var records []venue.RawRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %q list from %q: %w", key, filePath, err)
		}
		return records, nil
	}

	// Fall back to treating every object value as one record.
	keys := make([]string, 0, len(wrapper))
	for k := range wrapper {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	records := make([]venue.RawRecord, 0, len(keys))
	for _, k := range keys {
		var rec venue.RawRecord
		if err := json.Unmarshal(wrapper[k], &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadDatasetDir walks the dataset root recursively, loading every JSON
// file. Unreadable files are logged and skipped so one bad file never
// loses the rest of the dataset.
func ReadDatasetDir(root string) ([]venue.RawRecord, error) {
	var all []venue.RawRecord
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		records, err := ReadRawRecordsFromJSON(path)
		if err != nil {
			log.Printf("[Ingest] Skipping %s: %v", path, err)
			return nil
		}
		all = append(all, records...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk dataset dir %q: %w", root, err)
	}
	return all, nil
}
