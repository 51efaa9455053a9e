package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDatasetFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRawRecordsFromJSON_Array(t *testing.T) {
	path := writeDatasetFile(t, t.TempDir(), "shinjuku.json",
		`[{"place_id":"a","name":"One","lat":35.1,"lng":139.1},
		  {"place_id":"b","name":"Two","lat":35.2,"lng":139.2}]`)

	records, err := ReadRawRecordsFromJSON(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].PlaceID)
	assert.Equal(t, "Two", records[1].Name)
}

func TestReadRawRecordsFromJSON_WrappedList(t *testing.T) {
	path := writeDatasetFile(t, t.TempDir(), "wrapped.json",
		`{"restaurants":[{"place_id":"a","name":"One"}]}`)

	records, err := ReadRawRecordsFromJSON(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].PlaceID)
}

func TestReadRawRecordsFromJSON_ObjectOfRecords(t *testing.T) {
	path := writeDatasetFile(t, t.TempDir(), "keyed.json",
		`{"k2":{"place_id":"b"},"k1":{"place_id":"a"}}`)

	records, err := ReadRawRecordsFromJSON(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Keys are read in sorted order so reloads are deterministic.
	assert.Equal(t, "a", records[0].PlaceID)
	assert.Equal(t, "b", records[1].PlaceID)
}

func TestReadRawRecordsFromJSON_StringRating(t *testing.T) {
	path := writeDatasetFile(t, t.TempDir(), "flex.json",
		`[{"place_id":"a","rating":"3.58","g_rating":4.2}]`)

	records, err := ReadRawRecordsFromJSON(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Rating.Value)
	assert.Equal(t, 3.58, *records[0].Rating.Value)
	require.NotNil(t, records[0].GRating.Value)
	assert.Equal(t, 4.2, *records[0].GRating.Value)
}

func TestReadRawRecordsFromJSON_MissingFile(t *testing.T) {
	_, err := ReadRawRecordsFromJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestReadDatasetDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "tokyo"), 0o755))
	writeDatasetFile(t, root, "a.json", `[{"place_id":"a"}]`)
	writeDatasetFile(t, filepath.Join(root, "tokyo"), "b.json", `[{"place_id":"b"}]`)
	writeDatasetFile(t, root, "notes.txt", `not json`)
	writeDatasetFile(t, root, "broken.json", `{{{`)

	records, err := ReadDatasetDir(root)
	require.NoError(t, err, "a broken file is skipped, not fatal")
	require.Len(t, records, 2)
}
