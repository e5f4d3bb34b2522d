package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"linechart/models"
	"linechart/store"
)

type datasetFile struct {
	Sessions []observationFile `yaml:"sessions"`
	Events   []observationFile `yaml:"events"`
}

type observationFile struct {
	Time  timestamp `yaml:"time"`
	Views float64   `yaml:"views"`
}

// timestamp accepts unix milliseconds, RFC 3339 or a bare date.
type timestamp struct {
	time.Time
}

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func (t *timestamp) UnmarshalYAML(node *yaml.Node) error {
	if ms, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, node.Value); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("line %d: bad timestamp %q", node.Line, node.Value)
}

var sqliteExtensions = map[string]bool{".db": true, ".sqlite": true, ".sqlite3": true}

// LoadDataset reads a dataset file. Sqlite databases are picked by extension, anything else is read as yaml, which
// is a superset of json so either works.
func LoadDataset(path string) (*models.Dataset, error) {
	if sqliteExtensions[strings.ToLower(filepath.Ext(path))] {
		return loadSQLite(path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return ParseDataset(raw)
}

func loadSQLite(path string) (dataset *models.Dataset, err error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	db, err := store.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	defer func() { _ = db.Close() }()

	dataset, err = db.Dataset()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return dataset, nil
}

func ParseDataset(raw []byte) (*models.Dataset, error) {
	var file datasetFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return store.NewDataset(toObservations(file.Sessions), toObservations(file.Events)), nil
}

func toObservations(in []observationFile) []models.Observation {
	out := make([]models.Observation, len(in))
	for i, o := range in {
		out[i] = models.NewObservation(o.Time.Time, o.Views)
	}
	return out
}
