package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/eunmann/sales-report-db/pkg/report"
)

// LoadJSON reads a whole snapshot from a single JSON file.
func LoadJSON(path string) (*report.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var ds report.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	return &ds, nil
}

// SaveJSON writes a snapshot to a single JSON file.
func SaveJSON(path string, ds *report.Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	return nil
}
