// Package dataset loads and saves report dataset snapshots.
//
// Two layouts are supported: a single JSON file holding the whole
// snapshot, and a directory of Parquet files (sellers.parquet,
// products.parquet, purchases.parquet) where purchases are stored as
// flat line rows. Loaders only deal in the plain input contract of
// package report; all semantic validation stays in the pipeline.
package dataset

import (
	"fmt"
	"os"
	"strings"

	"github.com/eunmann/sales-report-db/pkg/report"
)

// Load reads a snapshot from path. A directory is treated as a Parquet
// snapshot, a .json file as a JSON snapshot.
func Load(path string) (*report.Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat snapshot: %w", err)
	}
	if info.IsDir() {
		return LoadParquetDir(path)
	}
	if strings.HasSuffix(path, ".json") {
		return LoadJSON(path)
	}
	return nil, fmt.Errorf("unsupported snapshot format: %s", path)
}
