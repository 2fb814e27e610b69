// Package s3fetch downloads dataset snapshot files from S3.
//
// A snapshot export is described by a manifest.json listing the bucket
// and the snapshot files to download. The fetcher pulls all files to a
// local directory; package dataset takes over from there.
package s3fetch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Manifest describes one dataset snapshot export.
type Manifest struct {
	Bucket      string         `json:"bucket"`
	GeneratedAt string         `json:"generatedAt"`
	Files       []ManifestFile `json:"files"`
}

// ManifestFile is a single snapshot file in the manifest.
type ManifestFile struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// ParseManifest parses and validates a snapshot manifest.json.
func ParseManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("validate manifest: %w", err)
	}

	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Bucket == "" {
		return errors.New("manifest missing bucket")
	}
	if len(m.Files) == 0 {
		return errors.New("manifest has no files")
	}
	for i, f := range m.Files {
		if f.Key == "" {
			return fmt.Errorf("manifest file[%d] has empty key", i)
		}
	}
	return nil
}

// IsJSONSnapshot reports whether the manifest describes a single-file
// JSON snapshot rather than a Parquet directory.
func (m *Manifest) IsJSONSnapshot() bool {
	return len(m.Files) == 1 && strings.HasSuffix(strings.ToLower(m.Files[0].Key), ".json")
}

// ParseS3URI parses an S3 URI (s3://bucket/key) into bucket and key components.
func ParseS3URI(uri string) (bucket, key string, err error) {
	if !strings.HasPrefix(uri, "s3://") {
		return "", "", errors.New("invalid S3 URI: must start with s3://")
	}

	path := strings.TrimPrefix(uri, "s3://")
	parts := strings.SplitN(path, "/", 2)
	if len(parts) < 1 || parts[0] == "" {
		return "", "", errors.New("invalid S3 URI: missing bucket name")
	}

	bucket = parts[0]
	if len(parts) == 2 {
		key = parts[1]
	}

	return bucket, key, nil
}
