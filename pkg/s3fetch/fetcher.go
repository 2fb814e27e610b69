package s3fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eunmann/sales-report-db/pkg/logging"
)

// FetchConfig configures a snapshot fetch.
type FetchConfig struct {
	// ManifestURI is the S3 URI of the manifest.json.
	ManifestURI string
	// DownloadDir is the local directory for snapshot files.
	DownloadDir string
	// Concurrency is the number of parallel downloads (default: 4).
	Concurrency int
	// KeepFiles if true, Cleanup leaves downloaded files in place.
	KeepFiles bool
}

// FetchResult holds the downloaded snapshot.
type FetchResult struct {
	// Manifest is the parsed manifest.
	Manifest *Manifest
	// LocalFiles are the downloaded snapshot files, in manifest order.
	LocalFiles []string
}

// Fetcher downloads dataset snapshot files.
type Fetcher struct {
	client *Client
	cfg    FetchConfig
}

// NewFetcher creates a new snapshot fetcher.
func NewFetcher(client *Client, cfg FetchConfig) *Fetcher {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	return &Fetcher{
		client: client,
		cfg:    cfg,
	}
}

// Fetch downloads the manifest and all snapshot files it lists.
func (f *Fetcher) Fetch(ctx context.Context) (*FetchResult, error) {
	log := logging.WithPhase("s3fetch")
	start := time.Now()

	bucket, key, err := ParseS3URI(f.cfg.ManifestURI)
	if err != nil {
		return nil, fmt.Errorf("parse manifest URI: %w", err)
	}

	manifest, err := f.client.FetchManifest(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest: %w", err)
	}

	if err := os.MkdirAll(f.cfg.DownloadDir, 0755); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}

	localFiles := make([]string, len(manifest.Files))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.cfg.Concurrency)

	for i, file := range manifest.Files {
		i, file := i, file
		g.Go(func() error {
			localPath := filepath.Join(f.cfg.DownloadDir, filepath.Base(file.Key))

			if err := f.client.DownloadFile(ctx, manifest.Bucket, file.Key, localPath); err != nil {
				return fmt.Errorf("download %s: %w", file.Key, err)
			}

			mu.Lock()
			localFiles[i] = localPath
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("wait for downloads: %w", err)
	}

	log.Info().
		Int("files", len(localFiles)).
		Dur("duration", time.Since(start)).
		Str("bucket", manifest.Bucket).
		Msg("snapshot downloaded")

	return &FetchResult{
		Manifest:   manifest,
		LocalFiles: localFiles,
	}, nil
}

// Cleanup removes downloaded files unless KeepFiles is set.
func (f *Fetcher) Cleanup() error {
	if f.cfg.KeepFiles {
		return nil
	}
	return os.RemoveAll(f.cfg.DownloadDir)
}
