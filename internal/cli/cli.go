// Package cli implements the command-line interface for salesreport.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/eunmann/sales-report-db/pkg/benchutil"
	"github.com/eunmann/sales-report-db/pkg/dataset"
	"github.com/eunmann/sales-report-db/pkg/logging"
	"github.com/eunmann/sales-report-db/pkg/render"
	"github.com/eunmann/sales-report-db/pkg/report"
	"github.com/eunmann/sales-report-db/pkg/s3fetch"
)

// Run executes the CLI with the given arguments.
func Run(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: salesreport <command> [options]\ncommands: report, gen")
	}

	switch args[0] {
	case "report":
		return runReport(args[1:])
	case "gen":
		return runGen(args[1:])
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func runReport(args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	dataPath := fs.String("data", "", "local snapshot: .json file or Parquet directory")
	manifestURI := fs.String("manifest", "", "S3 URI of a snapshot manifest.json")
	tmpDir := fs.String("tmp", "", "download directory for S3 snapshots (default: a temp dir)")
	topN := fs.Int("top-n", report.DefaultTopN, "number of top products per seller")
	byQuantity := fs.Bool("by-quantity", false, "rank top products by quantity instead of profit")
	compact := fs.Bool("compact", false, "print top products as sku and count only")
	keep := fs.Bool("keep", false, "keep downloaded snapshot files")
	debug := fs.Bool("debug", false, "enable debug logging")
	human := fs.Bool("human", false, "human-friendly console logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dataPath == "" && *manifestURI == "" {
		return errors.New("--data or --manifest is required")
	}
	if *dataPath != "" && *manifestURI != "" {
		return errors.New("--data and --manifest are mutually exclusive")
	}

	logging.Init(*debug, *human)
	log := logging.WithPhase("report")
	ctx := context.Background()

	path := *dataPath
	if *manifestURI != "" {
		fetched, cleanup, err := fetchSnapshot(ctx, *manifestURI, *tmpDir, *keep)
		if err != nil {
			return err
		}
		defer cleanup()
		path = fetched
	}

	loadStart := time.Now()
	ds, err := dataset.Load(path)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	log.Debug().
		Int("sellers", len(ds.Sellers)).
		Int("products", len(ds.Products)).
		Int("purchases", len(ds.PurchaseRecords)).
		Dur("duration", time.Since(loadStart)).
		Msg("snapshot loaded")

	opts := report.DefaultOptions().WithTopN(*topN)
	if *byQuantity {
		opts = opts.WithTopProductsBy(report.ByQuantity)
	}

	analyzeStart := time.Now()
	reports, err := report.Analyze(ds, opts)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	log.Info().
		Int("sellers_ranked", len(reports)).
		Dur("duration", time.Since(analyzeStart)).
		Msg("report computed")

	return render.Text(os.Stdout, reports, render.Options{Compact: *compact})
}

// fetchSnapshot downloads the snapshot behind manifestURI and returns the
// local path to load, plus a cleanup function.
func fetchSnapshot(ctx context.Context, manifestURI, tmpDir string, keep bool) (string, func(), error) {
	client, err := s3fetch.NewClient(ctx)
	if err != nil {
		return "", nil, err
	}

	dir := tmpDir
	if dir == "" {
		dir, err = os.MkdirTemp("", "salesreport-*")
		if err != nil {
			return "", nil, fmt.Errorf("create download dir: %w", err)
		}
	}

	fetcher := s3fetch.NewFetcher(client, s3fetch.FetchConfig{
		ManifestURI: manifestURI,
		DownloadDir: dir,
		KeepFiles:   keep,
	})

	result, err := fetcher.Fetch(ctx)
	if err != nil {
		fetcher.Cleanup()
		return "", nil, fmt.Errorf("fetch snapshot: %w", err)
	}

	cleanup := func() {
		if err := fetcher.Cleanup(); err != nil {
			logging.L().Warn().Err(err).Msg("cleanup downloaded snapshot")
		}
	}

	// A single JSON file is the snapshot itself; anything else is a
	// Parquet directory.
	if result.Manifest.IsJSONSnapshot() {
		return result.LocalFiles[0], cleanup, nil
	}
	return dir, cleanup, nil
}

func runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	out := fs.String("out", "", "output path: .json file or directory for Parquet")
	format := fs.String("format", "json", "snapshot format: json or parquet")
	sellers := fs.Int("sellers", 25, "number of sellers")
	products := fs.Int("products", 200, "number of products")
	purchases := fs.Int("purchases", 1000, "number of purchase records")
	seed := fs.Int64("seed", 42, "random seed")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		return errors.New("--out is required")
	}

	cfg := benchutil.DefaultConfig(*purchases)
	cfg.NumSellers = *sellers
	cfg.NumProducts = *products
	cfg.Seed = *seed

	ds := benchutil.NewGenerator(cfg).Generate()

	switch strings.ToLower(*format) {
	case "json":
		return dataset.SaveJSON(*out, ds)
	case "parquet":
		return dataset.WriteParquetDir(*out, ds)
	default:
		return fmt.Errorf("unknown format: %s (supported: json, parquet)", *format)
	}
}
