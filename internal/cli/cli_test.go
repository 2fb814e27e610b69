package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/eunmann/sales-report-db/pkg/dataset"
)

func TestRun_NoArgs(t *testing.T) {
	err := Run(nil)
	if err == nil {
		t.Fatal("Run() = nil error, want usage")
	}
	if !strings.Contains(err.Error(), "usage") {
		t.Errorf("Run() = %v, want usage message", err)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	err := Run([]string{"frobnicate"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("Run() = %v, want unknown command", err)
	}
}

func TestRunReport_RequiresSource(t *testing.T) {
	err := Run([]string{"report"})
	if err == nil || !strings.Contains(err.Error(), "required") {
		t.Errorf("Run() = %v, want missing source error", err)
	}
}

func TestRunReport_RejectsBothSources(t *testing.T) {
	err := Run([]string{"report", "--data", "a.json", "--manifest", "s3://b/m.json"})
	if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("Run() = %v, want mutually exclusive error", err)
	}
}

func TestRunGen_RequiresOut(t *testing.T) {
	err := Run([]string{"gen"})
	if err == nil || !strings.Contains(err.Error(), "--out") {
		t.Errorf("Run() = %v, want missing --out error", err)
	}
}

func TestRunGen_UnknownFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "snapshot.csv")
	err := Run([]string{"gen", "--out", out, "--format", "csv"})
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("Run() = %v, want unknown format error", err)
	}
}

func TestRunGenThenReport_JSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "snapshot.json")

	if err := Run([]string{"gen", "--out", out, "--purchases", "200", "--seed", "7"}); err != nil {
		t.Fatalf("gen error = %v", err)
	}

	ds, err := dataset.Load(out)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(ds.PurchaseRecords) != 200 {
		t.Errorf("got %d purchases, want 200", len(ds.PurchaseRecords))
	}

	if err := Run([]string{"report", "--data", out, "--top-n", "2"}); err != nil {
		t.Fatalf("report error = %v", err)
	}
}

func TestRunGenThenReport_Parquet(t *testing.T) {
	out := filepath.Join(t.TempDir(), "snapshot")

	if err := Run([]string{"gen", "--out", out, "--format", "parquet", "--purchases", "100"}); err != nil {
		t.Fatalf("gen error = %v", err)
	}
	if err := Run([]string{"report", "--data", out, "--by-quantity", "--compact"}); err != nil {
		t.Fatalf("report error = %v", err)
	}
}
