package dataset

import (
	"reflect"
	"testing"
)

func TestParquetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := testSnapshot()

	if err := WriteParquetDir(dir, want); err != nil {
		t.Fatalf("WriteParquetDir() error = %v", err)
	}
	got, err := LoadParquetDir(dir)
	if err != nil {
		t.Fatalf("LoadParquetDir() error = %v", err)
	}

	if !reflect.DeepEqual(got.Sellers, want.Sellers) {
		t.Errorf("sellers mismatch:\ngot:  %+v\nwant: %+v", got.Sellers, want.Sellers)
	}
	if !reflect.DeepEqual(got.Products, want.Products) {
		t.Errorf("products mismatch:\ngot:  %+v\nwant: %+v", got.Products, want.Products)
	}
	if !reflect.DeepEqual(got.PurchaseRecords, want.PurchaseRecords) {
		t.Errorf("purchases mismatch:\ngot:  %+v\nwant: %+v", got.PurchaseRecords, want.PurchaseRecords)
	}
}

func TestParquetRegroupsMultiItemPurchases(t *testing.T) {
	dir := t.TempDir()
	want := testSnapshot()

	if err := WriteParquetDir(dir, want); err != nil {
		t.Fatalf("WriteParquetDir() error = %v", err)
	}
	got, err := LoadParquetDir(dir)
	if err != nil {
		t.Fatalf("LoadParquetDir() error = %v", err)
	}

	if len(got.PurchaseRecords) != 2 {
		t.Fatalf("got %d purchase records, want 2", len(got.PurchaseRecords))
	}
	// The two-item purchase stays one record with both line items.
	if n := len(got.PurchaseRecords[0].Items); n != 2 {
		t.Errorf("first record has %d items, want 2", n)
	}
	if n := len(got.PurchaseRecords[1].Items); n != 1 {
		t.Errorf("second record has %d items, want 1", n)
	}
}

func TestLoad_DispatchesParquetDir(t *testing.T) {
	dir := t.TempDir()
	want := testSnapshot()
	if err := WriteParquetDir(dir, want); err != nil {
		t.Fatalf("WriteParquetDir() error = %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() mismatch:\ngot:  %+v\nwant: %+v", got, want)
	}
}

func TestLoadParquetDir_MissingFiles(t *testing.T) {
	if _, err := LoadParquetDir(t.TempDir()); err == nil {
		t.Error("LoadParquetDir() = nil error, want failure for empty dir")
	}
}
