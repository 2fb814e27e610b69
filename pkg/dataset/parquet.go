package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eunmann/sales-report-db/pkg/report"
	"github.com/parquet-go/parquet-go"
)

// File names inside a Parquet snapshot directory.
const (
	SellersFile   = "sellers.parquet"
	ProductsFile  = "products.parquet"
	PurchasesFile = "purchases.parquet"
)

type sellerRow struct {
	ID        string `parquet:"id"`
	FirstName string `parquet:"first_name"`
	LastName  string `parquet:"last_name"`
	Position  string `parquet:"position"`
}

type productRow struct {
	SKU           string  `parquet:"sku"`
	Name          string  `parquet:"name"`
	PurchasePrice float64 `parquet:"purchase_price"`
}

// purchaseRow is one line item. Consecutive rows sharing a purchase_id
// regroup into one purchase record, preserving row order.
type purchaseRow struct {
	PurchaseID int64   `parquet:"purchase_id"`
	SellerID   string  `parquet:"seller_id"`
	SKU        string  `parquet:"sku"`
	SalePrice  float64 `parquet:"sale_price"`
	Quantity   int32   `parquet:"quantity"`
}

// LoadParquetDir reads a snapshot from a directory of Parquet files.
func LoadParquetDir(dir string) (*report.Dataset, error) {
	sellerRows, err := parquet.ReadFile[sellerRow](filepath.Join(dir, SellersFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", SellersFile, err)
	}
	productRows, err := parquet.ReadFile[productRow](filepath.Join(dir, ProductsFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ProductsFile, err)
	}
	purchaseRows, err := parquet.ReadFile[purchaseRow](filepath.Join(dir, PurchasesFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", PurchasesFile, err)
	}

	ds := &report.Dataset{
		Sellers:  make([]report.Seller, 0, len(sellerRows)),
		Products: make([]report.Product, 0, len(productRows)),
	}
	for _, r := range sellerRows {
		ds.Sellers = append(ds.Sellers, report.Seller{
			ID:        r.ID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Position:  r.Position,
		})
	}
	for _, r := range productRows {
		ds.Products = append(ds.Products, report.Product{
			SKU:           r.SKU,
			Name:          r.Name,
			PurchasePrice: r.PurchasePrice,
		})
	}

	var curID int64
	for i, r := range purchaseRows {
		if i == 0 || r.PurchaseID != curID {
			ds.PurchaseRecords = append(ds.PurchaseRecords, report.PurchaseRecord{
				SellerID: r.SellerID,
			})
			curID = r.PurchaseID
		}
		rec := &ds.PurchaseRecords[len(ds.PurchaseRecords)-1]
		rec.Items = append(rec.Items, report.LineItem{
			SKU:       r.SKU,
			SalePrice: r.SalePrice,
			Quantity:  int(r.Quantity),
		})
	}

	return ds, nil
}

// WriteParquetDir writes a snapshot as a directory of Parquet files.
// Purchase records are flattened to line rows; purchase_id numbers
// records in input order so loading regroups them exactly.
func WriteParquetDir(dir string, ds *report.Dataset) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	sellerRows := make([]sellerRow, 0, len(ds.Sellers))
	for _, s := range ds.Sellers {
		sellerRows = append(sellerRows, sellerRow{
			ID:        s.ID,
			FirstName: s.FirstName,
			LastName:  s.LastName,
			Position:  s.Position,
		})
	}
	if err := parquet.WriteFile(filepath.Join(dir, SellersFile), sellerRows); err != nil {
		return fmt.Errorf("write %s: %w", SellersFile, err)
	}

	productRows := make([]productRow, 0, len(ds.Products))
	for _, p := range ds.Products {
		productRows = append(productRows, productRow{
			SKU:           p.SKU,
			Name:          p.Name,
			PurchasePrice: p.PurchasePrice,
		})
	}
	if err := parquet.WriteFile(filepath.Join(dir, ProductsFile), productRows); err != nil {
		return fmt.Errorf("write %s: %w", ProductsFile, err)
	}

	var purchaseRows []purchaseRow
	for i, rec := range ds.PurchaseRecords {
		for _, item := range rec.Items {
			purchaseRows = append(purchaseRows, purchaseRow{
				PurchaseID: int64(i),
				SellerID:   rec.SellerID,
				SKU:        item.SKU,
				SalePrice:  item.SalePrice,
				Quantity:   int32(item.Quantity),
			})
		}
	}
	if err := parquet.WriteFile(filepath.Join(dir, PurchasesFile), purchaseRows); err != nil {
		return fmt.Errorf("write %s: %w", PurchasesFile, err)
	}

	return nil
}
