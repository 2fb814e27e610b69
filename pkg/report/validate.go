package report

import (
	"fmt"
	"math"
)

// validateDataset checks structural integrity of the snapshot before any
// computation begins. Order: dataset shape, sellers, products, purchase
// records (including item-level checks). The first violation aborts the
// whole call; nothing is skipped.
func validateDataset(ds *Dataset) error {
	if ds == nil {
		return fmt.Errorf("%w: dataset is nil", ErrShape)
	}
	if len(ds.Sellers) == 0 {
		return fmt.Errorf("%w: sellers", ErrEmptyCollection)
	}
	if len(ds.Products) == 0 {
		return fmt.Errorf("%w: products", ErrEmptyCollection)
	}
	if len(ds.PurchaseRecords) == 0 {
		return fmt.Errorf("%w: purchase_records", ErrEmptyCollection)
	}

	for i, s := range ds.Sellers {
		if s.ID == "" {
			return fmt.Errorf("%w: seller[%d] has empty id", ErrInvalidRecord, i)
		}
		if s.FirstName == "" {
			return fmt.Errorf("%w: seller[%d] %q has empty first_name", ErrInvalidRecord, i, s.ID)
		}
		if s.LastName == "" {
			return fmt.Errorf("%w: seller[%d] %q has empty last_name", ErrInvalidRecord, i, s.ID)
		}
	}

	for i, p := range ds.Products {
		if p.SKU == "" {
			return fmt.Errorf("%w: product[%d] has empty sku", ErrInvalidRecord, i)
		}
		if p.Name == "" {
			return fmt.Errorf("%w: product[%d] %q has empty name", ErrInvalidRecord, i, p.SKU)
		}
		if err := checkFinite(p.PurchasePrice); err != nil {
			return fmt.Errorf("product[%d] %q purchase_price: %w", i, p.SKU, err)
		}
		if p.PurchasePrice < 0 {
			return fmt.Errorf("%w: product[%d] %q has negative purchase_price", ErrInvalidRecord, i, p.SKU)
		}
	}

	for i, rec := range ds.PurchaseRecords {
		if rec.SellerID == "" {
			return fmt.Errorf("%w: purchase_record[%d] has empty seller_id", ErrInvalidRecord, i)
		}
		if len(rec.Items) == 0 {
			return fmt.Errorf("%w: purchase_record[%d] has no items", ErrInvalidRecord, i)
		}
		for j, item := range rec.Items {
			if item.SKU == "" {
				return fmt.Errorf("%w: purchase_record[%d] item[%d] has empty sku", ErrInvalidRecord, i, j)
			}
			if err := checkFinite(item.SalePrice); err != nil {
				return fmt.Errorf("purchase_record[%d] item[%d] sale_price: %w", i, j, err)
			}
			if item.SalePrice < 0 {
				return fmt.Errorf("%w: purchase_record[%d] item[%d] has negative sale_price", ErrInvalidRecord, i, j)
			}
			if item.Quantity < 1 {
				return fmt.Errorf("%w: purchase_record[%d] item[%d] has quantity %d", ErrInvalidRecord, i, j, item.Quantity)
			}
		}
	}

	return nil
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidType, v)
	}
	return nil
}
