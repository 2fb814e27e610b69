package report

import "fmt"

// aggregate walks purchase records once, in input order, and accumulates
// unrounded per-seller totals. The returned slice preserves the order in
// which sellers first appeared, which the ranker uses as the tie-break.
//
// A record whose seller_id is not in the index is skipped silently; real
// datasets are partial. An item whose sku is not in the index contributes
// nothing to revenue or profit, but the enclosing record was already
// counted in SalesCount.
func aggregate(ds *Dataset, idx *index, revenue RevenueStrategy) ([]*SellerStat, error) {
	byID := make(map[string]*SellerStat, len(ds.Sellers))
	order := make([]*SellerStat, 0, len(ds.Sellers))

	for _, rec := range ds.PurchaseRecords {
		seller, ok := idx.sellers[rec.SellerID]
		if !ok {
			continue
		}

		st := byID[rec.SellerID]
		if st == nil {
			st = &SellerStat{
				Seller:   seller,
				Products: make(map[string]*ProductStat),
			}
			byID[rec.SellerID] = st
			order = append(order, st)
		}

		// Counts records, not items. Incremented before items are
		// examined so unresolvable skus do not affect it.
		st.SalesCount++

		for _, item := range rec.Items {
			product, ok := idx.products[item.SKU]
			if !ok {
				continue
			}

			rev, err := revenue.Revenue(ItemSale{
				SKU:       item.SKU,
				SalePrice: item.SalePrice,
				Quantity:  item.Quantity,
			})
			if err != nil {
				return nil, fmt.Errorf("revenue strategy for sku %q: %w", item.SKU, err)
			}

			cost := product.PurchasePrice * float64(item.Quantity)
			profit := rev - cost

			st.Revenue += rev
			st.Profit += profit

			ps := st.Products[item.SKU]
			if ps == nil {
				ps = &ProductStat{}
				st.Products[item.SKU] = ps
			}
			ps.Count += item.Quantity
			ps.Profit += profit
		}
	}

	return order, nil
}
