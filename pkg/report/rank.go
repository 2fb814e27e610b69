package report

import (
	"fmt"
	"slices"
	"strings"
)

// rank orders sellers by profit descending and emits the final report.
// Equal-profit sellers keep the order in which they first appeared in
// purchase_records (stable sort over accumulation order). Bonus strategy
// failures abort the whole report; there are no partial results.
func rank(stats []*SellerStat, idx *index, opts Options) ([]SellerReport, error) {
	// All records may have referenced unknown sellers. The validator
	// cannot rule this out, so guard before banding arithmetic runs.
	if len(stats) == 0 {
		return []SellerReport{}, nil
	}

	ranked := slices.Clone(stats)
	slices.SortStableFunc(ranked, func(a, b *SellerStat) int {
		return cmpFloatDesc(a.Profit, b.Profit)
	})

	total := len(ranked)
	reports := make([]SellerReport, 0, total)
	for i, st := range ranked {
		bonus, err := opts.CalculateBonus.Bonus(i, total, SellerWithProfit{
			Seller: st.Seller,
			Profit: st.Profit,
		})
		if err != nil {
			return nil, fmt.Errorf("bonus strategy for seller %q: %w", st.Seller.ID, err)
		}

		reports = append(reports, SellerReport{
			SellerID:    st.Seller.ID,
			Name:        st.Seller.FullName(),
			Revenue:     round2(st.Revenue),
			Profit:      round2(st.Profit),
			SalesCount:  st.SalesCount,
			Bonus:       round2(bonus),
			TopProducts: topProducts(st, idx, opts),
		})
	}

	return reports, nil
}

// topProducts ranks one seller's product breakdown and truncates it to
// TopN. After the configured key pair, remaining ties break by sku
// ascending; map iteration order must not leak into the output.
func topProducts(st *SellerStat, idx *index, opts Options) []TopProduct {
	list := make([]TopProduct, 0, len(st.Products))
	for sku, ps := range st.Products {
		list = append(list, TopProduct{
			SKU:    sku,
			Name:   idx.products[sku].Name,
			Count:  ps.Count,
			Profit: ps.Profit,
		})
	}

	slices.SortFunc(list, func(a, b TopProduct) int {
		var c int
		if opts.TopProductsBy == ByQuantity {
			c = cmpIntDesc(a.Count, b.Count)
			if c == 0 {
				c = cmpFloatDesc(a.Profit, b.Profit)
			}
		} else {
			c = cmpFloatDesc(a.Profit, b.Profit)
			if c == 0 {
				c = cmpIntDesc(a.Count, b.Count)
			}
		}
		if c == 0 {
			c = strings.Compare(a.SKU, b.SKU)
		}
		return c
	})

	if len(list) > opts.TopN {
		list = list[:opts.TopN]
	}
	for i := range list {
		list[i].Profit = round2(list[i].Profit)
	}
	return slices.Clip(list)
}

func cmpFloatDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

func cmpIntDesc(a, b int) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
