// Package render writes sales performance reports for display.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/eunmann/sales-report-db/pkg/moneyfmt"
	"github.com/eunmann/sales-report-db/pkg/report"
)

// Options configures report rendering.
type Options struct {
	// Compact prints top products as "sku x count" instead of the full
	// name and profit form.
	Compact bool
}

// Text writes a tab-aligned report table to w, one row per seller in
// report order.
func Text(w io.Writer, reports []report.SellerReport, opts Options) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tSELLER\tREVENUE\tPROFIT\tSALES\tBONUS\tTOP PRODUCTS")
	for i, r := range reports {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			i+1,
			r.Name,
			moneyfmt.Money(r.Revenue),
			moneyfmt.Money(r.Profit),
			r.SalesCount,
			moneyfmt.Money(r.Bonus),
			topProductsLine(r.TopProducts, opts.Compact),
		)
	}

	return tw.Flush()
}

func topProductsLine(products []report.TopProduct, compact bool) string {
	if len(products) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(products))
	for _, p := range products {
		if compact {
			parts = append(parts, fmt.Sprintf("%s x%d", p.SKU, p.Count))
		} else {
			parts = append(parts, fmt.Sprintf("%s (%s)", p.Name, moneyfmt.Money(p.Profit)))
		}
	}
	return strings.Join(parts, ", ")
}
