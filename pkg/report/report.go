package report

import "math"

// Analyze runs the full pipeline over one dataset snapshot and returns
// the per-seller reports ordered by descending profit.
//
// The computation is a pure function of the snapshot and the configured
// strategies: it holds no state across calls, does no I/O, and repeated
// calls with the same input produce identical output. Strategy presence
// is checked before the dataset is touched; any validation, aggregation,
// or strategy failure aborts the call with no partial results.
func Analyze(ds *Dataset, opts Options) ([]SellerReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := validateDataset(ds); err != nil {
		return nil, err
	}

	idx := newIndex(ds)

	stats, err := aggregate(ds, idx, opts.CalculateRevenue)
	if err != nil {
		return nil, err
	}

	return rank(stats, idx, opts)
}

// round2 rounds half away from zero to two decimal places. Applied once
// at the output boundary; accumulation always runs on unrounded values so
// rounding error never compounds.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
