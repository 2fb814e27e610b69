package report

import "fmt"

// TopProductSort selects the key used to order a seller's product breakdown.
type TopProductSort int

const (
	// ByProfit orders top products by profit descending, ties by quantity
	// descending.
	ByProfit TopProductSort = iota
	// ByQuantity orders top products by quantity descending, ties by
	// profit descending.
	ByQuantity
)

// DefaultTopN is the number of top products reported per seller when the
// options leave TopN unset.
const DefaultTopN = 3

// Options configures one Analyze call. Both strategies are required;
// everything else has a default.
type Options struct {
	// CalculateRevenue computes revenue for each resolved line item.
	CalculateRevenue RevenueStrategy

	// CalculateBonus computes the per-seller bonus from rank and profit.
	CalculateBonus BonusStrategy

	// TopN is the number of top products reported per seller.
	// Default: DefaultTopN.
	TopN int

	// TopProductsBy selects the top-product ordering key. Default: ByProfit.
	TopProductsBy TopProductSort
}

// DefaultOptions returns options with the standard revenue model and the
// banded bonus policy.
func DefaultOptions() Options {
	return Options{
		CalculateRevenue: DefaultRevenue(),
		CalculateBonus:   BandedBonus{},
		TopN:             DefaultTopN,
		TopProductsBy:    ByProfit,
	}
}

// Validate checks that required strategies are present and fills defaults
// for zero values.
func (o *Options) Validate() error {
	if o.CalculateRevenue == nil {
		return fmt.Errorf("%w: CalculateRevenue is required", ErrMissingStrategy)
	}
	if o.CalculateBonus == nil {
		return fmt.Errorf("%w: CalculateBonus is required", ErrMissingStrategy)
	}
	if o.TopN <= 0 {
		o.TopN = DefaultTopN
	}
	if o.TopProductsBy != ByProfit && o.TopProductsBy != ByQuantity {
		return fmt.Errorf("%w: unknown top-product sort %d", ErrShape, o.TopProductsBy)
	}
	return nil
}

// WithTopN sets the top-product count.
func (o Options) WithTopN(n int) Options {
	o.TopN = n
	return o
}

// WithTopProductsBy sets the top-product ordering key.
func (o Options) WithTopProductsBy(by TopProductSort) Options {
	o.TopProductsBy = by
	return o
}

// WithRevenue sets the revenue strategy.
func (o Options) WithRevenue(s RevenueStrategy) Options {
	o.CalculateRevenue = s
	return o
}

// WithBonus sets the bonus strategy.
func (o Options) WithBonus(s BonusStrategy) Options {
	o.CalculateBonus = s
	return o
}
