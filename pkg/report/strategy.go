package report

import "fmt"

// SeniorPosition is the position title that earns the 1.5x bonus
// multiplier under the default banded policy.
const SeniorPosition = "Senior Seller"

// RevenueStrategy computes the revenue for a single-item pseudo-purchase.
// The aggregator calls it once per resolved line item; profit is always
// revenue minus cost and is computed by the aggregator itself.
type RevenueStrategy interface {
	Revenue(sale ItemSale) (float64, error)
}

// RevenueFunc adapts a plain function to a RevenueStrategy.
type RevenueFunc func(sale ItemSale) (float64, error)

// Revenue implements RevenueStrategy.
func (f RevenueFunc) Revenue(sale ItemSale) (float64, error) { return f(sale) }

// BonusStrategy computes the bonus for a seller at the given zero-based
// rank out of total ranked sellers. Any error aborts the whole report.
type BonusStrategy interface {
	Bonus(rank, total int, seller SellerWithProfit) (float64, error)
}

// BonusFunc adapts a plain function to a BonusStrategy.
type BonusFunc func(rank, total int, seller SellerWithProfit) (float64, error)

// Bonus implements BonusStrategy.
func (f BonusFunc) Bonus(rank, total int, seller SellerWithProfit) (float64, error) {
	return f(rank, total, seller)
}

// DefaultRevenue returns the standard revenue model: sale price times quantity.
func DefaultRevenue() RevenueStrategy {
	return RevenueFunc(func(sale ItemSale) (float64, error) {
		return sale.SalePrice * float64(sale.Quantity), nil
	})
}

// BandedBonus is the default rank-banded bonus policy:
//
//	rank 0            15% of profit
//	ranks 1-2         10% of profit
//	rank total-2       5% of profit
//	all other ranks    0% (including the last)
//
// The first matching band in the order above wins, which matters when
// total < 5 and the bands overlap (e.g. with total=3, rank 1 is both
// "ranks 1-2" and "second-to-last" and earns 10%). The rate is multiplied
// by 1.5 when the seller's position equals the senior title, and the
// result is rounded to two decimal places.
type BandedBonus struct {
	// SeniorPosition overrides the title that earns the 1.5x multiplier.
	// Empty means SeniorPosition.
	SeniorPosition string
}

// Bonus implements BonusStrategy.
func (b BandedBonus) Bonus(rank, total int, seller SellerWithProfit) (float64, error) {
	if rank < 0 || rank >= total {
		return 0, fmt.Errorf("%w: rank %d with %d sellers", ErrIndexOutOfRange, rank, total)
	}

	var rate float64
	switch {
	case rank == 0:
		rate = 0.15
	case rank == 1 || rank == 2:
		rate = 0.10
	case rank == total-2:
		rate = 0.05
	}

	senior := b.SeniorPosition
	if senior == "" {
		senior = SeniorPosition
	}
	mult := 1.0
	if seller.Position == senior {
		mult = 1.5
	}

	return round2(rate * mult * seller.Profit), nil
}

// FlatBonus returns a policy paying the same fraction of profit at every
// rank. Useful as a substitute policy in tests and alternative reports.
func FlatBonus(rate float64) BonusStrategy {
	return BonusFunc(func(rank, total int, seller SellerWithProfit) (float64, error) {
		if rank < 0 || rank >= total {
			return 0, fmt.Errorf("%w: rank %d with %d sellers", ErrIndexOutOfRange, rank, total)
		}
		return round2(rate * seller.Profit), nil
	})
}
