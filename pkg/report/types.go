// Package report computes per-seller sales performance reports from an
// in-memory dataset snapshot. The pipeline runs four stages in sequence:
// validate the snapshot, build lookup indices, aggregate purchase records
// into per-seller statistics, and rank sellers by profit while assigning
// rank-dependent bonuses. Analyze is the entry point.
package report

// Seller is a sales employee record. Identity is ID. The pipeline never
// mutates source records; all derived values live in SellerStat.
type Seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}

// FullName returns the display name used in reports.
func (s Seller) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Product is a catalog entry. Identity is SKU.
type Product struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchase_price"`
}

// LineItem is one product entry within a purchase record.
type LineItem struct {
	SKU       string  `json:"sku"`
	SalePrice float64 `json:"sale_price"`
	Quantity  int     `json:"quantity"`
}

// PurchaseRecord is one sale event attributed to a seller.
type PurchaseRecord struct {
	SellerID string     `json:"seller_id"`
	Items    []LineItem `json:"items"`
}

// Dataset is the full input snapshot. All three collections must be
// non-empty; the validator enforces field-level integrity before any
// aggregation runs.
type Dataset struct {
	Sellers         []Seller         `json:"sellers"`
	Products        []Product        `json:"products"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records"`
}

// ProductStat accumulates units sold and profit for one SKU under one seller.
type ProductStat struct {
	Count  int
	Profit float64
}

// SellerStat holds the unrounded running totals for one seller. One stat
// exists per seller with at least one attributed purchase record.
type SellerStat struct {
	Seller     Seller
	Revenue    float64
	Profit     float64
	SalesCount int
	Products   map[string]*ProductStat
}

// SellerWithProfit is the immutable value handed to bonus strategies:
// the seller's static record plus the unrounded profit computed by the
// aggregator. The source Seller is never written to.
type SellerWithProfit struct {
	Seller
	Profit float64
}

// ItemSale is the single-item pseudo-purchase handed to revenue strategies.
type ItemSale struct {
	SKU       string
	SalePrice float64
	Quantity  int
}

// TopProduct is one entry in a seller's ranked product breakdown.
type TopProduct struct {
	SKU    string  `json:"sku"`
	Name   string  `json:"name"`
	Count  int     `json:"count"`
	Profit float64 `json:"profit"`
}

// SellerReport is the final per-seller result. Revenue, Profit, and Bonus
// are rounded to two decimal places; reports are ordered by descending
// profit.
type SellerReport struct {
	SellerID    string       `json:"seller_id"`
	Name        string       `json:"name"`
	Revenue     float64      `json:"revenue"`
	Profit      float64      `json:"profit"`
	SalesCount  int          `json:"sales_count"`
	Bonus       float64      `json:"bonus"`
	TopProducts []TopProduct `json:"top_products"`
}
