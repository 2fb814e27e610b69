// Package benchutil provides synthetic dataset generation for benchmarks and testing.
package benchutil

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/eunmann/sales-report-db/pkg/report"
)

// GeneratorConfig configures synthetic dataset generation.
type GeneratorConfig struct {
	// NumSellers is the number of sellers to generate.
	NumSellers int
	// NumProducts is the number of catalog products to generate.
	NumProducts int
	// NumPurchases is the number of purchase records to generate.
	NumPurchases int
	// MaxItemsPerPurchase caps the line items per purchase record.
	MaxItemsPerPurchase int
	// UnknownSellerRate is the probability (0.0-1.0) that a purchase
	// references a seller id absent from the snapshot.
	UnknownSellerRate float64
	// UnknownSKURate is the probability (0.0-1.0) that a line item
	// references a sku absent from the catalog.
	UnknownSKURate float64
	// SeniorRate is the probability (0.0-1.0) that a seller holds the
	// senior title.
	SeniorRate float64
	// Seed for reproducible generation. 0 = use default seed.
	Seed int64
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig(numPurchases int) GeneratorConfig {
	return GeneratorConfig{
		NumSellers:          25,
		NumProducts:         200,
		NumPurchases:        numPurchases,
		MaxItemsPerPurchase: 5,
		UnknownSellerRate:   0.02,
		UnknownSKURate:      0.03,
		SeniorRate:          0.2,
		Seed:                42,
	}
}

// Generator generates synthetic sales datasets.
type Generator struct {
	cfg GeneratorConfig
	rng *rand.Rand
}

// NewGenerator creates a new dataset generator.
func NewGenerator(cfg GeneratorConfig) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

var (
	firstNames = []string{"Ava", "Ben", "Clara", "Dmitri", "Elena", "Felix", "Grace", "Hugo", "Iris", "Jonas", "Kira", "Liam", "Mona", "Nils", "Olga", "Pavel"}
	lastNames  = []string{"Adler", "Brandt", "Carter", "Dietrich", "Eriksen", "Fischer", "Graham", "Hoffman", "Ivanov", "Jensen", "Keller", "Lang", "Mercer", "Novak", "Olsen", "Petrov"}
	positions  = []string{"Sales Associate", "Sales Representative", "Account Manager"}

	productAdjectives = []string{"Compact", "Deluxe", "Portable", "Classic", "Wireless", "Heavy-Duty", "Eco", "Premium"}
	productNouns      = []string{"Blender", "Kettle", "Lamp", "Speaker", "Backpack", "Monitor", "Grinder", "Heater", "Keyboard", "Thermos"}
)

// Generate returns a synthetic dataset. Purchases reference unknown
// sellers and skus at the configured rates to exercise the pipeline's
// skip paths.
func (g *Generator) Generate() *report.Dataset {
	ds := &report.Dataset{
		Sellers:         make([]report.Seller, g.cfg.NumSellers),
		Products:        make([]report.Product, g.cfg.NumProducts),
		PurchaseRecords: make([]report.PurchaseRecord, g.cfg.NumPurchases),
	}

	for i := range ds.Sellers {
		position := positions[g.rng.Intn(len(positions))]
		if g.rng.Float64() < g.cfg.SeniorRate {
			position = report.SeniorPosition
		}
		ds.Sellers[i] = report.Seller{
			ID:        fmt.Sprintf("S-%04d", i),
			FirstName: firstNames[g.rng.Intn(len(firstNames))],
			LastName:  lastNames[g.rng.Intn(len(lastNames))],
			Position:  position,
		}
	}

	for i := range ds.Products {
		ds.Products[i] = report.Product{
			SKU:           fmt.Sprintf("SKU-%05d", i),
			Name:          g.productName(),
			PurchasePrice: roundCents(5 + g.rng.Float64()*495),
		}
	}

	for i := range ds.PurchaseRecords {
		ds.PurchaseRecords[i] = g.generatePurchase(ds, i)
	}

	return ds
}

func (g *Generator) generatePurchase(ds *report.Dataset, n int) report.PurchaseRecord {
	sellerID := ds.Sellers[g.rng.Intn(len(ds.Sellers))].ID
	if g.rng.Float64() < g.cfg.UnknownSellerRate {
		sellerID = fmt.Sprintf("S-GONE-%04d", n)
	}

	maxItems := g.cfg.MaxItemsPerPurchase
	if maxItems < 1 {
		maxItems = 1
	}
	items := make([]report.LineItem, 1+g.rng.Intn(maxItems))
	for j := range items {
		product := ds.Products[g.rng.Intn(len(ds.Products))]
		sku := product.SKU
		if g.rng.Float64() < g.cfg.UnknownSKURate {
			sku = fmt.Sprintf("SKU-GONE-%05d", g.rng.Intn(100000))
		}
		// Markup between -10% and +50% of purchase price
		items[j] = report.LineItem{
			SKU:       sku,
			SalePrice: roundCents(product.PurchasePrice * (0.9 + g.rng.Float64()*0.6)),
			Quantity:  1 + g.rng.Intn(5),
		}
	}

	return report.PurchaseRecord{
		SellerID: sellerID,
		Items:    items,
	}
}

func (g *Generator) productName() string {
	return productAdjectives[g.rng.Intn(len(productAdjectives))] + " " +
		productNouns[g.rng.Intn(len(productNouns))]
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
