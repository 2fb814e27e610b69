package report

// index holds the lookup tables used to join purchase records against
// sellers and products in O(1).
type index struct {
	sellers  map[string]Seller
	products map[string]Product
}

// newIndex builds both lookup tables, one pass per collection. If an id
// or sku appears twice, the later entry wins.
func newIndex(ds *Dataset) *index {
	idx := &index{
		sellers:  make(map[string]Seller, len(ds.Sellers)),
		products: make(map[string]Product, len(ds.Products)),
	}
	for _, s := range ds.Sellers {
		idx.sellers[s.ID] = s
	}
	for _, p := range ds.Products {
		idx.products[p.SKU] = p
	}
	return idx
}
