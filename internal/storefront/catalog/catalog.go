// Package catalog holds the static candle catalog and the filtering,
// search and sort policies applied to it.
package catalog

import (
	"github.com/somascents/storefront/internal/storefront/model"
)

// Catalog is a read-only, ordered product list.
type Catalog struct {
	products    []model.Product
	index       map[string]int
	bestSellers []model.BestSeller
}

// New builds a catalog over products. Later duplicates of an identifier are ignored.
func New(products []model.Product, sellers []model.BestSeller) *Catalog {
	c := &Catalog{
		products:    make([]model.Product, 0, len(products)),
		index:       make(map[string]int, len(products)),
		bestSellers: append([]model.BestSeller(nil), sellers...),
	}
	for _, p := range products {
		if _, dup := c.index[p.ID]; dup {
			continue
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p.Clone())
	}
	return c
}

// Default returns the hand-authored storefront catalog.
func Default() *Catalog {
	return New(candles, bestSellers)
}

// Products returns a copy of every product in catalog order.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out
}

// Find looks up a product by identifier.
func (c *Catalog) Find(id string) (model.Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i].Clone(), true
}

// BestSellers returns the promotional best sellers list.
func (c *Catalog) BestSellers() []model.BestSeller {
	return append([]model.BestSeller(nil), c.bestSellers...)
}

// Len is the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Query selects and orders a window of the catalog.
type Query struct {
	Category string
	Search   string
	Sort     SortOrder
	// Visible limits the window; zero means everything.
	Visible int
}

// List applies q: category filter, then search, then sort, then paging.
func (c *Catalog) List(q Query) Listing {
	list := c.Products()
	if q.Category != "" {
		list = FilterCategory(list, q.Category)
	}
	if q.Search != "" {
		list = Search(list, q.Search)
	}
	list = Sort(list, q.Sort)
	if q.Visible <= 0 {
		return Page(list, len(list))
	}
	return Page(list, q.Visible)
}
