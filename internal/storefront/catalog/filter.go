package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/somascents/storefront/internal/storefront/model"
)

// SortOrder names one of the listing orders.
type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
	SortName      SortOrder = "name"
)

// ParseSortOrder maps a query value onto a SortOrder. Empty and unknown
// values are reported as an error alongside SortDefault.
func ParseSortOrder(v string) (SortOrder, error) {
	switch SortOrder(v) {
	case SortDefault, "":
		return SortDefault, nil
	case SortPriceLow, SortPriceHigh, SortName:
		return SortOrder(v), nil
	default:
		return SortDefault, fmt.Errorf("unknown sort order %q", v)
	}
}

// ScentTags splits a comma-separated scent field into trimmed tokens.
func ScentTags(scent string) []string {
	parts := strings.Split(scent, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

// InCategory reports whether category (trimmed) is one of the product's
// scent tags. Matching is exact and case-sensitive.
func InCategory(p model.Product, category string) bool {
	category = strings.TrimSpace(category)
	for _, tag := range ScentTags(p.Scent) {
		if tag == category {
			return true
		}
	}
	return false
}

// Matches reports whether query occurs, ignoring case, in the product's
// name, description or scent.
func Matches(p model.Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Scent), q)
}

// FilterCategory returns the products in category, preserving order.
func FilterCategory(products []model.Product, category string) []model.Product {
	out := make([]model.Product, 0)
	for _, p := range products {
		if InCategory(p, category) {
			out = append(out, p)
		}
	}
	return out
}

// Search returns the products matching query, preserving order.
func Search(products []model.Product, query string) []model.Product {
	out := make([]model.Product, 0)
	for _, p := range products {
		if Matches(p, query) {
			out = append(out, p)
		}
	}
	return out
}

// Suggestions returns at most limit search matches for a non-empty query.
func Suggestions(products []model.Product, query string, limit int) []model.Product {
	if strings.TrimSpace(query) == "" || limit <= 0 {
		return []model.Product{}
	}
	matches := Search(products, query)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Sort returns a sorted copy of products; the input is left untouched.
func Sort(products []model.Product, order SortOrder) []model.Product {
	out := append([]model.Product(nil), products...)
	switch order {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortName:
		// Collators keep scratch buffers and are not safe to share.
		col := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	}
	return out
}

// DiscountPercent is the rounded percentage saved against the original
// price, or 0 when there is no higher original price.
func DiscountPercent(p model.Product) int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	orig := float64(*p.OriginalPrice)
	return int(math.Round((orig - float64(p.Price)) / orig * 100))
}

// Categories returns the distinct scent tags in first-seen order.
func Categories(products []model.Product) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range products {
		for _, tag := range ScentTags(p.Scent) {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

// CategoryCount is the number of products tagged with category.
func CategoryCount(products []model.Product, category string) int {
	n := 0
	for _, p := range products {
		if InCategory(p, category) {
			n++
		}
	}
	return n
}

// Listing is one visible window of a product list.
type Listing struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
	HasMore  bool            `json:"hasMore"`
}

// Page returns the first visible products of list. A non-positive visible
// count shows nothing.
func Page(list []model.Product, visible int) Listing {
	if visible < 0 {
		visible = 0
	}
	if visible > len(list) {
		visible = len(list)
	}
	return Listing{
		Products: append([]model.Product{}, list[:visible]...),
		Total:    len(list),
		HasMore:  visible < len(list),
	}
}
