package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somascents/storefront/internal/storefront/model"
)

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestInCategory_ExactTrimmedTokens(t *testing.T) {
	p := model.Product{ID: "x", Scent: "Floral, Rose"}

	assert.True(t, InCategory(p, "Rose"))
	assert.True(t, InCategory(p, "Floral"))
	assert.True(t, InCategory(p, "  Rose "))
	assert.False(t, InCategory(p, "Ros"))
	assert.False(t, InCategory(p, "rose"))
	assert.False(t, InCategory(p, "Floral, Rose"))
}

func TestMatches_CaseInsensitiveAcrossFields(t *testing.T) {
	p := model.Product{
		Name:        "Heart of Roses",
		Description: "A charming small candle",
		Scent:       "Rose",
	}

	assert.True(t, Matches(p, "HEART"))
	assert.True(t, Matches(p, "charming"))
	assert.True(t, Matches(p, "rose"))
	assert.True(t, Matches(p, ""))
	assert.False(t, Matches(p, "lavender"))
}

func TestSort_PriceOrdersAreReversed(t *testing.T) {
	in := []model.Product{
		{ID: "a", Name: "A", Price: 300},
		{ID: "b", Name: "B", Price: 100},
		{ID: "c", Name: "C", Price: 200},
	}

	low := Sort(in, SortPriceLow)
	high := Sort(in, SortPriceHigh)

	assert.Equal(t, []string{"b", "c", "a"}, ids(low))
	assert.Equal(t, []string{"a", "c", "b"}, ids(high))
	assert.Equal(t, []string{"a", "b", "c"}, ids(in), "input must not be reordered")
}

func TestSort_DefaultKeepsInsertionOrder(t *testing.T) {
	in := []model.Product{{ID: "2", Price: 5}, {ID: "1", Price: 1}}
	assert.Equal(t, []string{"2", "1"}, ids(Sort(in, SortDefault)))
}

func TestSort_NameUsesCollation(t *testing.T) {
	in := []model.Product{
		{ID: "1", Name: "lavender"},
		{ID: "2", Name: "Daisy"},
		{ID: "3", Name: "amber"},
	}

	assert.Equal(t, []string{"3", "2", "1"}, ids(Sort(in, SortName)))
}

func TestSort_StableForEqualPrices(t *testing.T) {
	in := []model.Product{
		{ID: "4", Price: 79},
		{ID: "6", Price: 79},
		{ID: "1", Price: 10},
	}
	assert.Equal(t, []string{"1", "4", "6"}, ids(Sort(in, SortPriceLow)))
	assert.Equal(t, []string{"4", "6", "1"}, ids(Sort(in, SortPriceHigh)))
}

func TestParseSortOrder(t *testing.T) {
	o, err := ParseSortOrder("price-high")
	require.NoError(t, err)
	assert.Equal(t, SortPriceHigh, o)

	o, err = ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, SortDefault, o)

	o, err = ParseSortOrder("cheapest")
	assert.Error(t, err)
	assert.Equal(t, SortDefault, o)
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name string
		p    model.Product
		want int
	}{
		{"no original price", model.Product{Price: 79}, 0},
		{"original equals price", model.Product{Price: 100, OriginalPrice: model.Rupees(100)}, 0},
		{"original below price", model.Product{Price: 100, OriginalPrice: model.Rupees(90)}, 0},
		{"rounds down", model.Product{Price: 199, OriginalPrice: model.Rupees(249)}, 20},
		{"rounds up", model.Product{Price: 200, OriginalPrice: model.Rupees(299)}, 33},
		{"diya", model.Product{Price: 45, OriginalPrice: model.Rupees(50)}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountPercent(tt.p))
		})
	}
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	in := []model.Product{
		{Scent: "Floral"},
		{Scent: "Floral, Rose"},
		{Scent: "Vanilla, Floral"},
	}
	assert.Equal(t, []string{"Floral", "Rose", "Vanilla"}, Categories(in))
	assert.Equal(t, 3, CategoryCount(in, "Floral"))
	assert.Equal(t, 1, CategoryCount(in, "Rose"))
}

func TestSuggestions_LimitAndEmptyQuery(t *testing.T) {
	all := Default().Products()

	assert.Empty(t, Suggestions(all, "   ", 5))
	got := Suggestions(all, "floral", 5)
	assert.Len(t, got, 5)
	assert.Equal(t, "1", got[0].ID)
}

func TestPage(t *testing.T) {
	list := Default().Products()

	first := Page(list, 12)
	assert.Len(t, first.Products, 12)
	assert.Equal(t, len(list), first.Total)
	assert.True(t, first.HasMore)

	all := Page(list, 100)
	assert.Len(t, all.Products, len(list))
	assert.False(t, all.HasMore)
}
