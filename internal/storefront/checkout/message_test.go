package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somascents/storefront/internal/storefront/model"
)

func summary() model.CartSummary {
	lines := []model.CartLine{
		{Product: model.Product{ID: "1", Name: "Shades of Nature", Price: 199}, Quantity: 3},
		{Product: model.Product{ID: "6", Name: "Heart of Roses", Price: 79}, Quantity: 1},
	}
	return model.CartSummary{Lines: lines, TotalPrice: 676, TotalItems: 4}
}

func TestItemsText(t *testing.T) {
	assert.Equal(t,
		"Shades of Nature x 3 - ₹597\nHeart of Roses x 1 - ₹79",
		ItemsText(summary().Lines))
}

func TestAdminMessage(t *testing.T) {
	got, err := AdminMessage(context.Background(), model.CustomerDetails{
		Name: "Asha", Email: "asha@example.com", Phone: "9123456789", Address: "12 MG Road",
	}, summary())
	require.NoError(t, err)

	want := "*New Order Received!*\n\n" +
		"*Customer Details:*\n" +
		"Name: Asha\n" +
		"Email: asha@example.com\n" +
		"Phone: 9123456789\n" +
		"Address: 12 MG Road\n\n" +
		"*Order Details:*\n" +
		"Shades of Nature x 3 - ₹597\n" +
		"Heart of Roses x 1 - ₹79\n\n" +
		"*Total Amount:* ₹676"
	assert.Equal(t, want, got)
}

func TestCustomerMessage(t *testing.T) {
	got, err := CustomerMessage(context.Background(), "Soma Scents", model.CustomerDetails{Name: "Asha"}, summary())
	require.NoError(t, err)

	assert.Contains(t, got, "*Thank you for your order with Soma Scents!*")
	assert.Contains(t, got, "Dear Asha,")
	assert.Contains(t, got, "*Your Order Details:*\nShades of Nature x 3 - ₹597\nHeart of Roses x 1 - ₹79")
	assert.Contains(t, got, "*Total Amount:* ₹676")
	assert.Contains(t, got, "Thank you for choosing Soma Scents for your home fragrance needs!")
}
