package model

// CartLine is a product in the cart together with its quantity. The line is
// keyed by the product identifier and its fields serialise flat, matching the
// persisted snapshot layout.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is price times quantity.
func (l CartLine) Subtotal() int {
	return l.Price * l.Quantity
}

// CartSummary is the aggregate view handed to the presentation layer.
type CartSummary struct {
	Lines      []CartLine `json:"lines"`
	TotalPrice int        `json:"totalPrice"`
	TotalItems int        `json:"totalItems"`
}
