package model

// Product is a catalog candle. Prices are whole rupees.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice *int     `json:"originalPrice,omitempty"`
	PackPrice     *int     `json:"packPrice,omitempty"`
	Image         string   `json:"image"`
	Images        []string `json:"images,omitempty"`
	Description   string   `json:"description"`
	Scent         string   `json:"scent"`
}

// Clone returns a deep copy so callers never alias catalog data.
func (p Product) Clone() Product {
	c := p
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		c.OriginalPrice = &v
	}
	if p.PackPrice != nil {
		v := *p.PackPrice
		c.PackPrice = &v
	}
	if p.Images != nil {
		c.Images = append([]string(nil), p.Images...)
	}
	return c
}

// BestSeller is a promotional record shown in the best sellers strip.
type BestSeller struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Price         int    `json:"price"`
	OriginalPrice *int   `json:"originalPrice,omitempty"`
	Image         string `json:"image"`
	Description   string `json:"description"`
	Scent         string `json:"scent"`
}

// ProductView is a product decorated with derived display fields.
type ProductView struct {
	Product
	DiscountPercent int  `json:"discountPercent,omitempty"`
	Favorite        bool `json:"favorite"`
}

// Rupees returns a pointer to v, for optional price fields.
func Rupees(v int) *int {
	return &v
}
