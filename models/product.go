package models

import "time"

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	DiscountPrice *float64  `json:"discount_price,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Category      string    `json:"category"`
	SubCategory   string    `json:"sub_category,omitempty"`
	IsOffer       bool      `json:"is_offer"`
	CreatedAt     time.Time `json:"created_at"`
}

// EffectivePrice returns the discount price for an active offer and the
// list price otherwise. An offer flag without a usable discount price falls
// back to the list price.
func (p Product) EffectivePrice() float64 {
	if p.IsOffer && p.DiscountPrice != nil && *p.DiscountPrice > 0 {
		return *p.DiscountPrice
	}
	return p.Price
}

// ProductInput is the admin upsert payload. Prices arrive as strings from
// the form and are parsed by the catalog store.
type ProductInput struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	DiscountPrice string `json:"discount_price"`
	ImageURL      string `json:"image_url"`
	Category      string `json:"category"`
	SubCategory   string `json:"sub_category"`
	IsOffer       bool   `json:"is_offer"`
}
