package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	discount := 75.0
	zero := 0.0

	tests := []struct {
		name    string
		product Product
		want    float64
	}{
		{
			name:    "offer with discount uses discount price",
			product: Product{Price: 100, DiscountPrice: &discount, IsOffer: true},
			want:    75,
		},
		{
			name:    "offer without discount falls back to list price",
			product: Product{Price: 100, IsOffer: true},
			want:    100,
		},
		{
			name:    "offer with zero discount falls back to list price",
			product: Product{Price: 100, DiscountPrice: &zero, IsOffer: true},
			want:    100,
		},
		{
			name:    "discount ignored when not flagged as offer",
			product: Product{Price: 100, DiscountPrice: &discount, IsOffer: false},
			want:    100,
		},
		{
			name:    "plain product uses list price",
			product: Product{Price: 100},
			want:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.EffectivePrice())
		})
	}
}
