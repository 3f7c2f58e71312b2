package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/models"
)

func validInput() models.ProductInput {
	return models.ProductInput{
		Name:     "Leather Backpack",
		Price:    "299.99",
		Category: "mens-bags",
	}
}

func TestParseInput(t *testing.T) {
	input := validInput()
	input.DiscountPrice = "199.50"
	input.SubCategory = "Backpacks"
	input.IsOffer = true

	product, err := parseInput(input)
	require.NoError(t, err)

	assert.Equal(t, "Leather Backpack", product.Name)
	assert.Equal(t, 299.99, product.Price)
	require.NotNil(t, product.DiscountPrice)
	assert.Equal(t, 199.50, *product.DiscountPrice)
	assert.Equal(t, "mens-bags", product.Category)
	assert.True(t, product.IsOffer)
}

func TestParseInputEmptyDiscountMeansNoDiscount(t *testing.T) {
	product, err := parseInput(validInput())
	require.NoError(t, err)
	assert.Nil(t, product.DiscountPrice)
}

func TestParseInputRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ProductInput)
	}{
		{name: "empty name", mutate: func(in *models.ProductInput) { in.Name = "  " }},
		{name: "non-numeric price", mutate: func(in *models.ProductInput) { in.Price = "cheap" }},
		{name: "negative price", mutate: func(in *models.ProductInput) { in.Price = "-10" }},
		{name: "non-numeric discount", mutate: func(in *models.ProductInput) { in.DiscountPrice = "half off" }},
		{name: "negative discount", mutate: func(in *models.ProductInput) { in.DiscountPrice = "-1" }},
		{name: "unknown category", mutate: func(in *models.ProductInput) { in.Category = "shoes" }},
		{name: "empty category", mutate: func(in *models.ProductInput) { in.Category = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := parseInput(input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParseInputZeroPriceAllowed(t *testing.T) {
	input := validInput()
	input.Price = "0"

	product, err := parseInput(input)
	require.NoError(t, err)
	assert.Equal(t, 0.0, product.Price)
}

func TestParseInputSubCategoryNotRevalidated(t *testing.T) {
	// Sub-category membership is the form's job; the core accepts any value.
	input := validInput()
	input.SubCategory = "Totally Made Up"

	product, err := parseInput(input)
	require.NoError(t, err)
	assert.Equal(t, "Totally Made Up", product.SubCategory)
}
