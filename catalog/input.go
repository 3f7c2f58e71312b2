package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/config"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/models"
)

// ErrInvalidInput marks admin form errors; wrap-checked with errors.Is.
var ErrInvalidInput = errors.New("invalid product input")

// parseInput validates the admin form. Prices must parse as non-negative
// decimals and the category must be a configured key. Sub-category
// membership is not re-checked: the form restricts it, and the catalog
// owner is responsible for the rest.
func parseInput(input models.ProductInput) (models.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return models.Product{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	price, err := strconv.ParseFloat(input.Price, 64)
	if err != nil || price < 0 {
		return models.Product{}, fmt.Errorf("%w: price must be a non-negative number", ErrInvalidInput)
	}

	var discount *float64
	if input.DiscountPrice != "" {
		d, err := strconv.ParseFloat(input.DiscountPrice, 64)
		if err != nil || d < 0 {
			return models.Product{}, fmt.Errorf("%w: discount price must be a non-negative number", ErrInvalidInput)
		}
		discount = &d
	}

	if !config.ValidCategory(input.Category) {
		return models.Product{}, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, input.Category)
	}

	return models.Product{
		ID:            input.ID,
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		Price:         price,
		DiscountPrice: discount,
		ImageURL:      input.ImageURL,
		Category:      input.Category,
		SubCategory:   input.SubCategory,
		IsOffer:       input.IsOffer,
	}, nil
}
