package config

// Category describes one storefront section. Subs, when set, is the fixed
// sub-category list the admin form offers for that section.
type Category struct {
	Title string
	Subs  []string
}

// Categories is the storefront section table. "offers" is not listed here:
// it is a product flag, not a stored category.
var Categories = map[string]Category{
	"mens-bags":   {Title: "Men's Bags", Subs: []string{"Backpacks", "Handbags", "Crossbody Bags"}},
	"womens-bags": {Title: "Women's Bags", Subs: []string{"Backpacks", "Shoulder Bags"}},
	"wallets":     {Title: "Wallets"},
}

func ValidCategory(key string) bool {
	_, ok := Categories[key]
	return ok
}
