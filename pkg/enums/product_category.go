package enums

import "fmt"

// ProductCategory groups products for broker discount lookups and reporting.
type ProductCategory string

const (
	ProductCategoryBusinessCards ProductCategory = "business_cards"
	ProductCategoryFlyers        ProductCategory = "flyers"
	ProductCategoryPostcards     ProductCategory = "postcards"
	ProductCategoryBrochures     ProductCategory = "brochures"
	ProductCategoryBanners       ProductCategory = "banners"
	ProductCategoryStickers      ProductCategory = "stickers"
	ProductCategoryBooklets      ProductCategory = "booklets"
)

var validProductCategories = []ProductCategory{
	ProductCategoryBusinessCards,
	ProductCategoryFlyers,
	ProductCategoryPostcards,
	ProductCategoryBrochures,
	ProductCategoryBanners,
	ProductCategoryStickers,
	ProductCategoryBooklets,
}

// String implements fmt.Stringer.
func (p ProductCategory) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductCategory.
func (p ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
