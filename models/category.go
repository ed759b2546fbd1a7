package models

// ListingCategories is the fixed label set offered by the seller listing form.
var ListingCategories = []string{
	"Electronics",
	"Accessories",
	"Home & Office",
	"Fashion",
	"Sports",
	"Books",
}

// IsListingCategory reports whether label is one of ListingCategories.
func IsListingCategory(label string) bool {
	for _, c := range ListingCategories {
		if c == label {
			return true
		}
	}
	return false
}
