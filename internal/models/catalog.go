package models

// StaticPackage describes one of the three fixed booking tiers. The tier
// price is the per-person fallback used when no live tour is selected.
type StaticPackage struct {
	Name           string
	PerPersonPrice float64
	Description    string
	Features       []string
	CatalogID      int // backend tour id the tier maps to
}

// StaticPackageCatalog holds the three fixed tiers. It is immutable; callers
// must not modify the returned values.
var StaticPackageCatalog = map[PackageKind]StaticPackage{
	PackageStandard: {
		Name:           "Standard Package",
		PerPersonPrice: 100,
		Description:    "Basic tour package with essential amenities",
		Features:       []string{"Guided tour", "Basic accommodation", "Local transportation"},
		CatalogID:      1,
	},
	PackagePremium: {
		Name:           "Premium Package",
		PerPersonPrice: 200,
		Description:    "Enhanced experience with additional services",
		Features:       []string{"Private guide", "4-star accommodation", "All meals included", "Airport transfers"},
		CatalogID:      2,
	},
	PackageDeluxe: {
		Name:           "Deluxe Package",
		PerPersonPrice: 350,
		Description:    "Luxury experience with premium services",
		Features:       []string{"VIP treatment", "5-star accommodation", "Gourmet meals", "Private transfers", "Spa access"},
		CatalogID:      3,
	},
}
