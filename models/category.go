package models

// Category is the product classification of a form response. The five GI
// product categories are closed; everything else is Unknown.
type Category string

const (
	CategoryAgricultural Category = "Agricultural Products"
	CategoryFood         Category = "Food & Beverages"
	CategoryHandicraft   Category = "Handicrafts & Artisanal Products"
	CategoryTextile      Category = "Textiles & Fabrics"
	CategoryNatural      Category = "Natural Products & Extracts"
	CategoryUnknown      Category = "Unknown"
)

// Categories returns the known categories in form order. The order is
// load-bearing: free-text classification takes the first keyword match.
func Categories() []Category {
	return []Category{
		CategoryAgricultural,
		CategoryFood,
		CategoryHandicraft,
		CategoryTextile,
		CategoryNatural,
	}
}

// Known reports whether c is one of the five product categories.
func (c Category) Known() bool {
	switch c {
	case CategoryAgricultural, CategoryFood, CategoryHandicraft, CategoryTextile, CategoryNatural:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
