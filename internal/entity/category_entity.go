package entity

// Category is the closed set of ticket categories the agent understands.
type Category string

const (
	CategoryBilling  Category = "billing"
	CategoryTech     Category = "tech"
	CategoryShipping Category = "shipping"
	CategoryOther    Category = "other"
)

// Categories lists every valid category. The order doubles as the
// classifier tie-break priority, so keep billing/tech/shipping/other.
func Categories() []Category {
	return []Category{CategoryBilling, CategoryTech, CategoryShipping, CategoryOther}
}

// ParseCategory maps a raw string to a Category. Unknown values resolve
// to CategoryOther with ok=false so callers can decide whether to reject.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryBilling, CategoryTech, CategoryShipping, CategoryOther:
		return Category(s), true
	}
	return CategoryOther, false
}
