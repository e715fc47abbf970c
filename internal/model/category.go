package model

// ServiceCategory classifies a billed line item. The enumeration is closed;
// anything that cannot be classified falls into CategoryOthers.
type ServiceCategory string

const (
	// CategoryTax covers taxation services.
	CategoryTax ServiceCategory = "TAX"
	// CategoryAccount covers accounting services.
	CategoryAccount ServiceCategory = "ACCOUNT"
	// CategoryBPO covers business process outsourcing services.
	CategoryBPO ServiceCategory = "BPO"
	// CategorySecretary covers corporate secretarial services.
	CategorySecretary ServiceCategory = "SECRETARY"
	// CategoryOthers is the default for anything unclassifiable.
	CategoryOthers ServiceCategory = "OTHERS"
)

// categoryPriority fixes the intra-company page order for category-sorted
// sources: TAX pages first, OTHERS last.
var categoryPriority = map[ServiceCategory]int{
	CategoryTax:       1,
	CategoryAccount:   2,
	CategoryBPO:       3,
	CategorySecretary: 4,
	CategoryOthers:    5,
}

// Priority returns the fixed sort rank of the category. Unknown values rank
// with CategoryOthers.
func (c ServiceCategory) Priority() int {
	if p, ok := categoryPriority[c]; ok {
		return p
	}
	return categoryPriority[CategoryOthers]
}

// ReportCode returns the short code used as the report template's row label
// for this category.
func (c ServiceCategory) ReportCode() string {
	switch c {
	case CategoryTax:
		return "TAX"
	case CategoryAccount:
		return "ACC"
	case CategoryBPO:
		return "BPO"
	case CategorySecretary:
		return "SEC"
	default:
		return "OTHERS"
	}
}

// AllCategories lists every category in priority order.
func AllCategories() []ServiceCategory {
	return []ServiceCategory{
		CategoryTax,
		CategoryAccount,
		CategoryBPO,
		CategorySecretary,
		CategoryOthers,
	}
}

func (c ServiceCategory) String() string {
	return string(c)
}
