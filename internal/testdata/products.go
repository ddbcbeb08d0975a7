package testdata

// Categories used by the filter specs. Each name matches a checkbox
// label on the storefront sidebar.
type Categories struct {
	Selected      string // primary category for single-filter tests
	Second        string // second category for multi-filter tests
	NoResults     string // category with an empty product list
	MultiplePages string // category large enough to paginate
}

// Brands used by the filter specs.
type Brands struct {
	Selected string
	Second   string
}

// ProductCategories returns the category names the demo catalog ships with.
func ProductCategories() Categories {
	return Categories{
		Selected:      "Hammer",
		Second:        "Wrench",
		NoResults:     "Grinder",
		MultiplePages: "Measures",
	}
}

// ProductBrands returns the brand names the demo catalog ships with.
func ProductBrands() Brands {
	return Brands{
		Selected: "ForgeFlex Tools",
		Second:   "MightyCraft Hardware",
	}
}
