package site

import "time"

const (
	// AllCategories selects every item.
	AllCategories = "all"
	// ServiceStagger delays each visible service card by its index.
	ServiceStagger = 100 * time.Millisecond
)

// Visibility is the state of one filtered item.
type Visibility struct {
	Visible bool
	Delay   time.Duration
}

// Filter is a category filter over a grid of items. A zero Stagger shows every item at once.
type Filter struct {
	Active  string
	Stagger time.Duration
}

// NewPortfolioFilter returns the portfolio filter with everything selected.
func NewPortfolioFilter() Filter {
	return Filter{Active: AllCategories}
}

// NewServiceFilter returns the services filter with everything selected.
func NewServiceFilter() Filter {
	return Filter{Active: AllCategories, Stagger: ServiceStagger}
}

// Select makes category the active filter. An empty category selects everything.
func (f Filter) Select(category string) Filter {
	if category == "" {
		category = AllCategories
	}
	f.Active = category
	return f
}

// Matches reports whether an item in category passes the filter.
func (f Filter) Matches(category string) bool {
	return f.Active == AllCategories || f.Active == "" || f.Active == category
}

// Apply returns the visibility of each item, given the item categories in page order. Visible items are delayed by
// their index times Stagger; hidden items have no delay.
func (f Filter) Apply(categories []string) []Visibility {
	out := make([]Visibility, len(categories))
	for i, c := range categories {
		if f.Matches(c) {
			out[i] = Visibility{Visible: true, Delay: time.Duration(i) * f.Stagger}
		}
	}
	return out
}
