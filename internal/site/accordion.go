package site

// Accordion is the FAQ list. At most one item is open.
type Accordion struct {
	items int
	open  int
}

// NewAccordion returns an accordion of n items with the first one open.
func NewAccordion(n int) Accordion {
	a := Accordion{items: n, open: -1}
	if n > 0 {
		a.open = 0
	}
	return a
}

// Toggle opens item i and closes the others, or closes i if it is already open. Out of range indexes are ignored.
func (a Accordion) Toggle(i int) Accordion {
	if i < 0 || i >= a.items {
		return a
	}
	if a.open == i {
		a.open = -1
	} else {
		a.open = i
	}
	return a
}

// Open returns the index of the open item, or -1.
func (a Accordion) Open() int { return a.open }

// IsOpen reports whether item i is open.
func (a Accordion) IsOpen(i int) bool { return i >= 0 && a.open == i }

// Len returns the number of items.
func (a Accordion) Len() int { return a.items }
