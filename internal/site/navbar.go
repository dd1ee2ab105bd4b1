package site

import "strings"

const (
	// ScrolledOffset is the scroll position past which the navbar turns solid.
	ScrolledOffset = 50
	// HideOffset is the scroll position past which scrolling down hides the navbar.
	HideOffset = 200
)

// Navbar is the sticky navigation bar.
type Navbar struct {
	Scrolled bool
	Hidden   bool
	lastTop  float64
}

// Scroll updates the navbar for a new scroll position.
func (n Navbar) Scroll(top float64) Navbar {
	n.Scrolled = top > ScrolledOffset
	n.Hidden = top > n.lastTop && top > HideOffset
	n.lastTop = top
	return n
}

// Transform returns the CSS transform that shows or hides the bar.
func (n Navbar) Transform() string {
	if n.Hidden {
		return "translateY(-100%)"
	}
	return "translateY(0)"
}

// IsActiveLink reports whether href points at the page served at path. The site root counts as index.html.
func IsActiveLink(path, href string) bool {
	page := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		page = path[i+1:]
	}
	if page == "" {
		page = "index.html"
	}
	return href == page
}
