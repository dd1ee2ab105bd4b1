package site

import "time"

// MenuItemDelay staggers the entrance of each mobile menu link.
const MenuItemDelay = 100 * time.Millisecond

// Menu is the mobile navigation menu.
type Menu struct {
	Open bool
}

// Toggle flips the menu.
func (m Menu) Toggle() Menu {
	m.Open = !m.Open
	return m
}

// Close shuts the menu, as a click outside the navbar or on a link does.
func (m Menu) Close() Menu {
	m.Open = false
	return m
}

// ScrollLocked reports whether the page body must not scroll.
func (m Menu) ScrollLocked() bool { return m.Open }

// ItemDelays returns the entrance delay of each of n links.
func ItemDelays(n int) []time.Duration {
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = time.Duration(i) * MenuItemDelay
	}
	return delays
}
