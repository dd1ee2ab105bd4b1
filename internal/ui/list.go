package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/launchora/internal/gesture"
)

var _ list.DefaultItem = imageItem{}

// imageItem wraps [gesture.Image] to implement [list.Item].
type imageItem struct {
	image gesture.Image
}

func (i imageItem) FilterValue() string { return i.image.Alt }
func (i imageItem) Title() string {
	if i.image.Alt == "" {
		return "Portfolio Image"
	}
	return i.image.Alt
}
func (i imageItem) Description() string { return i.image.Source() }

// DefaultImages lists the portfolio pieces shown by the preview when none are given.
func DefaultImages() []gesture.Image {
	return []gesture.Image{
		{Src: "images/portfolio/brand-refresh.jpg", ZoomSrc: "images/portfolio/brand-refresh@2x.jpg", Alt: "Brand refresh"},
		{Src: "images/portfolio/product-launch.jpg", ZoomSrc: "images/portfolio/product-launch@2x.jpg", Alt: "Product launch campaign"},
		{Src: "images/portfolio/social-series.jpg", Alt: "Social media series"},
		{Src: "images/portfolio/event-print.jpg", Alt: ""},
	}
}

func newPicker(images []gesture.Image) list.Model {
	items := make([]list.Item, len(images))
	for i, img := range images {
		items[i] = imageItem{image: img}
	}

	picker := list.New(items, list.NewDefaultDelegate(), 0, 0)
	picker.Title = "Portfolio"
	picker.SetFilteringEnabled(false)
	picker.SetShowHelp(false)
	return picker
}
