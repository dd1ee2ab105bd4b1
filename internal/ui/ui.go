package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/launchora/internal/gesture"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PickerView ViewState = iota
	ZoomView
)

const (
	// headerHeight is the title line plus its margin.
	headerHeight = 2
	// footerHeight is a blank line, the status line, and the help line.
	footerHeight = 3
)

// shades runs from the center of the picture to its corners.
const shades = "@%#*+=-:. "

// Model represents the TUI application state.
type Model struct {
	view   ViewState
	viewer *gesture.Viewer
	picker list.Model
	width  int
	height int
	now    func() time.Time
	logger *log.Logger
	help   help.Model
	keys   keyMap
}

// NewModel creates a TUI model that previews images. [DefaultImages] is used when images is empty.
func NewModel(images []gesture.Image, logger *log.Logger) *Model {
	if len(images) == 0 {
		images = DefaultImages()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Model{
		view:   PickerView,
		viewer: gesture.NewViewer(gesture.Viewport{}),
		picker: newPicker(images),
		now:    time.Now,
		logger: logger,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init has nothing to load.
func (m *Model) Init() tea.Cmd {
	return nil
}

// ViewState returns the active view.
func (m *Model) ViewState() ViewState { return m.view }

// Viewer returns the zoom session.
func (m *Model) Viewer() *gesture.Viewer { return m.viewer }

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.SetSize(max(msg.Width-4, 0), max(msg.Height-footerHeight, 0))
		m.viewer.Resize(m.viewport())
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		switch m.view {
		case PickerView:
			return m.handlePickerKeys(msg)
		case ZoomView:
			return m.handleZoomKeys(msg)
		}

	case tea.MouseMsg:
		if m.view != ZoomView {
			return m, nil
		}
		if e, ok := mouseEvent(msg, headerHeight, m.now()); ok {
			m.viewer.Handle(e)
		}
		return m, nil
	}

	if m.view == PickerView {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case PickerView:
		helpView := styles.help.Render(m.help.ShortHelpView([]key.Binding{m.keys.open, m.keys.quit}))
		return fmt.Sprintf("%s\n\n%s", m.picker.View(), helpView)
	case ZoomView:
		return m.renderZoom()
	default:
		return ""
	}
}

func (m *Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.open, m.keys.toggle) {
		if item, ok := m.picker.SelectedItem().(imageItem); ok {
			m.open(item.image)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *Model) handleZoomKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	center := m.viewport().Center()

	switch {
	case key.Matches(msg, m.keys.zoomIn):
		m.viewer.Handle(gesture.Wheel{Cursor: center, Direction: 1})
	case key.Matches(msg, m.keys.zoomOut):
		m.viewer.Handle(gesture.Wheel{Cursor: center, Direction: -1})
	case key.Matches(msg, m.keys.reset):
		m.viewer.Handle(gesture.Reset{})
	case key.Matches(msg, m.keys.close):
		m.viewer.Key("Escape")
		m.closed()
	case key.Matches(msg, m.keys.toggle):
		m.viewer.Close()
		m.closed()
	}
	return m, nil
}

func (m *Model) open(img gesture.Image) {
	m.viewer.Resize(m.viewport())
	m.viewer.Open(img)
	m.view = ZoomView
	m.logger.Debug("viewer opened", "src", img.Source())
}

func (m *Model) closed() {
	m.view = PickerView
	m.logger.Debug("viewer closed")
}

// viewport is the picture area: the window minus the header and footer.
func (m *Model) viewport() gesture.Viewport {
	return gesture.Viewport{
		Width:  float64(max(m.width, 1)),
		Height: float64(max(m.height-headerHeight-footerHeight, 1)),
	}
}

func (m *Model) renderZoom() string {
	vp := m.viewport()
	tr := m.viewer.Tracker()

	title := styles.title.Render(m.viewer.Image().Label())
	picture := styles.picture.Render(renderPicture(tr.Transform, int(vp.Width), int(vp.Height)))
	status := styles.status.Render(fmt.Sprintf(
		"scale %.2f  translate (%.1f, %.1f)  cursor %s",
		tr.Transform.Scale, tr.Transform.TranslateX, tr.Transform.TranslateY, tr.Cursor(),
	))
	helpView := styles.help.Render(m.help.ShortHelpView([]key.Binding{
		m.keys.zoomIn, m.keys.zoomOut, m.keys.reset, m.keys.close, m.keys.quit,
	}))

	return fmt.Sprintf("%s\n%s\n\n%s\n%s", title, picture, status, helpView)
}

// renderPicture draws a width by height picture as seen through tr. Each cell samples the image at the point that
// projects onto the cell's center; cells that fall outside the image are blank.
func renderPicture(tr gesture.Transform, width, height int) string {
	vp := gesture.Viewport{Width: float64(width), Height: float64(height)}
	center := vp.Center()

	var b strings.Builder
	for y := range height {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range width {
			b.WriteByte(shade(tr.Unproject(cellPoint(x, y, 0), center), vp))
		}
	}
	return b.String()
}

// shade returns the character of the image at p, a point in image space.
func shade(p gesture.Point, vp gesture.Viewport) byte {
	u, v := p.X/vp.Width, p.Y/vp.Height
	if u < 0 || u >= 1 || v < 0 || v >= 1 {
		return ' '
	}

	d := math.Min(math.Hypot(u-0.5, v-0.5)*math.Sqrt2, 1)
	i := int(d * float64(len(shades)-1))
	if i >= len(shades)-3 && (int(u*16)+int(v*8))%2 == 0 {
		return '.'
	}
	return shades[i]
}
