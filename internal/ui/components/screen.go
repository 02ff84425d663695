package components

import (
	"github.com/tessier-labs/authform/internal/ui"
)

// Screen frames a full authentication screen: an optional header, a divider,
// and the body content inside a padded, bordered container.
type Screen struct {
	BaseComponent
	header *Header
	body   []ui.Renderable
	width  int
}

// NewScreen creates a screen with the given body content.
func NewScreen(body ...ui.Renderable) *Screen {
	return &Screen{
		BaseComponent: NewBaseComponent(),
		body:          body,
	}
}

// WithHeader sets the screen header.
func (s *Screen) WithHeader(header *Header) *Screen {
	s.header = header
	return s
}

// WithWidth constrains the screen content width.
func (s *Screen) WithWidth(width int) *Screen {
	s.width = width
	return s
}

// View renders the screen.
func (s *Screen) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the screen with layout context.
func (s *Screen) ViewWithContext(ctx RenderContext) string {
	if s.width > 0 {
		ctx = ctx.WithConstraints(WithMaxWidth(s.width))
	}

	children := make([]ui.Renderable, 0, len(s.body)+2)
	if s.header != nil {
		children = append(children, s.header, HorizontalDivider())
	}
	children = append(children, s.body...)

	container := NewContainer(children...).
		WithBorder(ctx.Theme.Borders.Rounded).
		WithPadding(Spacing{Top: 1, Right: 2, Bottom: 1, Left: 2}).
		WithGap(1)

	return container.ViewWithContext(ctx)
}

// Add appends body content to the screen.
func (s *Screen) Add(children ...ui.Renderable) *Screen {
	s.body = append(s.body, children...)
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Screen) WithAppliers(appliers ...StyleFunc) *Screen {
	s.SetAppliers(appliers...)
	return s
}
