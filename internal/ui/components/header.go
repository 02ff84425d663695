package components

// Header represents a heading or title component.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a new header with the given title.
func NewHeader(title string) *Header {
	return &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
}

// WithSubtitle adds a subtitle line under the title.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	title := TypographyStyle(ctx.Theme, TypographyVariantTitle).
		Inherit(h.ComputeStyle(ctx.Theme)).
		Render(h.title)

	if h.subtitle == "" {
		return title
	}

	subtitle := TypographyStyle(ctx.Theme, TypographyVariantSubtitle).Render(h.subtitle)
	return title + "\n" + subtitle
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// WithAppliers applies theme-based style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}
