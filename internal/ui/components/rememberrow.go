package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RememberRow renders a remember-me toggle with an optional right-aligned
// forgot-password link. It owns a single boolean, initialized false; every
// toggle flips it and reports the new value through the toggle callback.
type RememberRow struct {
	BaseComponent
	label       string
	forgotLabel string
	remembered  bool
	width       int
	onToggle    func(bool)
	onForgot    func()
}

// NewRememberRow creates a remember row with the given checkbox label.
func NewRememberRow(label string) *RememberRow {
	return &RememberRow{
		BaseComponent: NewBaseComponent(),
		label:         label,
		forgotLabel:   "Forgot password?",
	}
}

// Toggle flips the remembered flag and invokes the toggle callback with the
// new value.
func (r *RememberRow) Toggle() {
	r.remembered = !r.remembered
	if r.onToggle != nil {
		r.onToggle(r.remembered)
	}
}

// Remembered returns the current toggle value.
func (r *RememberRow) Remembered() bool {
	return r.remembered
}

// PressForgot invokes the forgot-password handler, if any.
func (r *RememberRow) PressForgot() {
	if r.onForgot != nil {
		r.onForgot()
	}
}

// HasForgot reports whether a forgot-password handler is configured.
func (r *RememberRow) HasForgot() bool {
	return r.onForgot != nil
}

// View renders the remember row.
func (r *RememberRow) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the remember row with the given theme context.
func (r *RememberRow) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	indicator := "○"
	indicatorStyle := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Base)
	if r.remembered {
		indicator = "◉"
		indicatorStyle = lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base)
	}

	labelStyle := TypographyStyle(theme, TypographyVariantBody)
	left := indicatorStyle.Render(indicator) + " " + labelStyle.Render(r.label)

	// Without a handler the link slot does not exist at all; layout reserves
	// no space for it.
	if r.onForgot == nil {
		return r.ComputeStyle(theme).Render(left)
	}

	link := TypographyStyle(theme, TypographyVariantLink).Render(r.forgotLabel)

	width := r.width
	if width <= 0 {
		width = ctx.ContentWidth(defaultDividerWidth)
	}

	// The flexible gap pushes the link to the right edge.
	gap := width - lipgloss.Width(left) - lipgloss.Width(link)
	if gap < 1 {
		gap = 1
	}

	row := left + strings.Repeat(" ", gap) + link
	return r.ComputeStyle(theme).Render(row)
}

// OnToggle sets the toggle callback.
func (r *RememberRow) OnToggle(fn func(bool)) *RememberRow {
	r.onToggle = fn
	return r
}

// OnForgot sets the forgot-password handler. A nil handler removes the link.
func (r *RememberRow) OnForgot(fn func()) *RememberRow {
	r.onForgot = fn
	return r
}

// WithForgotLabel sets the link text.
func (r *RememberRow) WithForgotLabel(label string) *RememberRow {
	if label != "" {
		r.forgotLabel = label
	}
	return r
}

// WithWidth sets the total row width used to right-align the link.
func (r *RememberRow) WithWidth(width int) *RememberRow {
	r.width = width
	return r
}

// WithAppliers applies theme-based style modifiers.
func (r *RememberRow) WithAppliers(appliers ...StyleFunc) *RememberRow {
	r.SetAppliers(appliers...)
	return r
}
