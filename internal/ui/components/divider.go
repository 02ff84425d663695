package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultDividerWidth = 40

// Divider renders a horizontal separator line.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider with the default rule character.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// HorizontalDivider creates a horizontal divider (convenience constructor).
func HorizontalDivider() *Divider {
	return NewDivider()
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with layout context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.ContentWidth(defaultDividerWidth)
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, width))
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithStyle sets the divider style.
func (d *Divider) WithStyle(style lipgloss.Style) *Divider {
	d.SetStyle(style)
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}

// LabeledDivider renders a horizontal rule interrupted by a centered label:
// rule, padded label, rule. Both rule segments expand equally to fill the
// available width. It is a pure function of its inputs; color and style fall
// back to the active theme when unset.
type LabeledDivider struct {
	BaseComponent
	label      string
	char       string
	width      int
	pad        int
	labelStyle *lipgloss.Style
}

// NewLabeledDivider creates a labeled divider with the given label text.
func NewLabeledDivider(label string) *LabeledDivider {
	return &LabeledDivider{
		BaseComponent: NewBaseComponent(),
		label:         label,
		char:          "─",
		pad:           1,
	}
}

// View renders the labeled divider.
func (d *LabeledDivider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the labeled divider with layout context.
func (d *LabeledDivider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.ContentWidth(defaultDividerWidth)
	}

	labelStyle := TypographyStyle(ctx.Theme, TypographyVariantHint)
	if d.labelStyle != nil {
		labelStyle = *d.labelStyle
	}

	label := labelStyle.Render(d.label)
	pad := strings.Repeat(" ", d.pad)
	middle := pad + label + pad

	remaining := width - lipgloss.Width(middle)
	if remaining < 2 {
		remaining = 2
	}

	// Left and right rules split the leftover evenly; the right rule takes
	// the odd column.
	left := remaining / 2
	right := remaining - left

	rule := d.ComputeStyle(ctx.Theme)
	line := rule.Render(strings.Repeat(d.char, left)) + middle + rule.Render(strings.Repeat(d.char, right))
	return line
}

// Label returns the divider label.
func (d *LabeledDivider) Label() string {
	return d.label
}

// WithChar sets the rule character.
func (d *LabeledDivider) WithChar(char string) *LabeledDivider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit total width.
func (d *LabeledDivider) WithWidth(width int) *LabeledDivider {
	d.width = width
	return d
}

// WithLabelPadding sets the number of spaces between the rules and the label.
func (d *LabeledDivider) WithLabelPadding(pad int) *LabeledDivider {
	if pad >= 0 {
		d.pad = pad
	}
	return d
}

// WithLabelStyle overrides the theme-derived label style.
func (d *LabeledDivider) WithLabelStyle(style lipgloss.Style) *LabeledDivider {
	d.labelStyle = &style
	return d
}

// WithStyle sets the rule style.
func (d *LabeledDivider) WithStyle(style lipgloss.Style) *LabeledDivider {
	d.SetStyle(style)
	return d
}

// WithAppliers applies theme-based style modifiers to the rule segments.
func (d *LabeledDivider) WithAppliers(appliers ...StyleFunc) *LabeledDivider {
	d.SetAppliers(appliers...)
	return d
}
