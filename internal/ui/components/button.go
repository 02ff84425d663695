package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button represents a pressable button component. While loading, the press
// handler is suppressed entirely, not merely styled as disabled.
type Button struct {
	BaseComponent
	label        string
	variant      ButtonVariant
	disabled     bool
	focused      bool
	loading      bool
	spinnerFrame string
	width        int
	onPress      func()
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme)

	if strategy := ctx.Theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}

	if b.width > 0 {
		style = style.Width(b.width).Align(lipgloss.Center)
	}
	if b.disabled || b.loading {
		style = style.Faint(true)
	}
	if b.focused {
		style = style.Bold(true).Underline(true)
	}

	label := b.label
	if b.loading && b.spinnerFrame != "" {
		label = b.spinnerFrame + " " + label
	}

	return style.Render(label)
}

// Press invokes the button's handler. It is a no-op while the button is
// loading or disabled.
func (b *Button) Press() {
	if b.loading || b.disabled {
		return
	}
	if b.onPress != nil {
		b.onPress()
	}
}

// OnPress sets the press handler.
func (b *Button) OnPress(fn func()) *Button {
	b.onPress = fn
	return b
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFocused sets the focused state.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithLoading sets the loading state. The spinner frame is supplied by the
// owning model on every tick.
func (b *Button) WithLoading(loading bool, spinnerFrame string) *Button {
	b.loading = loading
	b.spinnerFrame = spinnerFrame
	return b
}

// WithWidth makes the button render at a fixed width with a centered label.
func (b *Button) WithWidth(width int) *Button {
	b.width = width
	return b
}

// WithStyle sets the button style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsLoading returns true while the button is in its loading state.
func (b *Button) IsLoading() bool {
	return b.loading
}

// Convenience constructors

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// MutedButton creates a muted/neutral button.
func MutedButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantMuted)
}
