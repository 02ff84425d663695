package components

import (
	"github.com/charmbracelet/lipgloss"
)

// SocialButton renders a full-width, provider-themed sign-in button.
//
// Visual defaults come from the theme's provider style table, selected
// case-insensitively by the provider identifier; unknown identifiers fall
// back to a theme-neutral triple. Explicit caller colors override the
// looked-up defaults field by field. Rendering order is optional leading
// icon, spinner in the icon's neighbor slot while loading, then the label.
// The press handler is suppressed entirely while loading.
type SocialButton struct {
	BaseComponent
	provider     Provider
	label        string
	icon         *Icon
	width        int
	loading      bool
	spinnerFrame string
	onPress      func()

	background *lipgloss.AdaptiveColor
	text       *lipgloss.AdaptiveColor
	border     *lipgloss.AdaptiveColor
}

const defaultSocialButtonWidth = 32

// NewSocialButton creates a social button for the given provider.
func NewSocialButton(provider Provider, label string) *SocialButton {
	return &SocialButton{
		BaseComponent: NewBaseComponent(),
		provider:      provider,
		label:         label,
		width:         defaultSocialButtonWidth,
	}
}

// View renders the social button.
func (b *SocialButton) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the social button with the given theme context.
func (b *SocialButton) ViewWithContext(ctx RenderContext) string {
	colors := b.ResolveStyle(ctx.Theme)

	width := b.width
	if width <= 0 {
		width = ctx.ContentWidth(defaultSocialButtonWidth)
	}

	style := b.ComputeStyle(ctx.Theme).
		Background(colors.Background).
		Foreground(colors.Text).
		BorderStyle(ctx.Theme.Borders.Rounded).
		BorderForeground(colors.Border).
		Width(width).
		Align(lipgloss.Center)

	var parts []string
	if b.icon != nil {
		// Tint a render-local copy; an explicit caller tint wins.
		icon := *b.icon
		if icon.tint == nil {
			tint := colors.Text
			icon.tint = &tint
		}
		parts = append(parts, icon.ViewWithContext(ctx))
	}
	if b.loading && b.spinnerFrame != "" {
		parts = append(parts, b.spinnerFrame)
	}
	parts = append(parts, b.label)

	return style.Render(lipgloss.JoinHorizontal(lipgloss.Center, joinWithSpaces(parts)...))
}

func joinWithSpaces(parts []string) []string {
	out := make([]string, 0, len(parts)*2-1)
	for i, part := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, part)
	}
	return out
}

// ResolveStyle returns the effective color triple after applying caller
// overrides on top of the provider lookup.
func (b *SocialButton) ResolveStyle(theme Theme) ProviderStyle {
	colors := theme.ProviderStyleFor(b.provider)
	if b.background != nil {
		colors.Background = *b.background
	}
	if b.text != nil {
		colors.Text = *b.text
	}
	if b.border != nil {
		colors.Border = *b.border
	}
	return colors
}

// Press invokes the button's handler. It is a no-op while loading.
func (b *SocialButton) Press() {
	if b.loading {
		return
	}
	if b.onPress != nil {
		b.onPress()
	}
}

// OnPress sets the press handler.
func (b *SocialButton) OnPress(fn func()) *SocialButton {
	b.onPress = fn
	return b
}

// Provider returns the provider identifier.
func (b *SocialButton) Provider() Provider {
	return b.provider
}

// WithIcon sets the leading icon from an asset path. The icon inherits the
// resolved text color as its tint; raster assets ignore the tint.
func (b *SocialButton) WithIcon(asset string) *SocialButton {
	b.icon = NewIcon(asset).WithSize(0)
	return b
}

// Icon exposes the leading icon, or nil when none is set.
func (b *SocialButton) Icon() *Icon {
	return b.icon
}

// WithLoading sets the loading state and the spinner frame for this render.
func (b *SocialButton) WithLoading(loading bool, spinnerFrame string) *SocialButton {
	b.loading = loading
	b.spinnerFrame = spinnerFrame
	return b
}

// IsLoading returns true while the button is in its loading state.
func (b *SocialButton) IsLoading() bool {
	return b.loading
}

// WithWidth sets the button width.
func (b *SocialButton) WithWidth(width int) *SocialButton {
	b.width = width
	return b
}

// WithBackground overrides only the background color.
func (b *SocialButton) WithBackground(color lipgloss.AdaptiveColor) *SocialButton {
	b.background = &color
	return b
}

// WithTextColor overrides only the text color.
func (b *SocialButton) WithTextColor(color lipgloss.AdaptiveColor) *SocialButton {
	b.text = &color
	return b
}

// WithBorderColor overrides only the border color.
func (b *SocialButton) WithBorderColor(color lipgloss.AdaptiveColor) *SocialButton {
	b.border = &color
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *SocialButton) WithAppliers(appliers ...StyleFunc) *SocialButton {
	b.AddAppliers(appliers...)
	return b
}
