package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSocialButtonResolvesProviderDefaults(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	colors := NewSocialButton(ProviderFacebook, "Continue with Facebook").ResolveStyle(theme)
	assert.Equal(t, "#1877f2", colors.Background.Light)
	assert.Equal(t, "#ffffff", colors.Text.Light)
	assert.Equal(t, "#1877f2", colors.Border.Light)
}

func TestSocialButtonLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	upper := NewSocialButton(Provider("APPLE"), "x").ResolveStyle(theme)
	lower := NewSocialButton(ProviderApple, "x").ResolveStyle(theme)
	assert.Equal(t, lower, upper)
}

func TestSocialButtonUnknownProviderUsesNeutralDefaults(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	colors := NewSocialButton(Provider("sso"), "x").ResolveStyle(theme)
	assert.Equal(t, theme.Palette.Surface.Base, colors.Background)
	assert.Equal(t, theme.Palette.Surface.OnBase, colors.Text)
}

func TestSocialButtonOverridesAreFieldByField(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	teal := lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#14b8a6"}

	button := NewSocialButton(ProviderFacebook, "x").WithBackground(teal)
	colors := button.ResolveStyle(theme)

	assert.Equal(t, teal, colors.Background, "override replaces the background")
	assert.Equal(t, "#ffffff", colors.Text.Light, "text keeps the looked-up default")
	assert.Equal(t, "#1877f2", colors.Border.Light, "border keeps the looked-up default")

	button.WithTextColor(teal).WithBorderColor(teal)
	colors = button.ResolveStyle(theme)
	assert.Equal(t, teal, colors.Text)
	assert.Equal(t, teal, colors.Border)
}

func TestSocialButtonPressSuppressedWhileLoading(t *testing.T) {
	t.Parallel()

	pressed := 0
	button := NewSocialButton(ProviderGoogle, "x").OnPress(func() { pressed++ })

	button.WithLoading(true, "⠋")
	button.Press()
	assert.Equal(t, 0, pressed, "press must be a no-op while loading")

	button.WithLoading(false, "")
	button.Press()
	assert.Equal(t, 1, pressed)
}

func TestSocialButtonRendersLabelAndSpinner(t *testing.T) {
	t.Parallel()

	button := NewSocialButton(ProviderGoogle, "Continue with Google")
	assert.Contains(t, button.View(), "Continue with Google")

	loading := button.WithLoading(true, "⠋").View()
	assert.Contains(t, loading, "⠋")
}

func TestSocialButtonIconKindFollowsAsset(t *testing.T) {
	t.Parallel()

	vector := NewSocialButton(ProviderFacebook, "x").WithIcon("assets/facebook.svg")
	assert.Equal(t, IconKindVector, vector.Icon().Kind())

	raster := NewSocialButton(ProviderGoogle, "x").WithIcon("assets/google.png")
	assert.Equal(t, IconKindRaster, raster.Icon().Kind())
}

func TestSocialButtonRenderLeavesIconUnmodified(t *testing.T) {
	t.Parallel()

	button := NewSocialButton(ProviderFacebook, "Continue").WithIcon("assets/facebook.svg")
	_ = button.View()
	assert.Nil(t, button.Icon().tint, "rendering must not write the resolved tint back onto the icon")

	custom := lipgloss.AdaptiveColor{Light: "#112233", Dark: "#112233"}
	button.Icon().WithTint(custom)
	_ = button.View()
	assert.Equal(t, custom, *button.Icon().tint, "an explicit caller tint survives rendering")
}
