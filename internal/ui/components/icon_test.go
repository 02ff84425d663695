package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconKindForAsset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		asset string
		want  IconKind
	}{
		{"assets/facebook.svg", IconKindVector},
		{"assets/GOOGLE.SVG", IconKindVector},
		{"assets/apple.Svg", IconKindVector},
		{"assets/google.png", IconKindRaster},
		{"assets/photo.jpeg", IconKindRaster},
		{"assets/no-extension", IconKindRaster},
		{"", IconKindRaster},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IconKindForAsset(tt.asset), "asset %q", tt.asset)
	}
}

func TestIconKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, IconKindVector, NewIcon("a.svg").Kind())
	assert.Equal(t, IconKindRaster, NewIcon("a.png").Kind())
}

func TestIconRendersGlyph(t *testing.T) {
	t.Parallel()

	view := NewIcon("a.svg").WithGlyph("ⓕ").View()
	assert.Contains(t, view, "ⓕ")
}

func TestIconButtonPressInvokesHandler(t *testing.T) {
	t.Parallel()

	pressed := 0
	button := NewIconButton("assets/google.png", func() { pressed++ })

	button.Press()
	button.Press()
	assert.Equal(t, 2, pressed)
}

func TestIconButtonNilHandlerIsNoOp(t *testing.T) {
	t.Parallel()

	button := NewIconButton("assets/google.png", nil)
	assert.NotPanics(t, func() { button.Press() })
}

func TestIconButtonRendersBorderedIcon(t *testing.T) {
	t.Parallel()

	view := NewIconButton("assets/google.png", func() {}).WithGlyph("G").View()
	assert.Contains(t, view, "G")
	assert.Contains(t, view, "╭", "icon buttons carry rounded border decoration")
}
