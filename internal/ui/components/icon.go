package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// IconKind distinguishes the two supported icon source kinds.
type IconKind int

const (
	IconKindRaster IconKind = iota
	IconKindVector
)

// IconKindForAsset resolves the rendering path for an asset by its file
// extension: a case-insensitive ".svg" suffix selects the vector renderer,
// anything else the raster renderer.
func IconKindForAsset(asset string) IconKind {
	if strings.HasSuffix(strings.ToLower(asset), ".svg") {
		return IconKindVector
	}
	return IconKindRaster
}

// Icon renders a glyph standing in for an image asset. The asset path stays
// an opaque string resolved by the host; the component only decides the
// vector-vs-raster rendering path and the slot size.
//
// Tinting is asymmetric on purpose: vector sources recolor uniformly via the
// tint foreground, while raster sources render as-is and ignore the tint.
type Icon struct {
	BaseComponent
	asset string
	glyph string
	size  int
	tint  *lipgloss.AdaptiveColor
}

// NewIcon creates an icon for the given asset path.
func NewIcon(asset string) *Icon {
	return &Icon{
		BaseComponent: NewBaseComponent(),
		asset:         asset,
		glyph:         defaultIconGlyph,
		size:          3,
	}
}

const defaultIconGlyph = "◆"

// View renders the icon.
func (i *Icon) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the icon with the given theme context.
func (i *Icon) ViewWithContext(ctx RenderContext) string {
	style := i.ComputeStyle(ctx.Theme)

	if i.size > 0 {
		style = style.Width(i.size).Align(lipgloss.Center)
	}

	if i.tint != nil && i.Kind() == IconKindVector {
		style = style.Foreground(*i.tint)
	}

	return style.Render(i.glyph)
}

// Kind returns the rendering path chosen for this icon's asset.
func (i *Icon) Kind() IconKind {
	return IconKindForAsset(i.asset)
}

// Asset returns the opaque asset path.
func (i *Icon) Asset() string {
	return i.asset
}

// WithGlyph sets the glyph the host resolved for the asset.
func (i *Icon) WithGlyph(glyph string) *Icon {
	if glyph != "" {
		i.glyph = glyph
	}
	return i
}

// WithSize sets the slot width the glyph is centered in.
func (i *Icon) WithSize(size int) *Icon {
	i.size = size
	return i
}

// WithTint sets the recoloring tint. Raster assets ignore it.
func (i *Icon) WithTint(tint lipgloss.AdaptiveColor) *Icon {
	i.tint = &tint
	return i
}

// WithAppliers applies theme-based style modifiers.
func (i *Icon) WithAppliers(appliers ...StyleFunc) *Icon {
	i.SetAppliers(appliers...)
	return i
}

// IconButton is a pressable icon with border decoration. The press handler
// is the only interaction surface; each button invokes exactly its own
// handler.
type IconButton struct {
	BaseComponent
	icon    *Icon
	onPress func()
}

// NewIconButton creates an icon button for the given asset.
func NewIconButton(asset string, onPress func()) *IconButton {
	return &IconButton{
		BaseComponent: NewBaseComponent(),
		icon:          NewIcon(asset),
		onPress:       onPress,
	}
}

// View renders the icon button.
func (b *IconButton) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the icon button with the given theme context.
func (b *IconButton) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme).
		BorderStyle(ctx.Theme.Borders.Rounded).
		BorderForeground(ctx.Theme.Palette.Neutral.Muted)

	return style.Render(b.icon.ViewWithContext(ctx))
}

// Press invokes the button's handler, if any.
func (b *IconButton) Press() {
	if b.onPress != nil {
		b.onPress()
	}
}

// Icon exposes the embedded icon for configuration.
func (b *IconButton) Icon() *Icon {
	return b.icon
}

// WithSize sets the icon slot size.
func (b *IconButton) WithSize(size int) *IconButton {
	b.icon.WithSize(size)
	return b
}

// WithGlyph sets the glyph the host resolved for the asset.
func (b *IconButton) WithGlyph(glyph string) *IconButton {
	b.icon.WithGlyph(glyph)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *IconButton) WithAppliers(appliers ...StyleFunc) *IconButton {
	b.SetAppliers(appliers...)
	return b
}
