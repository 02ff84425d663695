package components

import (
	"runtime"
)

// ProviderRow composes up to three social icon buttons named facebook,
// google, and apple. Each slot renders only when both its asset path and
// its handler are supplied. The apple slot is additionally gated by an
// Apple-platform predicate unless the caller forces visibility everywhere.
// An empty visible set renders nothing at all, so surrounding layout keeps
// no residual padding.
type ProviderRow struct {
	BaseComponent
	slots          map[Provider]*IconButton
	size           int
	gap            int
	platform       string
	showAppleOnAll bool
}

// NewProviderRow creates an empty provider row.
func NewProviderRow() *ProviderRow {
	return &ProviderRow{
		BaseComponent: NewBaseComponent(),
		slots:         make(map[Provider]*IconButton),
		size:          3,
		gap:           2,
		platform:      runtime.GOOS,
	}
}

// WithFacebook configures the facebook slot.
func (r *ProviderRow) WithFacebook(asset string, onPress func()) *ProviderRow {
	return r.withSlot(ProviderFacebook, asset, onPress)
}

// WithGoogle configures the google slot.
func (r *ProviderRow) WithGoogle(asset string, onPress func()) *ProviderRow {
	return r.withSlot(ProviderGoogle, asset, onPress)
}

// WithApple configures the apple slot.
func (r *ProviderRow) WithApple(asset string, onPress func()) *ProviderRow {
	return r.withSlot(ProviderApple, asset, onPress)
}

func (r *ProviderRow) withSlot(provider Provider, asset string, onPress func()) *ProviderRow {
	if asset == "" || onPress == nil {
		delete(r.slots, provider)
		return r
	}
	r.slots[provider] = NewIconButton(asset, onPress).WithSize(r.size)
	return r
}

// WithSize sets the icon slot size for all buttons.
func (r *ProviderRow) WithSize(size int) *ProviderRow {
	r.size = size
	for _, button := range r.slots {
		button.WithSize(size)
	}
	return r
}

// WithGap sets the spacing between icons.
func (r *ProviderRow) WithGap(gap int) *ProviderRow {
	r.gap = gap
	return r
}

// WithPlatform overrides the host platform used by the apple visibility
// predicate. Defaults to runtime.GOOS.
func (r *ProviderRow) WithPlatform(platform string) *ProviderRow {
	r.platform = platform
	return r
}

// WithShowAppleOnAll forces the apple slot to be visible on every platform.
func (r *ProviderRow) WithShowAppleOnAll(show bool) *ProviderRow {
	r.showAppleOnAll = show
	return r
}

// appleVisible reports whether the apple slot may render on this host.
func (r *ProviderRow) appleVisible() bool {
	if r.showAppleOnAll {
		return true
	}
	return r.platform == "darwin" || r.platform == "ios"
}

// VisibleProviders returns the providers that will render, in display order.
func (r *ProviderRow) VisibleProviders() []Provider {
	order := []Provider{ProviderFacebook, ProviderGoogle, ProviderApple}
	visible := make([]Provider, 0, len(order))
	for _, provider := range order {
		if _, ok := r.slots[provider]; !ok {
			continue
		}
		if provider == ProviderApple && !r.appleVisible() {
			continue
		}
		visible = append(visible, provider)
	}
	return visible
}

// View renders the provider row.
func (r *ProviderRow) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the provider row with the given theme context.
func (r *ProviderRow) ViewWithContext(ctx RenderContext) string {
	visible := r.VisibleProviders()
	if len(visible) == 0 {
		return ""
	}

	row := HStack().WithGap(r.gap).WithCrossAlign(CrossCenter)
	for _, provider := range visible {
		row.Add(r.slots[provider])
	}

	style := r.ComputeStyle(ctx.Theme)
	return style.Render(row.ViewWithContext(ctx))
}

// Press invokes the handler of exactly the named provider's button. Pressing
// a provider never triggers another provider's handler. Hidden or
// unconfigured slots are a no-op.
func (r *ProviderRow) Press(provider Provider) {
	canonical := provider.Canonical()
	if canonical == ProviderApple && !r.appleVisible() {
		return
	}
	if button, ok := r.slots[canonical]; ok {
		button.Press()
	}
}

// WithAppliers applies theme-based style modifiers.
func (r *ProviderRow) WithAppliers(appliers ...StyleFunc) *ProviderRow {
	r.SetAppliers(appliers...)
	return r
}
