package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRememberRowStartsUnchecked(t *testing.T) {
	t.Parallel()

	row := NewRememberRow("Remember me")
	assert.False(t, row.Remembered())
	assert.Contains(t, row.View(), "○")
}

func TestRememberRowToggleParityAndCallbackSequence(t *testing.T) {
	t.Parallel()

	var seen []bool
	row := NewRememberRow("Remember me").OnToggle(func(v bool) { seen = append(seen, v) })

	const n = 5
	for i := 0; i < n; i++ {
		row.Toggle()
	}

	assert.Equal(t, n%2 == 1, row.Remembered())
	require.Len(t, seen, n)
	assert.Equal(t, []bool{true, false, true, false, true}, seen)
}

func TestRememberRowCheckedIndicator(t *testing.T) {
	t.Parallel()

	row := NewRememberRow("Remember me")
	row.Toggle()
	assert.Contains(t, row.View(), "◉")
}

func TestRememberRowForgotLinkOnlyWithHandler(t *testing.T) {
	t.Parallel()

	bare := NewRememberRow("Remember me").WithWidth(40)
	assert.NotContains(t, bare.View(), "Forgot password?")
	assert.False(t, bare.HasForgot())

	linked := NewRememberRow("Remember me").OnForgot(func() {}).WithWidth(40)
	assert.Contains(t, linked.View(), "Forgot password?")
	assert.True(t, linked.HasForgot())
}

func TestRememberRowOmittedLinkReservesNoSpace(t *testing.T) {
	t.Parallel()

	bare := NewRememberRow("Remember me").WithWidth(40).View()
	linked := NewRememberRow("Remember me").OnForgot(func() {}).WithWidth(40).View()

	assert.Less(t, len(bare), len(linked), "row without a link must not pad out to the link position")
}

func TestRememberRowPressForgot(t *testing.T) {
	t.Parallel()

	pressed := 0
	row := NewRememberRow("Remember me").OnForgot(func() { pressed++ })

	row.PressForgot()
	row.PressForgot()
	assert.Equal(t, 2, pressed)

	NewRememberRow("Remember me").PressForgot()
}

func TestRememberRowCustomForgotLabel(t *testing.T) {
	t.Parallel()

	row := NewRememberRow("Remember me").
		OnForgot(func() {}).
		WithForgotLabel("Reset password").
		WithWidth(40)

	assert.Contains(t, row.View(), "Reset password")
}
