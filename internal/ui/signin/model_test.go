package signin

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessier-labs/authform/internal/ui/components"
)

func TestSubmitValidFieldsInvokesCallbackOnce(t *testing.T) {
	t.Parallel()

	var calls int
	var gotEmail, gotPassword string
	var gotRemember bool

	m := New(Options{
		OnSubmit: func(email, password string, remember bool) {
			calls++
			gotEmail = email
			gotPassword = password
			gotRemember = remember
		},
	})
	m.email.SetValue("  user@example.com  ")
	m.password.SetValue("secret1")

	m.Submit()

	require.Equal(t, 1, calls)
	assert.Equal(t, "user@example.com", gotEmail, "submitted values are trimmed")
	assert.Equal(t, "secret1", gotPassword)
	assert.False(t, gotRemember)
	assert.Empty(t, m.EmailError())
	assert.Empty(t, m.PasswordError())
}

func TestSubmitInvalidFieldsSetsInlineErrors(t *testing.T) {
	t.Parallel()

	var calls int
	m := New(Options{
		OnSubmit: func(string, string, bool) { calls++ },
	})
	m.email.SetValue("")
	m.password.SetValue("123")

	m.Submit()

	assert.Zero(t, calls, "validation failure must not reach the callback")
	assert.Equal(t, MsgEmailRequired, m.EmailError())
	assert.Equal(t, MsgPasswordTooShort, m.PasswordError())
}

func TestSubmitSingleInvalidFieldAborts(t *testing.T) {
	t.Parallel()

	var calls int
	m := New(Options{
		OnSubmit: func(string, string, bool) { calls++ },
	})
	m.email.SetValue("user@example.com")
	m.password.SetValue("")

	m.Submit()

	assert.Zero(t, calls)
	assert.Empty(t, m.EmailError())
	assert.Equal(t, MsgPasswordRequired, m.PasswordError())
}

func TestSubmitCarriesRememberFlag(t *testing.T) {
	t.Parallel()

	var gotRemember bool
	m := New(Options{
		ShowRemember: true,
		OnSubmit:     func(_, _ string, remember bool) { gotRemember = remember },
	})
	m.email.SetValue("a@b.co")
	m.password.SetValue("secret1")

	m.ToggleRemember()
	m.Submit()

	assert.True(t, gotRemember)
}

func TestSubmitIgnoredWhileSubmitting(t *testing.T) {
	t.Parallel()

	var calls int
	m := New(Options{
		OnSubmit: func(string, string, bool) { calls++ },
	})
	m.email.SetValue("a@b.co")
	m.password.SetValue("secret1")

	m.SetLoading(true)
	m.Submit()
	assert.Zero(t, calls, "submit is a no-op while submitting")

	m.SetLoading(false)
	m.Submit()
	assert.Equal(t, 1, calls)
}

func TestCustomValidatorsReplaceDefaults(t *testing.T) {
	t.Parallel()

	var calls int
	m := New(Options{
		// Accept anything, including values the defaults reject.
		EmailValidator:    func(string) string { return "" },
		PasswordValidator: func(string) string { return "" },
		OnSubmit:          func(string, string, bool) { calls++ },
	})
	m.email.SetValue("not-an-email")
	m.password.SetValue("x")

	m.Submit()

	assert.Equal(t, 1, calls)
	assert.Empty(t, m.EmailError())
	assert.Empty(t, m.PasswordError())
}

func TestStateProjection(t *testing.T) {
	t.Parallel()

	m := New(Options{})
	assert.Equal(t, StateIdle, m.State())

	cmd := m.SetLoading(true)
	assert.Equal(t, StateSubmitting, m.State())
	assert.NotNil(t, cmd, "entering the submitting state starts the spinner")

	m.SetLoading(false)
	assert.Equal(t, StateIdle, m.State())
}

func TestUpdateLoadingAndErrorMessages(t *testing.T) {
	t.Parallel()

	m := New(Options{})

	m, _ = m.Update(LoadingMsg{Loading: true})
	assert.Equal(t, StateSubmitting, m.State())

	m, _ = m.Update(ErrorMsg{Message: "Invalid email or password"})
	assert.Equal(t, "Invalid email or password", m.ErrorMessage())

	m, _ = m.Update(LoadingMsg{Loading: false})
	assert.Equal(t, StateIdle, m.State())

	m, _ = m.Update(ErrorMsg{})
	assert.Empty(t, m.ErrorMessage(), "empty message clears the banner")
}

func TestUpdateEnterSubmits(t *testing.T) {
	t.Parallel()

	var calls int
	m := New(Options{
		OnSubmit: func(string, string, bool) { calls++ },
	})
	m.email.SetValue("a@b.co")
	m.password.SetValue("secret1")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, calls)
}

func TestToggleRememberParityAndCallback(t *testing.T) {
	t.Parallel()

	var seen []bool
	m := New(Options{
		ShowRemember: true,
		OnToggle:     func(remember bool) { seen = append(seen, remember) },
	})
	assert.False(t, m.Remembered(), "remember starts unchecked")

	for i := 0; i < 5; i++ {
		m.ToggleRemember()
	}

	assert.True(t, m.Remembered(), "odd number of toggles ends checked")
	assert.Equal(t, []bool{true, false, true, false, true}, seen)
}

func TestTogglePasswordVisibility(t *testing.T) {
	t.Parallel()

	m := New(Options{})
	assert.Equal(t, textinput.EchoPassword, m.password.EchoMode)

	m.TogglePasswordVisibility()
	assert.Equal(t, textinput.EchoNormal, m.password.EchoMode)

	m.TogglePasswordVisibility()
	assert.Equal(t, textinput.EchoPassword, m.password.EchoMode)
}

func TestPressSocialFansInProviderIdentifier(t *testing.T) {
	t.Parallel()

	var seen []components.Provider
	m := New(Options{
		ShowSocial:   true,
		FacebookIcon: "facebook.svg",
		GoogleIcon:   "google.png",
		AppleIcon:    "apple.svg",
		Platform:     "darwin",
		OnSocial:     func(p components.Provider) { seen = append(seen, p) },
	})

	m.PressSocial(components.ProviderGoogle)
	m.PressSocial(components.ProviderFacebook)
	m.PressSocial(components.ProviderApple)

	assert.Equal(t, []components.Provider{
		components.ProviderGoogle,
		components.ProviderFacebook,
		components.ProviderApple,
	}, seen)
}

func TestPressSocialAppleGatedByPlatform(t *testing.T) {
	t.Parallel()

	var seen []components.Provider
	m := New(Options{
		ShowSocial: true,
		AppleIcon:  "apple.svg",
		Platform:   "linux",
		OnSocial:   func(p components.Provider) { seen = append(seen, p) },
	})

	m.PressSocial(components.ProviderApple)
	assert.Empty(t, seen, "hidden apple slot must not fire")
}

func TestPressSocialShowAppleOnAllOverridesPlatform(t *testing.T) {
	t.Parallel()

	var seen []components.Provider
	m := New(Options{
		ShowSocial:     true,
		AppleIcon:      "apple.svg",
		Platform:       "linux",
		ShowAppleOnAll: true,
		OnSocial:       func(p components.Provider) { seen = append(seen, p) },
	})

	m.PressSocial(components.ProviderApple)
	assert.Equal(t, []components.Provider{components.ProviderApple}, seen)
}

func TestPressSocialWithoutSocialSectionIsNoOp(t *testing.T) {
	t.Parallel()

	m := New(Options{})
	m.PressSocial(components.ProviderFacebook) // must not panic
}

func TestReleaseExactlyOnce(t *testing.T) {
	t.Parallel()

	m := New(Options{})
	assert.False(t, m.Released())

	assert.True(t, m.Release(), "first release performs the work")
	assert.True(t, m.Released())
	assert.False(t, m.email.Focused(), "release blurs the inputs")
	assert.False(t, m.password.Focused())

	assert.False(t, m.Release(), "later releases are no-ops")
}

func TestViewWithPartialThemeOption(t *testing.T) {
	t.Parallel()

	m := New(Options{Theme: &components.Theme{}})

	view := m.View()
	assert.Contains(t, view, "Sign in")
}

func TestViewRendersSections(t *testing.T) {
	t.Parallel()

	m := New(Options{
		Title:        "Welcome back",
		Subtitle:     "Sign in to continue",
		ShowRemember: true,
		ShowSocial:   true,
		FacebookIcon: "facebook.svg",
		GoogleIcon:   "google.svg",
		Platform:     "linux",
		DividerLabel: "or",
		OnSocial:     func(components.Provider) {},
	})
	m.SetError("Invalid email or password")

	view := m.View()
	assert.Contains(t, view, "Welcome back")
	assert.Contains(t, view, "Sign in to continue")
	assert.Contains(t, view, "Invalid email or password")
	assert.Contains(t, view, "Remember me")
	assert.Contains(t, view, "Sign in")
	assert.Contains(t, view, "or")
}
