package signin

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessier-labs/authform/internal/ui/components"
)

// State is the rendering projection of the form's lifecycle. It is driven
// entirely by the owning caller's loading flag; the form has no notion of
// network success or failure.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

type focusTarget int

const (
	focusEmail focusTarget = iota
	focusPassword
	focusSubmit
	focusTargetCount
)

// LoadingMsg drives the caller-owned loading flag. Send it from the host
// program when an authentication attempt starts or finishes.
type LoadingMsg struct {
	Loading bool
}

// ErrorMsg drives the caller-owned error banner. An empty message clears it.
type ErrorMsg struct {
	Message string
}

// Options configures a signin form. All interaction surfaces are callbacks;
// the form performs no authentication itself.
type Options struct {
	Title    string
	Subtitle string

	EmailPlaceholder    string
	PasswordPlaceholder string
	SubmitLabel         string
	RememberLabel       string
	ForgotLabel         string
	DividerLabel        string

	ShowRemember bool
	ShowSocial   bool

	// Social icon asset paths; a provider without an asset does not render.
	FacebookIcon   string
	GoogleIcon     string
	AppleIcon      string
	ShowAppleOnAll bool
	Platform       string

	// EmailValidator and PasswordValidator fully replace the defaults when
	// non-nil.
	EmailValidator    Validator
	PasswordValidator Validator

	OnSubmit func(email, password string, remember bool)
	OnSocial func(provider components.Provider)
	OnForgot func()
	OnToggle func(remember bool)

	Width int
	Theme *components.Theme
}

// Model is the Bubbletea model for the signin form composite. It owns the
// two text-input controllers for its rendered lifetime, the password
// visibility flag, and the remember flag; loading and error state belong to
// the caller and are only projected here.
type Model struct {
	opts Options

	email    textinput.Model
	password textinput.Model
	spinner  spinner.Model
	remember *components.RememberRow
	social   *components.ProviderRow

	focus         focusTarget
	showPassword  bool
	loading       bool
	errorMessage  string
	emailError    string
	passwordError string
	submitCount   int
	released      bool

	theme components.Theme
	width int
}

const defaultFormWidth = 44

// New constructs a signin form model from the supplied options.
func New(opts Options) Model {
	if opts.SubmitLabel == "" {
		opts.SubmitLabel = "Sign in"
	}
	if opts.RememberLabel == "" {
		opts.RememberLabel = "Remember me"
	}
	if opts.DividerLabel == "" {
		opts.DividerLabel = "or"
	}
	if opts.EmailValidator == nil {
		opts.EmailValidator = DefaultEmailValidator
	}
	if opts.PasswordValidator == nil {
		opts.PasswordValidator = DefaultPasswordValidator
	}

	width := opts.Width
	if width <= 0 {
		width = defaultFormWidth
	}

	theme := components.DefaultTheme()
	if opts.Theme != nil {
		theme = opts.Theme.Normalize()
	}

	email := textinput.New()
	email.Placeholder = opts.EmailPlaceholder
	email.CharLimit = 254
	email.Width = width - 4
	email.Focus()

	password := textinput.New()
	password.Placeholder = opts.PasswordPlaceholder
	password.CharLimit = 128
	password.Width = width - 4
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		opts:     opts,
		email:    email,
		password: password,
		spinner:  sp,
		focus:    focusEmail,
		theme:    theme,
		width:    width,
	}

	remember := components.NewRememberRow(opts.RememberLabel).WithWidth(width - 2)
	if opts.ForgotLabel != "" {
		remember.WithForgotLabel(opts.ForgotLabel)
	}
	if opts.OnToggle != nil {
		remember.OnToggle(opts.OnToggle)
	}
	if opts.OnForgot != nil {
		remember.OnForgot(opts.OnForgot)
	}
	m.remember = remember

	if opts.ShowSocial && opts.OnSocial != nil {
		row := components.NewProviderRow()
		if opts.Platform != "" {
			row.WithPlatform(opts.Platform)
		}
		row.WithShowAppleOnAll(opts.ShowAppleOnAll)

		// Each slot forwards to the single fan-in callback with its own
		// identifier.
		fanIn := func(provider components.Provider) func() {
			return func() { opts.OnSocial(provider) }
		}
		row.WithFacebook(opts.FacebookIcon, fanIn(components.ProviderFacebook))
		row.WithGoogle(opts.GoogleIcon, fanIn(components.ProviderGoogle))
		row.WithApple(opts.AppleIcon, fanIn(components.ProviderApple))
		m.social = row
	}

	return m
}

// Init starts cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State reports the current rendering state.
func (m Model) State() State {
	if m.loading {
		return StateSubmitting
	}
	return StateIdle
}

// Remembered returns the current remember flag.
func (m Model) Remembered() bool {
	return m.remember.Remembered()
}

// EmailError returns the inline email validation message, if any.
func (m Model) EmailError() string {
	return m.emailError
}

// PasswordError returns the inline password validation message, if any.
func (m Model) PasswordError() string {
	return m.passwordError
}

// ErrorMessage returns the caller-supplied error banner text, if any.
func (m Model) ErrorMessage() string {
	return m.errorMessage
}

// SetLoading drives the Idle/Submitting projection directly, for hosts that
// embed the model rather than sending messages.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	m.loading = loading
	if loading {
		return m.spinner.Tick
	}
	return nil
}

// SetError sets or clears the caller-supplied error banner.
func (m *Model) SetError(message string) {
	m.errorMessage = message
}

// Submit runs field validation and, when both fields pass, invokes the
// submit callback exactly once with the trimmed field values and the
// current remember flag. Any validation failure aborts the submit with
// inline per-field messages and no callback. Submit is a no-op while the
// form is in its submitting state.
func (m *Model) Submit() {
	if m.loading {
		return
	}

	m.emailError = m.opts.EmailValidator(m.email.Value())
	m.passwordError = m.opts.PasswordValidator(m.password.Value())
	if m.emailError != "" || m.passwordError != "" {
		return
	}

	m.submitCount++
	if m.opts.OnSubmit != nil {
		m.opts.OnSubmit(
			strings.TrimSpace(m.email.Value()),
			strings.TrimSpace(m.password.Value()),
			m.remember.Remembered(),
		)
	}
}

// ToggleRemember flips the remember flag and notifies the toggle callback.
func (m *Model) ToggleRemember() {
	m.remember.Toggle()
}

// TogglePasswordVisibility flips the password echo between masked and plain.
func (m *Model) TogglePasswordVisibility() {
	m.showPassword = !m.showPassword
	if m.showPassword {
		m.password.EchoMode = textinput.EchoNormal
	} else {
		m.password.EchoMode = textinput.EchoPassword
	}
}

// PressSocial forwards a provider press through the social row, honoring
// its visibility rules. No-op when the social section is not rendered.
func (m *Model) PressSocial(provider components.Provider) {
	if m.social == nil {
		return
	}
	m.social.Press(provider)
}

// Release blurs and disposes the form's input controllers. It performs the
// release exactly once; later calls are no-ops and report false.
func (m *Model) Release() bool {
	if m.released {
		return false
	}
	m.released = true
	m.email.Blur()
	m.password.Blur()
	return true
}

// Released reports whether the input controllers have been released.
func (m Model) Released() bool {
	return m.released
}
