package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tessier-labs/authform/internal/config"
	"github.com/tessier-labs/authform/internal/logger"
	"github.com/tessier-labs/authform/internal/ui/components"
	"github.com/tessier-labs/authform/internal/ui/signin"
)

func newDemoCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive signin screen demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(flags, log)
		},
	}
}

func runDemo(flags *rootFlags, log *logger.Logger) error {
	if flags.verbose {
		verbose, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
		if err != nil {
			return err
		}
		log = verbose
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("demo requires an interactive terminal")
	}

	cfg := defaultScreenConfig()
	if flags.config != "" {
		parsed, err := config.ParseScreenConfig(flags.config)
		if err != nil {
			log.Error(err, "screen configuration rejected")
			return err
		}
		cfg = parsed
		log.WithFields(map[string]any{"path": flags.config}).Debug("screen configuration loaded")
	}

	model := newDemoModel(cfg, log)
	program := tea.NewProgram(model, tea.WithAltScreen())

	log.WithFields(map[string]any{"screen": cfg.Title, "theme": cfg.Theme}).Info("starting signin demo")
	_, err := program.Run()
	return err
}

func defaultScreenConfig() *config.ScreenConfig {
	return &config.ScreenConfig{
		Version:  "1.0",
		Title:    "Welcome back",
		Subtitle: "Sign in to continue",
		Email:    config.FieldConfig{Placeholder: "Email"},
		Password: config.FieldConfig{Placeholder: "Password"},
		Submit:   config.SubmitConfig{Label: "Sign in"},
		Remember: config.RememberConfig{Enabled: true},
		Social: config.SocialConfig{
			Enabled:      true,
			DividerLabel: "or continue with",
			Providers: []config.ProviderConfig{
				{ID: "facebook", Icon: "assets/facebook.svg"},
				{ID: "google", Icon: "assets/google.png"},
				{ID: "apple", Icon: "assets/apple.svg"},
			},
			ShowAppleOnAll: true,
		},
	}
}

// submission carries credentials captured by the form's submit callback out
// to the host model, which owns the loading/error lifecycle.
type submission struct {
	email    string
	password string
	remember bool
}

type submissionHolder struct {
	pending *submission
}

func (h *submissionHolder) set(email, password string, remember bool) {
	h.pending = &submission{email: email, password: password, remember: remember}
}

func (h *submissionHolder) take() *submission {
	s := h.pending
	h.pending = nil
	return s
}

type authCompleteMsg struct {
	err error
}

type demoModel struct {
	form   signin.Model
	holder *submissionHolder
	log    *logger.Logger
}

func newDemoModel(cfg *config.ScreenConfig, log *logger.Logger) demoModel {
	holder := &submissionHolder{}

	opts := signin.Options{
		Title:               cfg.Title,
		Subtitle:            cfg.Subtitle,
		EmailPlaceholder:    cfg.Email.Placeholder,
		PasswordPlaceholder: cfg.Password.Placeholder,
		SubmitLabel:         cfg.Submit.Label,
		RememberLabel:       cfg.Remember.Label,
		ForgotLabel:         cfg.Remember.ForgotLabel,
		DividerLabel:        cfg.Social.DividerLabel,
		ShowRemember:        cfg.Remember.Enabled,
		ShowSocial:          cfg.Social.Enabled,
		ShowAppleOnAll:      cfg.Social.ShowAppleOnAll,
		Width:               cfg.Width,
		OnSubmit:            holder.set,
		OnSocial: func(provider components.Provider) {
			log.WithFields(map[string]any{"provider": string(provider)}).Info("social sign-in requested")
		},
		OnForgot: func() {
			log.Info("password reset requested")
		},
		OnToggle: func(remember bool) {
			log.WithFields(map[string]any{"remember": remember}).Debug("remember toggled")
		},
	}

	for _, provider := range cfg.Social.Providers {
		switch components.Provider(provider.ID).Canonical() {
		case components.ProviderFacebook:
			opts.FacebookIcon = provider.Icon
		case components.ProviderGoogle:
			opts.GoogleIcon = provider.Icon
		case components.ProviderApple:
			opts.AppleIcon = provider.Icon
		}
	}

	if cfg.Theme == "dark" {
		theme := components.DarkTheme()
		opts.Theme = &theme
	}

	return demoModel{
		form:   signin.New(opts),
		holder: holder,
		log:    log,
	}
}

func (m demoModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.form.Release()
			return m, tea.Quit
		}

	case authCompleteMsg:
		var cmds []tea.Cmd
		cmds = append(cmds, m.form.SetLoading(false))
		if msg.err != nil {
			m.form.SetError(msg.err.Error())
		} else {
			m.form.SetError("")
			return m, tea.Quit
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	// A submit callback fired during the form update; take over the
	// caller-owned loading lifecycle.
	if sub := m.holder.take(); sub != nil {
		m.log.WithFields(map[string]any{"email": sub.email, "remember": sub.remember}).Info("signin submitted")
		m.form.SetError("")
		loadCmd := m.form.SetLoading(true)
		return m, tea.Batch(cmd, loadCmd, simulateAuthCmd())
	}

	return m, cmd
}

// simulateAuthCmd stands in for a real authentication backend. It always
// rejects so the demo exercises the error banner path.
func simulateAuthCmd() tea.Cmd {
	return tea.Tick(1500*time.Millisecond, func(time.Time) tea.Msg {
		return authCompleteMsg{err: fmt.Errorf("Invalid email or password")}
	})
}

func (m demoModel) View() string {
	return m.form.View()
}
