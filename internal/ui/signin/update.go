package signin

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessier-labs/authform/internal/ui/components"
)

// Update handles incoming messages and advances the form model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadingMsg:
		cmd := m.SetLoading(msg.Loading)
		return m, cmd

	case ErrorMsg:
		m.SetError(msg.Message)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return m.moveFocus(1)

	case "shift+tab", "up":
		return m.moveFocus(-1)

	case "enter":
		m.Submit()
		return m, nil

	case "ctrl+r":
		if m.opts.ShowRemember {
			m.ToggleRemember()
		}
		return m, nil

	case "ctrl+p":
		m.TogglePasswordVisibility()
		return m, nil

	case "f1":
		m.PressSocial(components.ProviderFacebook)
		return m, nil

	case "f2":
		m.PressSocial(components.ProviderGoogle)
		return m, nil

	case "f3":
		m.PressSocial(components.ProviderApple)
		return m, nil

	case "f4":
		m.remember.PressForgot()
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	m.focus = focusTarget((int(m.focus) + delta + int(focusTargetCount)) % int(focusTargetCount))

	var cmd tea.Cmd
	switch m.focus {
	case focusEmail:
		cmd = m.email.Focus()
		m.password.Blur()
	case focusPassword:
		m.email.Blur()
		cmd = m.password.Focus()
	default:
		m.email.Blur()
		m.password.Blur()
	}
	return m, cmd
}

func (m Model) updateInputs(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.email, cmd = m.email.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
