package signin

import (
	"github.com/tessier-labs/authform/internal/ui"
	"github.com/tessier-labs/authform/internal/ui/components"
)

// View renders the signin form.
func (m Model) View() string {
	ctx := components.DefaultContext().
		WithTheme(m.theme).
		WithConstraints(components.WithMaxWidth(m.width))

	content := make([]ui.Renderable, 0, 10)

	if m.errorMessage != "" {
		content = append(content, components.ErrorAlert(m.errorMessage))
	}

	content = append(content, m.fieldView(m.email.View(), m.focus == focusEmail, m.emailError))
	if m.emailError != "" {
		content = append(content, m.inlineError(m.emailError))
	}

	content = append(content, m.fieldView(m.password.View(), m.focus == focusPassword, m.passwordError))
	if m.passwordError != "" {
		content = append(content, m.inlineError(m.passwordError))
	}

	if m.opts.ShowRemember {
		content = append(content, m.remember)
	}

	submit := components.PrimaryButton(m.opts.SubmitLabel).
		WithWidth(m.width - 2).
		WithFocused(m.focus == focusSubmit).
		WithLoading(m.loading, m.spinner.View())
	content = append(content, submit)

	if m.social != nil {
		divider := components.NewLabeledDivider(m.opts.DividerLabel).WithWidth(m.width - 2)
		content = append(content, divider, m.social,
			components.HintText("f1 facebook · f2 google · f3 apple"))
	}

	screen := components.NewScreen(content...).WithWidth(m.width)
	if m.opts.Title != "" {
		header := components.NewHeader(m.opts.Title)
		if m.opts.Subtitle != "" {
			header.WithSubtitle(m.opts.Subtitle)
		}
		screen.WithHeader(header)
	}

	return screen.ViewWithContext(ctx)
}

type styledField struct {
	view string
}

func (f styledField) View() string { return f.view }

func (m Model) fieldView(inner string, focused bool, errMsg string) ui.Renderable {
	state := components.InputStateDefault
	switch {
	case errMsg != "":
		state = components.InputStateInvalid
	case focused:
		state = components.InputStateFocus
	}

	style := components.InputStyle(m.theme, state).Width(m.width - 2)
	return styledField{view: style.Render(inner)}
}

func (m Model) inlineError(message string) ui.Renderable {
	return components.NewText(message).
		WithAppliers(components.Foreground(components.PaletteDanger))
}
