// Package components provides a declarative, theme-aware component library
// for terminal authentication screens, built on lipgloss.
//
// # Architecture
//
// The component system has three layers:
//
//  1. Theme Layer - immutable theme definitions (palette, borders, spacing,
//     typography, provider style table)
//  2. Modifier Layer - StyleFunc transformations that apply theme data to
//     styles
//  3. Component Layer - composable elements that render to strings
//
// Themes are immutable and passed explicitly through RenderContext,
// eliminating global state:
//
//	theme := components.DarkTheme()
//	ctx := components.DefaultContext().WithTheme(theme)
//	output := component.ViewWithContext(ctx)
//
// For simple cases, View() uses the default theme automatically.
//
// # Components
//
// Primitives: Text, Spacer, Icon, Divider, LabeledDivider.
// Layout: Stack, Container, Screen.
// Controls: Button, IconButton, SocialButton, ProviderRow, RememberRow,
// Alert, Header.
//
// Controls carry caller-supplied handlers and expose Press/Toggle entry
// points; they hold no business logic and perform no I/O. State that spans
// renders (form fields, loading flags) lives in the signin package's
// bubbletea model, not here.
//
// # Provider styling
//
// Social controls look up their default (background, text, border) colors
// from the theme's provider table, keyed case-insensitively by provider
// identifier. Unknown identifiers resolve to a theme-neutral default entry.
// Caller-supplied colors override the lookup field by field.
package components
