// Package ui defines the minimal rendering contract shared by all
// terminal components in this library.
package ui

// Renderable is anything that can render itself to a string for display.
type Renderable interface {
	View() string
}
