package components

import "strings"

// Spacer renders a fixed block of empty cells. Stacks materialize their
// gaps through it; it can also be placed between components directly.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer spanning the given columns and rows.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: width, height: height}
}

// HorizontalSpacer creates a single-row spacer spanning the given columns.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer creates a zero-width spacer spanning the given rows.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the spacer as empty space. A spacer with no extent renders
// to the empty string, which layout containers drop entirely.
func (s *Spacer) View() string {
	width := max(s.width, 0)
	height := max(s.height, 0)
	if width == 0 && height == 0 {
		return ""
	}

	row := strings.Repeat(" ", width)
	rows := make([]string, max(height, 1))
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
