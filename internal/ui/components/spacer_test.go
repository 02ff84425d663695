package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHorizontalSpacerSpansColumns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "    ", HorizontalSpacer(4).View())
}

func TestVerticalSpacerSpansRows(t *testing.T) {
	t.Parallel()

	assert.Len(t, strings.Split(VerticalSpacer(3).View(), "\n"), 3)
	assert.Equal(t, "", VerticalSpacer(1).View(), "a single row spacer is one empty line")
}

func TestSpacerWithoutExtentRendersNothing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", NewSpacer(0, 0).View())
	assert.Equal(t, "", NewSpacer(-2, -1).View())
}

func TestSpacerFillsBlock(t *testing.T) {
	t.Parallel()

	lines := strings.Split(NewSpacer(3, 2).View(), "\n")
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, "   ", line)
	}
}
