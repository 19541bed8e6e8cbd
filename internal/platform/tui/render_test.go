package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/valentine-flappy/internal/core"
)

func TestColorStylesCoverEveryColor(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDim; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no lipgloss style for color %d", c)
		}
	}

	// Scene colors are truecolor hex; text uses the ANSI palette
	for _, c := range []core.Color{core.ColorCloud, core.ColorPipe, core.ColorBird, core.ColorHeart} {
		fg, ok := colorStyles[c].GetForeground().(lipgloss.Color)
		if !ok || len(fg) != 7 || fg[0] != '#' {
			t.Errorf("color %d foreground = %v, expected a hex color", c, colorStyles[c].GetForeground())
		}
	}
}
