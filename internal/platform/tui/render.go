package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/valentine-flappy/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorCloud:        lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
	core.ColorGround:       lipgloss.NewStyle().Foreground(lipgloss.Color("#6bd46b")),
	core.ColorGroundStripe: lipgloss.NewStyle().Foreground(lipgloss.Color("#3f8f3f")),
	core.ColorPipe:         lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71")),
	core.ColorPipeCap:      lipgloss.NewStyle().Foreground(lipgloss.Color("#25b862")),
	core.ColorBird:         lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd400")).Bold(true),
	core.ColorBeak:         lipgloss.NewStyle().Foreground(lipgloss.Color("#ff8a00")),
	core.ColorHeart:        lipgloss.NewStyle().Foreground(lipgloss.Color("#ff2d55")).Bold(true),
	core.ColorText:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorDim:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var helpStyle = lipgloss.NewStyle().Padding(0, 1)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
