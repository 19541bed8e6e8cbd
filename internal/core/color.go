package core

// Color represents a foreground color for a screen cell.
// The terminal UI maps each value to a lipgloss style, mostly truecolor hex
// that lipgloss degrades on terminals without truecolor support.
type Color uint8

// Palette used by the valentine scene.
const (
	ColorDefault Color = iota
	ColorCloud
	ColorGround
	ColorGroundStripe
	ColorPipe
	ColorPipeCap
	ColorBird
	ColorBeak
	ColorHeart
	ColorText
	ColorDim
)
