package formatter

import "strings"

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderIndexBar renders a 0–10 index as a bar like [████░░░░], colored
// by IndexColor.
func RenderIndexBar(v float64, width int) string {
	v = min(max(v, 0), 10)
	width = max(width, 2)

	filled := min(int(v/10*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return StyleDim.Render("[") + IndexColor(v).Render(bar) + StyleDim.Render("]")
}
