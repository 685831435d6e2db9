package formatter

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// FormatIndex renders an SPI or CPI with a fixed number of decimals.
func FormatIndex(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// FormatCredit renders a credit weight without trailing zeros.
func FormatCredit(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
