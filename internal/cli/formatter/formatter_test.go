package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "LONGER"},
		[][]string{{"wide cell", "x"}, {"y"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "A          LONGER", lines[0])
	assert.Equal(t, "─────────  ──────", lines[1])
	assert.Equal(t, "wide cell  x", lines[2])
	assert.Equal(t, "y          ", lines[3])
}

func TestRenderTableWithoutHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"a"}}))
}

func TestRenderBox(t *testing.T) {
	out := stripANSI(RenderBox("Semester 3", "SPI  8.000"))
	assert.Contains(t, out, "SEMESTER 3")
	assert.Contains(t, out, "SPI  8.000")
	assert.Contains(t, out, "╭")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	out := stripANSI(RenderBox("", "body"))
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "╰")
}

func TestFormatIndex(t *testing.T) {
	assert.Equal(t, "8.489", FormatIndex(8.48888, 3))
	assert.Equal(t, "9", FormatIndex(9, 0))
	assert.Equal(t, "7.50", FormatIndex(7.5, 2))
}

func TestFormatCredit(t *testing.T) {
	assert.Equal(t, "4", FormatCredit(4))
	assert.Equal(t, "1.5", FormatCredit(1.5))
}

func TestIndexColorThresholds(t *testing.T) {
	assert.Equal(t, StyleGreen.GetForeground(), IndexColor(8).GetForeground())
	assert.Equal(t, StyleYellow.GetForeground(), IndexColor(7.99).GetForeground())
	assert.Equal(t, StyleYellow.GetForeground(), IndexColor(6).GetForeground())
	assert.Equal(t, StyleRed.GetForeground(), IndexColor(5.99).GetForeground())
}

func TestHeader(t *testing.T) {
	out := stripANSI(Header("Curriculum"))
	assert.Equal(t, "CURRICULUM\n──────────", out)
}
