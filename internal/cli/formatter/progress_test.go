package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderIndexBar(t *testing.T) {
	tests := []struct {
		name       string
		v          float64
		width      int
		wantFilled int
		wantWidth  int
	}{
		{"zero", 0, 10, 0, 10},
		{"half", 5, 10, 5, 10},
		{"full", 10, 10, 10, 10},
		{"over ten clamps", 12, 10, 10, 10},
		{"negative clamps", -3, 10, 0, 10},
		{"tiny width clamps to 2", 5, 1, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderIndexBar(tt.v, tt.width))
			assert.True(t, strings.HasPrefix(got, "["))
			assert.True(t, strings.HasSuffix(got, "]"))
			assert.Equal(t, tt.wantFilled, strings.Count(got, filledBlock))
			assert.Equal(t, tt.wantWidth, strings.Count(got, filledBlock)+strings.Count(got, emptyBlock))
		})
	}
}
