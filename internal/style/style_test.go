package style

import (
	"github.com/robinovitch61/hcols/internal/util"
	"testing"
)

func TestAdjust(t *testing.T) {
	tests := []struct {
		hex      string
		factor   float64
		expected string
	}{
		{"#808080", 1, "#808080"},
		{"#000000", 2, "#1a1a1a"},
		{"#ffffff", 1.7, "#ffffff"},
		{"nope", 1.7, "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			util.CmpStr(t, tt.expected, Adjust(tt.hex, tt.factor))
		})
	}
}
