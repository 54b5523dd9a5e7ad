package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Pad4 formats calories and grams as four zero-padded digits, saturating
// at 9999.
func Pad4(v int) string {
	return fmt.Sprintf("%04d", clamp(v, 9999))
}

// Pad3 formats carbs, protein and fat as three zero-padded digits,
// saturating at 999.
func Pad3(v int) string {
	return fmt.Sprintf("%03d", clamp(v, 999))
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// PadRight pads s with spaces to width cells, truncating when longer.
func PadRight(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}
