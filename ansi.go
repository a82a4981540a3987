package img2braille

import (
	"fmt"
	"strings"
)

const (
	// ESC introduces an ANSI escape sequence.
	ESC = ""
	// Reset clears all SGR attributes.
	Reset = ESC + "[0m"
)

// FgEscape returns the SGR sequence selecting a 256-color foreground.
func FgEscape(idx ColorIndex) string {
	return fmt.Sprintf("%s[38;5;%dm", ESC, idx)
}

// BgEscape returns the SGR sequence selecting a 256-color background.
func BgEscape(idx ColorIndex) string {
	return fmt.Sprintf("%s[48;5;%dm", ESC, idx)
}

// renderLine assembles one row of cells into an ANSI string. Color
// escapes are elided while consecutive cells share a palette index, and
// the line always ends with a reset so no attribute state carries over.
func renderLine(row []Cell, background bool) string {
	var sb strings.Builder
	active := false
	var current ColorIndex

	for _, cell := range row {
		if cell.Blank {
			if active {
				sb.WriteString(Reset)
				active = false
			}
			sb.WriteRune(cell.Rune)
			continue
		}
		if !active || current != cell.Color {
			if background {
				sb.WriteString(BgEscape(cell.Color))
			} else {
				sb.WriteString(FgEscape(cell.Color))
			}
			current = cell.Color
			active = true
		}
		sb.WriteRune(cell.Rune)
	}
	sb.WriteString(Reset)
	return sb.String()
}
