package img2braille

import (
	"strings"
	"testing"
)

func TestRenderLineColorRunElision(t *testing.T) {
	t.Parallel()

	row := []Cell{
		{Rune: '⣿', Color: 196},
		{Rune: '⠑', Color: 196},
		{Rune: '⣀', Color: 21},
	}
	line := renderLine(row, false)

	if got := strings.Count(line, "[38;5;196m"); got != 1 {
		t.Errorf("Repeated color should emit one escape, got %d", got)
	}
	if got := strings.Count(line, "[38;5;21m"); got != 1 {
		t.Errorf("Color change should emit a new escape, got %d", got)
	}
	if !strings.HasSuffix(line, Reset) {
		t.Error("Line should end with a reset")
	}
}

func TestRenderLineBlankResetsColor(t *testing.T) {
	t.Parallel()

	row := []Cell{
		{Rune: '⣿', Color: 82},
		{Rune: ' ', Blank: true},
		{Rune: '⣿', Color: 82},
	}
	line := renderLine(row, false)

	// The blank cell resets, so the color must be re-established.
	if got := strings.Count(line, "[38;5;82m"); got != 2 {
		t.Errorf("Color should be re-emitted after a blank cell, got %d escapes", got)
	}
	if got := strings.Count(line, Reset); got != 2 {
		t.Errorf("Expected reset at blank and at end of line, got %d", got)
	}
}

func TestRenderLineBackgroundEscapes(t *testing.T) {
	t.Parallel()

	row := []Cell{{Rune: ' ', Color: 33}}
	line := renderLine(row, true)
	if !strings.Contains(line, "[48;5;33m") {
		t.Errorf("Background mode should emit 48;5 escapes, got %q", line)
	}
}

func TestEscapeHelpers(t *testing.T) {
	t.Parallel()

	if FgEscape(7) != "[38;5;7m" {
		t.Errorf("Unexpected foreground escape %q", FgEscape(7))
	}
	if BgEscape(255) != "[48;5;255m" {
		t.Errorf("Unexpected background escape %q", BgEscape(255))
	}
	if Reset != "[0m" {
		t.Errorf("Unexpected reset %q", Reset)
	}
}
