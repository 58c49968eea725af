package textutil

import "strings"

// SGR escape runs (ESC ... 'm') color terminal output without occupying any
// columns. Scanning is a two-state machine: ESC enters escape mode, the first
// 'm' leaves it. Other control sequences are not recognized.

const (
	escapeStart = '\x1b'
	escapeEnd   = 'm'
)

// VisualWidth reports how many terminal columns a line occupies, counting
// escape runs as zero width. An unterminated escape swallows the rest of the
// line without contributing to the count.
func VisualWidth(line string) int {
	inEscape := false
	width := 0
	for _, ru := range line {
		if inEscape {
			if ru == escapeEnd {
				inEscape = false
			}
			continue
		}
		if ru == escapeStart {
			inEscape = true
			continue
		}
		width++
	}
	return width
}

// MaxVisualWidth returns the widest visual width across lines.
func MaxVisualWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := VisualWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// CropFromColumn returns the portion of line starting at the given visual
// column. Escape runs are carried over in full even when they precede the
// crop point, so styling applied earlier in the line still renders on the
// visible remainder. A non-empty line that crops down to nothing yields a
// single space to preserve row alignment. An escape left open at the end of
// the line is flushed as-is.
func CropFromColumn(line string, column int) string {
	if column <= 0 {
		return line
	}

	var result strings.Builder
	var escapeBuffer strings.Builder
	inEscape := false
	visualPos := 0

	for _, ru := range line {
		switch {
		case inEscape:
			escapeBuffer.WriteRune(ru)
			if ru == escapeEnd {
				inEscape = false
				result.WriteString(escapeBuffer.String())
				escapeBuffer.Reset()
			}
		case ru == escapeStart:
			inEscape = true
			escapeBuffer.WriteRune(ru)
		default:
			if visualPos >= column {
				result.WriteRune(ru)
			}
			visualPos++
		}
	}

	if inEscape {
		result.WriteString(escapeBuffer.String())
	}

	if result.Len() == 0 && len(line) > 0 {
		return " "
	}
	return result.String()
}
