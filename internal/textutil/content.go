package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 8

// SanitizeContentLine rewrites control runes that would corrupt the cell grid.
// Tabs are expanded against terminal columns and ESC is kept so SGR runs reach
// the renderer intact; every other control rune becomes '?'.
func SanitizeContentLine(text string) string {
	if !needsRewrite(text) {
		return text
	}

	var b strings.Builder
	column := 0
	inEscape := false
	for _, ru := range text {
		switch {
		case inEscape:
			b.WriteRune(ru)
			if ru == escapeEnd {
				inEscape = false
			}
		case ru == escapeStart:
			inEscape = true
			b.WriteRune(ru)
		case ru == '\t':
			spaces := DefaultTabWidth - column%DefaultTabWidth
			for i := 0; i < spaces; i++ {
				b.WriteByte(' ')
			}
			column += spaces
		case ru < 0x20 || ru == 0x7f:
			b.WriteByte('?')
			column++
		default:
			b.WriteRune(ru)
			column += positiveRuneWidth(ru)
		}
	}
	return b.String()
}

func needsRewrite(text string) bool {
	for _, ru := range text {
		if ru == escapeStart {
			continue
		}
		if ru < 0x20 || ru == 0x7f {
			return true
		}
	}
	return false
}

func positiveRuneWidth(ru rune) int {
	if w := runewidth.RuneWidth(ru); w > 0 {
		return w
	}
	return 1
}
