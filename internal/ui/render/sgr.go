package render

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Content lines carry raw SGR escape runs (ESC '[' params 'm'). tcell paints
// cells, not byte streams, so the runs are interpreted here and folded into
// the style of the following cells.

// applyEscapeRun updates style from the body of one escape run (the runes
// between ESC and the terminating 'm'). Runs that are not SGR are ignored.
func applyEscapeRun(style tcell.Style, body string, base tcell.Style) tcell.Style {
	if !strings.HasPrefix(body, "[") {
		return style
	}
	params := body[1:]
	if params == "" {
		return base
	}

	for _, part := range strings.Split(params, ";") {
		code, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		switch {
		case code == 0:
			style = base
		case code == 1:
			style = style.Bold(true)
		case code == 2:
			style = style.Dim(true)
		case code == 3:
			style = style.Italic(true)
		case code == 4:
			style = style.Underline(true)
		case code == 5:
			style = style.Blink(true)
		case code == 7:
			style = style.Reverse(true)
		case code == 22:
			style = style.Bold(false).Dim(false)
		case code == 24:
			style = style.Underline(false)
		case code == 27:
			style = style.Reverse(false)
		case code >= 30 && code <= 37:
			style = style.Foreground(tcell.PaletteColor(code - 30))
		case code == 39:
			style = style.Foreground(tcell.ColorDefault)
		case code >= 40 && code <= 47:
			style = style.Background(tcell.PaletteColor(code - 40))
		case code == 49:
			style = style.Background(tcell.ColorDefault)
		case code >= 90 && code <= 97:
			style = style.Foreground(tcell.PaletteColor(code - 90 + 8))
		case code >= 100 && code <= 107:
			style = style.Background(tcell.PaletteColor(code - 100 + 8))
		}
	}
	return style
}
