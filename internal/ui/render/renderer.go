package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/grain/internal/state"
	"github.com/mattn/go-runewidth"
)

// Trailing columns the status line reserves for the interval suffix.
const statusReserve = 10

// Status is the fixed description shown on the top row.
type Status struct {
	Source   string // file path or command line
	Interval string // preformatted, e.g. "1s"
}

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	status Status
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, status Status) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
		status: status,
	}
}

// Render draws the entire UI based on state: a status row, a blank separator,
// and the viewport's visible lines. Short terminals drop the separator first,
// then the status row, matching AppState.ContentSize.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := state.ScreenWidth, state.ScreenHeight
	contentTop := 0
	switch {
	case h >= 3:
		contentTop = 2
	case h == 2:
		contentTop = 1
	}

	if contentTop > 0 {
		r.drawStatusLine(w)
	}

	contentStyle := tcell.StyleDefault.Foreground(r.theme.ContentFg).Background(r.theme.ContentBg)
	for i, line := range state.VisibleLines() {
		y := contentTop + i
		if y >= h {
			break
		}
		style := contentStyle
		if line == statepkg.PlaceholderNoContent {
			style = style.Foreground(r.theme.PlaceholderFg)
		}
		r.drawStyledLine(0, y, w, line, style)
	}

	r.screen.Show()
}

// drawStatusLine paints "<source>  <interval>" on the top row, truncating a
// long source so the interval suffix always fits.
func (r *Renderer) drawStatusLine(w int) {
	source := r.status.Source
	if maxLen := w - statusReserve; maxLen > 3 && runewidth.StringWidth(source) > maxLen {
		source = runewidth.Truncate(source, maxLen, "...")
	}
	text := source + "  " + r.status.Interval

	style := tcell.StyleDefault.Foreground(r.theme.StatusFg).Background(r.theme.StatusBg)
	x := 0
	for _, ru := range text {
		width := runewidth.RuneWidth(ru)
		if width < 1 {
			width = 1
		}
		if x+width > w {
			break
		}
		r.screen.SetContent(x, 0, ru, nil, style)
		x += width
	}
}

// drawStyledLine paints one content line, interpreting SGR escape runs as
// zero-width style changes. Returns the column after the last painted cell.
func (r *Renderer) drawStyledLine(x, y, maxX int, text string, base tcell.Style) int {
	style := base
	inEscape := false
	var escapeBody strings.Builder

	for _, ru := range text {
		if inEscape {
			if ru == 'm' {
				style = applyEscapeRun(style, escapeBody.String(), base)
				escapeBody.Reset()
				inEscape = false
			} else {
				escapeBody.WriteRune(ru)
			}
			continue
		}
		if ru == '\x1b' {
			inEscape = true
			continue
		}

		width := runewidth.RuneWidth(ru)
		if width < 1 {
			width = 1
		}
		if x+width > maxX {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += width
	}
	return x
}
