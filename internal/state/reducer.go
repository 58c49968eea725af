package state

import (
	"github.com/kk-code-lab/grain/internal/textutil"
)

// StateReducer applies Actions to AppState. All mutations happen here so the
// scroll-bound invariants live in one place.
type StateReducer struct{}

// NewStateReducer creates a new reducer.
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies an action and reports whether it was recognized. Recognized
// navigation counts as handled even when the offset saturates at a bound.
func (r *StateReducer) Reduce(state *AppState, action Action) (bool, error) {
	switch a := action.(type) {
	case ScrollUpAction:
		state.ScrollY = saturatingSub(state.ScrollY, 1)
	case ScrollDownAction:
		state.ScrollY = min(state.ScrollY+1, state.maxScrollY())
	case ScrollLeftAction:
		state.ScrollX = saturatingSub(state.ScrollX, 1)
	case ScrollRightAction:
		state.ScrollX = min(state.ScrollX+1, state.maxScrollX())
	case ScrollPageUpAction:
		_, h := state.ContentSize()
		state.ScrollY = saturatingSub(state.ScrollY, h)
	case ScrollPageDownAction:
		_, h := state.ContentSize()
		state.ScrollY = min(state.ScrollY+h, state.maxScrollY())
	case ScrollToStartAction:
		state.ScrollX = 0
	case ScrollToEndAction:
		state.ScrollX = state.maxScrollX()
	case ScrollToTopAction:
		state.ScrollY = 0
	case ScrollToBottomAction:
		state.ScrollY = state.maxScrollY()
	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.clampToBounds()
	case ReplaceContentAction:
		r.replaceContent(state, a.Lines)
	default:
		return false, nil
	}
	return true, nil
}

// replaceContent swaps in new content unless it is byte-for-byte identical to
// the current body. The equality check short-circuits before any re-clamp so
// an unchanged refresh cannot disturb offsets sitting at a stale bound.
func (r *StateReducer) replaceContent(state *AppState, lines []string) {
	if linesEqual(state.Lines, lines) {
		return
	}

	w, h := state.ContentSize()
	state.ScrollY = min(state.ScrollY, maxScrollFor(len(lines), h))
	state.ScrollX = min(state.ScrollX, maxScrollFor(textutil.MaxVisualWidth(lines), w))
	state.Lines = lines
}

// clampToBounds pulls both offsets back inside the bounds derived from the
// current content and window.
func (s *AppState) clampToBounds() {
	s.ScrollY = min(s.ScrollY, s.maxScrollY())
	s.ScrollX = min(s.ScrollX, s.maxScrollX())
}

func (s *AppState) maxScrollY() int {
	_, h := s.ContentSize()
	return maxScrollFor(len(s.Lines), h)
}

func (s *AppState) maxScrollX() int {
	w, _ := s.ContentSize()
	return maxScrollFor(textutil.MaxVisualWidth(s.Lines), w)
}

// maxScrollFor is the largest offset at which the window still shows content.
func maxScrollFor(extent, window int) int {
	if extent <= window {
		return 0
	}
	return extent - window
}

func linesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func saturatingSub(v, by int) int {
	if v <= by {
		return 0
	}
	return v - by
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
