package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== SCROLL ACTIONS =====

type ScrollUpAction struct{}
type ScrollDownAction struct{}
type ScrollLeftAction struct{}
type ScrollRightAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}

// Home/End jump horizontally; Ctrl+Home/Ctrl+End jump vertically.
type ScrollToStartAction struct{}
type ScrollToEndAction struct{}
type ScrollToTopAction struct{}
type ScrollToBottomAction struct{}

// ===== CONTENT ACTIONS =====

// ReplaceContentAction swaps in a freshly acquired body. Identical content is
// a no-op; otherwise the offsets are clamped against the new dimensions
// before the swap.
type ReplaceContentAction struct {
	Lines []string
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
