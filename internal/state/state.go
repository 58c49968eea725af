package state

// ===== STATE DEFINITIONS =====

// Reserved rows above the content area.
const (
	statusRows    = 1
	separatorRows = 1
)

// AppState is the single source of truth: the current content body and the
// viewport over it. Content is only ever replaced wholesale; the scroll
// offsets are re-clamped against the current content and window on every
// mutation so they never go stale.
type AppState struct {
	// Content
	Lines []string

	// Viewport offsets (always within bounds after any Reduce)
	ScrollX int
	ScrollY int

	// Terminal dimensions
	ScreenWidth  int
	ScreenHeight int
}

// ContentSize returns the window available to content after reserving the
// status and separator rows. Short terminals drop the separator first, then
// the status row; content never gets fewer than one row.
func (s *AppState) ContentSize() (width, height int) {
	switch {
	case s.ScreenHeight >= statusRows+separatorRows+1:
		return s.ScreenWidth, s.ScreenHeight - statusRows - separatorRows
	case s.ScreenHeight >= statusRows+1:
		return s.ScreenWidth, s.ScreenHeight - statusRows
	default:
		return s.ScreenWidth, 1
	}
}
