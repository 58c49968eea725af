package state

import (
	textutil "github.com/kk-code-lab/grain/internal/textutil"
)

// PlaceholderNoContent is shown when the scroll offset transiently points
// past the end of the content (possible only between a shrink and a reclamp).
const PlaceholderNoContent = "no content to display"

// VisibleLines materializes the window of content the renderer should paint:
// the rows at [ScrollY, ScrollY+height), each cropped at ScrollX.
func (s *AppState) VisibleLines() []string {
	_, h := s.ContentSize()

	start := s.ScrollY
	end := min(start+h, len(s.Lines))
	if start >= end {
		return []string{PlaceholderNoContent}
	}

	visible := make([]string, 0, end-start)
	for _, line := range s.Lines[start:end] {
		visible = append(visible, textutil.CropFromColumn(line, s.ScrollX))
	}
	return visible
}
