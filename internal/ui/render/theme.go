package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	StatusFg      tcell.Color
	StatusBg      tcell.Color
	ContentFg     tcell.Color
	ContentBg     tcell.Color
	PlaceholderFg tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		StatusFg:      tcell.ColorGreen,
		StatusBg:      tcell.ColorDefault,
		ContentFg:     tcell.ColorDefault,
		ContentBg:     tcell.ColorDefault,
		PlaceholderFg: tcell.ColorLightSlateGray,
	}
}
