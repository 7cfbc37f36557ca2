package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	Background tcell.Color

	// Column header colors
	HeaderText tcell.Color
	HeaderBg   tcell.Color

	// Row colors
	RowText      tcell.Color
	HoverBg      tcell.Color
	SelectedText tcell.Color
	SelectedBg   tcell.Color

	// Cell decorations
	Border          tcell.Color
	Glyph           tcell.Color
	DragGhost       tcell.Color
	ResizeIndicator tcell.Color

	// Status line colors
	StatusText tcell.Color
	StatusBg   tcell.Color
	PromptText tcell.Color
	Message    tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a default theme using terminal defaults
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			Background:      tcell.ColorDefault,
			HeaderText:      tcell.ColorDefault,
			HeaderBg:        tcell.ColorDefault,
			RowText:         tcell.ColorDefault,
			HoverBg:         tcell.ColorDefault,
			SelectedText:    tcell.ColorDefault,
			SelectedBg:      tcell.ColorDefault,
			Border:          tcell.ColorDefault,
			Glyph:           tcell.ColorDefault,
			DragGhost:       tcell.ColorDefault,
			ResizeIndicator: tcell.ColorDefault,
			StatusText:      tcell.ColorDefault,
			StatusBg:        tcell.ColorDefault,
			PromptText:      tcell.ColorDefault,
			Message:         tcell.ColorDefault,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			Background:      HexToColor("#1a1b26"), // Dark background
			HeaderText:      HexToColor("#bb9af7"), // Magenta
			HeaderBg:        HexToColor("#24283b"), // Storm
			RowText:         HexToColor("#c0caf5"), // Light gray-blue
			HoverBg:         HexToColor("#292e42"), // Highlight
			SelectedText:    HexToColor("#1a1b26"),
			SelectedBg:      HexToColor("#7aa2f7"), // Blue
			Border:          HexToColor("#3b4261"),
			Glyph:           HexToColor("#7dcfff"), // Cyan
			DragGhost:       HexToColor("#565f89"), // Comment gray
			ResizeIndicator: HexToColor("#e0af68"), // Yellow
			StatusText:      HexToColor("#c0caf5"),
			StatusBg:        HexToColor("#16161e"),
			PromptText:      HexToColor("#bb9af7"),
			Message:         HexToColor("#9ece6a"), // Green
		},
	}
}
