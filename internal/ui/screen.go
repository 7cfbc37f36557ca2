package ui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-treelist/internal/config"
	"github.com/pstuifzand/tui-treelist/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	width       int
	height      int
	Theme       *theme.Theme
	closeOnce   sync.Once
}

// NewScreen creates a new Screen instance with the theme named in cfg
func NewScreen(cfg *config.Config) (*Screen, error) {
	t := theme.Default()
	if cfg != nil {
		t = theme.LoadThemeOrDefault(cfg.Theme)
	}

	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return NewScreenWithTheme(tcellScreen, t)
}

// NewScreenWithTheme initializes s and wraps it with a specific theme
func NewScreenWithTheme(s tcell.Screen, t *theme.Theme) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	s.EnableMouse()

	width, height := s.Size()
	return &Screen{
		tcellScreen: s,
		width:       width,
		height:      height,
		Theme:       t,
	}, nil
}

// Close closes the screen; later calls are no-ops
func (s *Screen) Close() error {
	s.closeOnce.Do(s.tcellScreen.Fini)
	return nil
}

// Clear clears the entire screen with the background style
func (s *Screen) Clear() {
	s.tcellScreen.SetStyle(s.BackgroundStyle())
	s.tcellScreen.Clear()
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws a string at the given position, clipped to the screen
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) {
	DrawText(s, x, y, text, s.width-x, style)
}

// PollEvent polls for the next event (key press, mouse, etc.)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Sync redraws the whole terminal, used after a resize
func (s *Screen) Sync() {
	s.tcellScreen.Sync()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	s.width, s.height = s.tcellScreen.Size()
	return s.width, s.height
}

// Bounds returns the full screen rectangle
func (s *Screen) Bounds() Rect {
	w, h := s.Size()
	return Rect{W: w, H: h}
}

// BackgroundStyle returns the default background style for the application
func (s *Screen) BackgroundStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.RowText, s.Theme.Colors.Background)
}

// HeaderStyle returns the style for column headers
func (s *Screen) HeaderStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HeaderText, s.Theme.Colors.HeaderBg).Bold(true)
}

// RowStyle returns the style for unselected rows
func (s *Screen) RowStyle() tcell.Style {
	return s.BackgroundStyle()
}

// HoverStyle returns the style for the row under the pointer
func (s *Screen) HoverStyle() tcell.Style {
	bg := s.Theme.Colors.HoverBg
	if bg == tcell.ColorDefault {
		return s.RowStyle().Underline(true)
	}
	return theme.ColorPairToStyle(s.Theme.Colors.RowText, bg)
}

// SelectedStyle returns the style for the selected row
func (s *Screen) SelectedStyle() tcell.Style {
	c := s.Theme.Colors
	if c.SelectedBg == tcell.ColorDefault {
		return tcell.StyleDefault.Reverse(true)
	}
	return theme.ColorPairToStyle(c.SelectedText, c.SelectedBg).Bold(true)
}

// BorderStyle returns the style for the cell separators
func (s *Screen) BorderStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.Border)
}

// GlyphStyle returns the style for expand/collapse glyphs
func (s *Screen) GlyphStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.Glyph)
}

// GhostStyle returns the style for the header being dragged
func (s *Screen) GhostStyle() tcell.Style {
	c := s.Theme.Colors
	bg := theme.Blend(c.HeaderBg, c.Background, 0.3)
	return theme.ColorPairToStyle(c.DragGhost, bg).Dim(true)
}

// ResizeStyle returns the style for the active resize boundary
func (s *Screen) ResizeStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.ResizeIndicator).Bold(true)
}

// StatusStyle returns the style for the status line
func (s *Screen) StatusStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.StatusText, s.Theme.Colors.StatusBg)
}

// PromptStyle returns the style for the find prompt
func (s *Screen) PromptStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.PromptText, s.Theme.Colors.StatusBg).Bold(true)
}

// MessageStyle returns the style for status messages
func (s *Screen) MessageStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.Message, s.Theme.Colors.StatusBg)
}
