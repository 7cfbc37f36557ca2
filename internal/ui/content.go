package ui

import "github.com/gdamore/tcell/v2"

// Content is a renderable produced for a header or a cell. Draw receives the
// area it was given and the style of the surrounding row.
type Content interface {
	Size() Size
	Draw(s Surface, r Rect, style tcell.Style)
}

// Text is a single line of text
type Text string

// Size returns the display width of the text and a height of one line
func (t Text) Size() Size {
	return Size{W: StringWidth(string(t)), H: 1}
}

// Draw draws the text, truncated with an ellipsis when it does not fit
func (t Text) Draw(s Surface, r Rect, style tcell.Style) {
	if r.Empty() {
		return
	}
	DrawText(s, r.X, r.Y, TruncateToWidthWithEllipsis(string(t), r.W), r.W, style)
}

// StyledText is text drawn with its own foreground on the row background
type StyledText struct {
	Text  string
	Style tcell.Style
}

// Size returns the display width of the text
func (t StyledText) Size() Size {
	return Text(t.Text).Size()
}

// Draw draws the text with the foreground of t.Style over the row background
func (t StyledText) Draw(s Surface, r Rect, style tcell.Style) {
	fg, _, attrs := t.Style.Decompose()
	_, bg, _ := style.Decompose()
	Text(t.Text).Draw(s, r, tcell.StyleDefault.Foreground(fg).Background(bg).Attributes(attrs))
}
