package treelist

import "github.com/gdamore/tcell/v2"

// Styles are the looks the tree list draws with. Border, Glyph and Resize
// contribute only their foreground; the background comes from the row.
type Styles struct {
	Header   tcell.Style
	Row      tcell.Style
	Hover    tcell.Style
	Selected tcell.Style
	Border   tcell.Style
	Glyph    tcell.Style
	Ghost    tcell.Style
	Resize   tcell.Style
}

// DefaultStyles uses terminal defaults with attribute-only highlights
func DefaultStyles() Styles {
	return Styles{
		Header:   tcell.StyleDefault.Bold(true).Underline(true),
		Row:      tcell.StyleDefault,
		Hover:    tcell.StyleDefault.Underline(true),
		Selected: tcell.StyleDefault.Reverse(true),
		Border:   tcell.StyleDefault.Dim(true),
		Glyph:    tcell.StyleDefault,
		Ghost:    tcell.StyleDefault.Dim(true).Italic(true),
		Resize:   tcell.StyleDefault.Bold(true),
	}
}

// over takes the foreground and attributes of fg and the background of row
func over(fg, row tcell.Style) tcell.Style {
	f, _, attrs := fg.Decompose()
	_, b, _ := row.Decompose()
	return tcell.StyleDefault.Foreground(f).Background(b).Attributes(attrs)
}
