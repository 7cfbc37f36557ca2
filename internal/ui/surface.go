package ui

import "github.com/gdamore/tcell/v2"

// Surface is anything cells can be drawn on
type Surface interface {
	SetCell(x, y int, r rune, style tcell.Style)
}

type clipped struct {
	surface Surface
	bounds  Rect
}

// Clip returns a surface that drops every write outside bounds
func Clip(s Surface, bounds Rect) Surface {
	if c, ok := s.(clipped); ok {
		bounds = bounds.Intersect(c.bounds)
		s = c.surface
	}
	return clipped{surface: s, bounds: bounds}
}

func (c clipped) SetCell(x, y int, r rune, style tcell.Style) {
	if c.bounds.Contains(Point{X: x, Y: y}) {
		c.surface.SetCell(x, y, r, style)
	}
}

// Fill paints r with the given rune
func Fill(s Surface, r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, ch, style)
		}
	}
}

// DrawText draws text starting at (x, y), stopping before maxWidth display
// columns. Wide runes occupy two columns. It returns the width drawn.
func DrawText(s Surface, x, y int, text string, maxWidth int, style tcell.Style) int {
	width := 0
	for _, r := range text {
		rw := RuneWidth(r)
		if rw == 0 {
			continue
		}
		if width+rw > maxWidth {
			break
		}
		s.SetCell(x+width, y, r, style)
		if rw == 2 {
			s.SetCell(x+width+1, y, ' ', style)
		}
		width += rw
	}
	return width
}
