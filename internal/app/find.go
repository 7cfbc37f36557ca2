package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-treelist/internal/search"
)

// findPrompt holds the state of the / prompt. The matches stay around after
// the prompt closes so n and N can step through them.
type findPrompt struct {
	active  bool
	query   []rune
	matches []search.Match
	current int
}

func (f *findPrompt) start() {
	f.active = true
	f.query = f.query[:0]
	f.matches = nil
	f.current = 0
}

func (f *findPrompt) reset() {
	f.active = false
	f.query = nil
	f.matches = nil
	f.current = 0
}

func (a *App) handleFindKey(ev *tcell.EventKey) {
	f := a.find
	switch ev.Key() {
	case tcell.KeyEscape:
		f.reset()
	case tcell.KeyEnter:
		f.active = false
		if len(f.matches) == 0 {
			a.SetStatus("No matches")
			return
		}
		a.showMatch()
	case tcell.KeyTab, tcell.KeyDown:
		a.stepMatch(1)
	case tcell.KeyBacktab, tcell.KeyUp:
		a.stepMatch(-1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(f.query) > 0 {
			f.query = f.query[:len(f.query)-1]
			a.updateMatches()
		}
	case tcell.KeyCtrlU:
		f.query = f.query[:0]
		a.updateMatches()
	case tcell.KeyRune:
		f.query = append(f.query, ev.Rune())
		a.updateMatches()
	}
}

func (a *App) updateMatches() {
	a.find.matches = search.Find(a.outline.GetAllItems(), string(a.find.query))
	a.find.current = 0
	if len(a.find.matches) > 0 {
		a.showMatch()
	}
}

func (a *App) stepMatch(delta int) {
	n := len(a.find.matches)
	if n == 0 {
		return
	}
	a.find.current = ((a.find.current+delta)%n + n) % n
	a.showMatch()
}

// nextMatch moves to another match of the last query
func (a *App) nextMatch(delta int) {
	if len(a.find.matches) == 0 {
		a.SetStatus("No find results")
		return
	}
	a.stepMatch(delta)
	a.SetStatus(fmt.Sprintf("Match %d of %d", a.find.current+1, len(a.find.matches)))
}

func (a *App) showMatch() {
	m := a.find.matches[a.find.current]
	if !a.selectItem(m.Item) {
		a.SetStatus(fmt.Sprintf("%q is no longer in the outline", m.Item.Text))
	}
}
