package app

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
)

// KeyBinding represents a key binding with its description and handler
type KeyBinding struct {
	Key         rune
	Description string
	Handler     func(*App)
}

// PendingKeyBinding represents a pending key (like 'z') that waits for a second key
type PendingKeyBinding struct {
	Prefix      rune                // The first key (e.g., 'z')
	Description string              // Description of what the pending key does
	Sequences   map[rune]KeyBinding // Map of second key to keybinding
}

func (a *App) initializeKeybindings() (map[rune]KeyBinding, map[rune]PendingKeyBinding) {
	bindings := []KeyBinding{
		{Key: 'q', Description: "Quit", Handler: func(app *App) { app.Quit() }},
		{Key: ' ', Description: "Expand or collapse the selected row", Handler: func(app *App) {
			if n := app.tree.SelectedNode(); n != nil {
				n.Toggle()
			}
		}},
		{Key: 'E', Description: "Expand all", Handler: func(app *App) { app.tree.ExpandAll() }},
		{Key: 'C', Description: "Collapse all", Handler: func(app *App) { app.tree.CollapseAll() }},
		{Key: '/', Description: "Find", Handler: func(app *App) { app.find.start() }},
		{Key: 'n', Description: "Next find match", Handler: func(app *App) { app.nextMatch(1) }},
		{Key: 'N', Description: "Previous find match", Handler: func(app *App) { app.nextMatch(-1) }},
		{Key: 'y', Description: "Copy selected text to the clipboard", Handler: func(app *App) { app.copySelection() }},
		{Key: 's', Description: "Save", Handler: func(app *App) {
			if err := app.Save(); err != nil {
				log.Printf("Save failed: %v", err)
			}
		}},
		{Key: 'r', Description: "Reload from disk", Handler: func(app *App) {
			if err := app.Reload(); err != nil {
				log.Printf("Reload failed: %v", err)
			}
		}},
		{Key: 'B', Description: "Restore the latest backup", Handler: func(app *App) { app.restoreLatestBackup() }},
	}

	keys := make(map[rune]KeyBinding, len(bindings))
	for _, kb := range bindings {
		keys[kb.Key] = kb
	}

	pending := map[rune]PendingKeyBinding{
		'z': {
			Prefix:      'z',
			Description: "Folding",
			Sequences: map[rune]KeyBinding{
				'a': {Key: 'a', Description: "Toggle fold", Handler: func(app *App) {
					if n := app.tree.SelectedNode(); n != nil {
						n.Toggle()
					}
				}},
				'o': {Key: 'o', Description: "Open fold", Handler: func(app *App) {
					if n := app.tree.SelectedNode(); n != nil {
						n.SetExpanded(true)
					}
				}},
				'c': {Key: 'c', Description: "Close fold", Handler: func(app *App) {
					if n := app.tree.SelectedNode(); n != nil {
						n.SetExpanded(false)
					}
				}},
				'R': {Key: 'R', Description: "Open all folds", Handler: func(app *App) { app.tree.ExpandAll() }},
				'M': {Key: 'M', Description: "Close all folds", Handler: func(app *App) { app.tree.CollapseAll() }},
			},
		},
	}
	return keys, pending
}

func (a *App) copySelection() {
	item, ok := a.tree.SelectedItem()
	if !ok {
		a.SetStatus("Nothing selected")
		return
	}
	if err := clipboard.WriteAll(item.Text); err != nil {
		a.SetStatus(fmt.Sprintf("Copy failed: %v", err))
		return
	}
	a.SetStatus("Copied to clipboard")
}
