package app

import (
	"github.com/pstuifzand/tui-treelist/internal/model"
)

const inboxTarget = "inbox"

// findInboxNode searches for a node marked with the type=inbox attribute
func (a *App) findInboxNode() *model.Item {
	for _, item := range a.outline.GetAllItems() {
		if item.Attribute("type") == "inbox" {
			return item
		}
	}
	return nil
}

// getOrCreateInboxNode finds an existing inbox node or creates a new one at
// the top level. Returns the inbox node and whether it was created.
func (a *App) getOrCreateInboxNode() (*model.Item, bool) {
	if inbox := a.findInboxNode(); inbox != nil {
		return inbox, false
	}

	inbox := model.NewItem("Inbox")
	inbox.Metadata.Attributes["type"] = "inbox"
	a.outline.Add(inbox)
	a.dirty = true
	return inbox, true
}

// addToInbox adds a new item to the inbox node and expands the inbox so the
// item shows up
func (a *App) addToInbox(item *model.Item) {
	inbox, _ := a.getOrCreateInboxNode()
	inbox.AddChild(item)
	if n := a.tree.Reveal(inbox.Path()...); n != nil {
		n.SetExpanded(true)
	}
	a.dirty = true
}
