package app

import (
	"fmt"
	"log"

	"github.com/pstuifzand/tui-treelist/internal/model"
	"github.com/pstuifzand/tui-treelist/internal/socket"
)

// handleSocketMessage processes messages received from the Unix socket
func (a *App) handleSocketMessage(msg socket.Message) {
	log.Printf("Received socket message: command=%s, text=%s, target=%s, id=%s", msg.Command, msg.Text, msg.Target, msg.ID)

	switch msg.Command {
	case socket.CommandAddNode:
		a.handleAddNodeCommand(msg)
	case socket.CommandRemoveNode:
		a.handleRemoveNodeCommand(msg)
	case socket.CommandSelectNode:
		a.handleSelectNodeCommand(msg)
	default:
		log.Printf("Unknown socket command: %s", msg.Command)
	}
}

// handleAddNodeCommand adds a node at the top level, to the inbox or below
// the item whose id is the target
func (a *App) handleAddNodeCommand(msg socket.Message) {
	if msg.Text == "" {
		log.Printf("Add node command missing text")
		return
	}

	item := model.NewItem(msg.Text)
	for k, v := range msg.Attributes {
		item.Metadata.Attributes[k] = v
	}

	switch msg.Target {
	case "":
		a.outline.Add(item)
	case inboxTarget:
		a.addToInbox(item)
	default:
		parent := a.outline.FindItemByID(msg.Target)
		if parent == nil {
			log.Printf("Add node target not found: %s", msg.Target)
			a.SetStatus(fmt.Sprintf("Error: no item with id %s", msg.Target))
			return
		}
		parent.AddChild(item)
	}
	a.dirty = true
	log.Printf("Added item %s: %s", item.ID, item.Text)
	a.SetStatus(fmt.Sprintf("Added %q", item.Text))
}

func (a *App) handleRemoveNodeCommand(msg socket.Message) {
	if !a.outline.Remove(msg.ID) {
		log.Printf("Remove node: no item with id %s", msg.ID)
		a.SetStatus(fmt.Sprintf("Error: no item with id %s", msg.ID))
		return
	}
	a.dirty = true
	a.SetStatus(fmt.Sprintf("Removed %s", msg.ID))
}

func (a *App) handleSelectNodeCommand(msg socket.Message) {
	item := a.outline.FindItemByID(msg.ID)
	if item == nil || !a.selectItem(item) {
		log.Printf("Select node: no item with id %s", msg.ID)
		a.SetStatus(fmt.Sprintf("Error: no item with id %s", msg.ID))
	}
}
