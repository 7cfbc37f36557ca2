package socket

// Message represents a command sent to the running treelist instance
type Message struct {
	Command    string            `json:"command"`
	Text       string            `json:"text,omitempty"`
	Target     string            `json:"target,omitempty"` // parent item id, empty for the top level
	ID         string            `json:"id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Response represents the response from the server
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Command types
const (
	CommandAddNode    = "add_node"
	CommandRemoveNode = "remove_node"
	CommandSelectNode = "select_node"
)

// Validate checks that a message carries what its command needs
func (m Message) Validate() string {
	switch m.Command {
	case "":
		return "Missing command field"
	case CommandAddNode:
		if m.Text == "" {
			return "add_node needs text"
		}
	case CommandRemoveNode, CommandSelectNode:
		if m.ID == "" {
			return m.Command + " needs id"
		}
	default:
		return "Unknown command: " + m.Command
	}
	return ""
}
