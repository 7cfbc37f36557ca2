package socket

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// ErrNoInstance is returned when no running instance has a socket
var ErrNoInstance = errors.New("no running treelist instance found")

// Client represents a Unix socket client for sending commands
type Client struct {
	socketPath string
}

// FindRunningInstance finds the socket of the most recently started
// instance in SocketDir. It returns the socket path and PID.
func FindRunningInstance() (string, int, error) {
	return FindRunningInstanceIn(SocketDir())
}

// FindRunningInstanceIn looks for instance sockets in dir
func FindRunningInstanceIn(dir string) (string, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", 0, ErrNoInstance
		}
		return "", 0, fmt.Errorf("error scanning socket directory: %w", err)
	}

	var newest string
	var newestTime time.Time
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, socketPrefix) || !strings.HasSuffix(name, ".sock") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestTime) {
			newest = filepath.Join(dir, name)
			newestTime = info.ModTime()
		}
	}
	if newest == "" {
		return "", 0, ErrNoInstance
	}

	pidStr := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(newest), socketPrefix), ".sock")
	pid, err := strconv.Atoi(pidStr)
	if err != nil {
		pid = 0 // Unknown PID
	}
	return newest, pid, nil
}

// NewClient creates a new client connected to the specified socket
func NewClient(socketPath string) (*Client, error) {
	if _, err := os.Stat(socketPath); err != nil {
		return nil, fmt.Errorf("socket not found: %w", err)
	}
	return &Client{socketPath: socketPath}, nil
}

// Send sends a message to the server and returns the response
func (c *Client) Send(msg Message) (*Response, error) {
	conn, err := net.Dial("unix", c.socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to socket: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return nil, fmt.Errorf("failed to set deadline: %w", err)
	}

	if err := json.NewEncoder(conn).Encode(msg); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	var response Response
	if err := json.NewDecoder(conn).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to receive response: %w", err)
	}
	return &response, nil
}

// SendAddNode adds an item under target, or at the top level when target
// is empty
func (c *Client) SendAddNode(text, target string, attributes map[string]string) (*Response, error) {
	return c.Send(Message{
		Command:    CommandAddNode,
		Text:       text,
		Target:     target,
		Attributes: attributes,
	})
}

// SendRemoveNode removes the item with the given id
func (c *Client) SendRemoveNode(id string) (*Response, error) {
	return c.Send(Message{Command: CommandRemoveNode, ID: id})
}

// SendSelectNode selects the item with the given id
func (c *Client) SendSelectNode(id string) (*Response, error) {
	return c.Send(Message{Command: CommandSelectNode, ID: id})
}
