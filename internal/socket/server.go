package socket

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

const socketPrefix = "treelist-"

// SocketDir returns the directory that holds the sockets of running
// instances: XDG_RUNTIME_DIR if set, otherwise ~/.local/share
func SocketDir() string {
	if xdgRuntime := os.Getenv("XDG_RUNTIME_DIR"); xdgRuntime != "" {
		return filepath.Join(xdgRuntime, "tui-treelist")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "tui-treelist")
}

// Server represents a Unix socket server for accepting external commands
type Server struct {
	socketPath string
	listener   net.Listener
	msgChan    chan Message
	stopChan   chan struct{}
}

// NewServer creates a new Unix socket server in SocketDir
func NewServer(pid int) (*Server, error) {
	return NewServerInDir(SocketDir(), pid)
}

// NewServerInDir creates a new Unix socket server in dir
func NewServerInDir(dir string, pid int) (*Server, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create socket directory: %w", err)
	}

	socketPath := filepath.Join(dir, fmt.Sprintf("%s%d.sock", socketPrefix, pid))

	// Remove existing socket if it exists
	if err := os.RemoveAll(socketPath); err != nil {
		return nil, fmt.Errorf("failed to remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on socket: %w", err)
	}

	log.Printf("Socket server listening on: %s", socketPath)

	return &Server{
		socketPath: socketPath,
		listener:   listener,
		msgChan:    make(chan Message, 10),
		stopChan:   make(chan struct{}),
	}, nil
}

// Start begins accepting connections on the socket
func (s *Server) Start() {
	go s.acceptLoop()
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.stopChan:
				return
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return
			}
			log.Printf("Error accepting connection: %v", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

// handleConnection reads one message, queues it and acknowledges it
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	decoder := json.NewDecoder(conn)
	encoder := json.NewEncoder(conn)
	reply := func(ok bool, message string) {
		if err := encoder.Encode(Response{Success: ok, Message: message}); err != nil {
			log.Printf("Error writing response: %v", err)
		}
	}

	var msg Message
	if err := decoder.Decode(&msg); err != nil {
		if err != io.EOF {
			log.Printf("Error decoding message: %v", err)
		}
		reply(false, fmt.Sprintf("Invalid message format: %v", err))
		return
	}

	if problem := msg.Validate(); problem != "" {
		reply(false, problem)
		return
	}

	select {
	case s.msgChan <- msg:
		reply(true, "Command queued")
	case <-s.stopChan:
		reply(false, "Server is shutting down")
	}
}

// Messages returns the channel for receiving messages
func (s *Server) Messages() <-chan Message {
	return s.msgChan
}

// SocketPath returns the path to the Unix socket
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Stop stops the server and cleans up resources
func (s *Server) Stop() {
	select {
	case <-s.stopChan:
		return
	default:
	}
	close(s.stopChan)
	if s.listener != nil {
		s.listener.Close()
	}
	if s.socketPath != "" {
		os.Remove(s.socketPath)
	}
	log.Printf("Socket server stopped")
}
