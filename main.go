package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pstuifzand/tui-treelist/internal/app"
	"github.com/pstuifzand/tui-treelist/internal/config"
	"github.com/pstuifzand/tui-treelist/internal/socket"
	"github.com/pstuifzand/tui-treelist/internal/treelist"
)

func main() {
	logFile, err := os.Create("treelist.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	debug := flag.Bool("debug", false, "Enable debug mode (shows key events in status, logs tree list changes)")
	configPath := flag.String("config", "", "Path to the config file")
	addNode := flag.String("add", "", "Add a node to a running treelist instance")
	target := flag.String("target", "inbox", "Where -add puts the node: inbox, an item id, or empty for the top level")
	removeNode := flag.String("remove", "", "Remove the node with this id from a running treelist instance")
	selectNode := flag.String("select", "", "Select the node with this id in a running treelist instance")
	noSocket := flag.Bool("no-socket", false, "Do not listen for commands from other processes")
	flag.Parse()

	switch {
	case *addNode != "":
		exitOnError(sendCommand(func(c *socket.Client) (*socket.Response, error) {
			text := strings.TrimSpace(*addNode)
			if text == "" {
				return nil, fmt.Errorf("node text cannot be empty")
			}
			return c.SendAddNode(text, *target, nil)
		}))
		fmt.Println("Node added")
		return
	case *removeNode != "":
		exitOnError(sendCommand(func(c *socket.Client) (*socket.Response, error) {
			return c.SendRemoveNode(*removeNode)
		}))
		return
	case *selectNode != "":
		exitOnError(sendCommand(func(c *socket.Client) (*socket.Response, error) {
			return c.SendSelectNode(*selectNode)
		}))
		return
	}

	cfg, err := loadConfig(*configPath)
	exitOnError(err)

	var filePath string
	if args := flag.Args(); len(args) > 0 {
		filePath = args[0]
	}

	if *debug {
		treelist.SetLogOutput(logFile)
	}

	application, err := app.NewApp(filePath, cfg)
	exitOnError(err)
	application.SetDebugMode(*debug)

	if !*noSocket {
		if err := application.EnableSocket(); err != nil {
			log.Printf("Failed to start socket server: %v", err)
		}
	}
	if err := application.EnableWatch(); err != nil {
		log.Printf("Failed to watch %s: %v", filePath, err)
	}
	if err := application.EnableBackups(); err != nil {
		log.Printf("Backups disabled: %v", err)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// sendCommand sends one command to a running treelist instance
func sendCommand(send func(*socket.Client) (*socket.Response, error)) error {
	socketPath, pid, err := socket.FindRunningInstance()
	if err != nil {
		return fmt.Errorf("no running treelist instance found: %w", err)
	}
	log.Printf("Found running instance at PID %d: %s", pid, socketPath)

	client, err := socket.NewClient(socketPath)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	response, err := send(client)
	if err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}
	if !response.Success {
		return fmt.Errorf("server error: %s", response.Message)
	}
	return nil
}
