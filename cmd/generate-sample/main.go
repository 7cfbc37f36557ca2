package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pstuifzand/tui-treelist/internal/model"
	"github.com/pstuifzand/tui-treelist/internal/storage"
)

func main() {
	numNodes := flag.Int("nodes", 1000, "Number of nodes to generate")
	output := flag.String("output", "sample.json", "Output file path (.json, .yaml or .yml)")
	depth := flag.Int("depth", 3, "Maximum nesting depth")
	flag.Parse()

	if *numNodes < 1 {
		fmt.Fprintf(os.Stderr, "nodes must be at least 1\n")
		os.Exit(1)
	}

	outline := generateOutline(*numNodes, *depth)

	if err := storage.NewStore(*output).Save(outline); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated outline with %d nodes\n", len(outline.GetAllItems()))
	fmt.Printf("Saved to: %s (%s)\n", *output, storage.FormatFor(*output))
	if info, err := os.Stat(*output); err == nil {
		fmt.Printf("File size: %.2f MB\n", float64(info.Size())/(1024*1024))
	}
}

func generateOutline(totalNodes int, maxDepth int) *model.Outline {
	outline := model.NewOutline()

	remaining := totalNodes
	for remaining > 0 {
		if item := generateItemRecursive(&remaining, 0, maxDepth); item != nil {
			outline.Add(item)
		}
	}
	return outline
}

func generateItemRecursive(remaining *int, currentDepth int, maxDepth int) *model.Item {
	if *remaining <= 0 {
		return nil
	}

	index := *remaining
	item := model.NewItem(generateUniqueText(index))
	item.Metadata.Tags = []string{tags[index%len(tags)]}
	item.Metadata.Attributes["status"] = statuses[index%len(statuses)]
	*remaining--

	// Add children if we haven't reached max depth and still have nodes left
	if currentDepth < maxDepth && *remaining > 0 {
		numChildren := getChildCount(*remaining, maxDepth-currentDepth)
		for i := 0; i < numChildren && *remaining > 0; i++ {
			if child := generateItemRecursive(remaining, currentDepth+1, maxDepth); child != nil {
				item.AddChild(child)
			}
		}
	}

	return item
}

func getChildCount(remaining int, depthLeft int) int {
	if depthLeft == 1 {
		// Leaf level: create fewer children
		if remaining > 10 {
			return 5
		}
		return remaining / 2
	}
	if remaining > 50 {
		return 3
	}
	return 2
}

var (
	tags     = []string{"work", "home", "later", "urgent"}
	statuses = []string{"todo", "doing", "done"}
)

func generateUniqueText(index int) string {
	categories := []string{
		"Task", "Note", "Idea", "Bug", "Feature", "Enhancement",
		"Documentation", "Refactor", "Test", "Optimization",
		"Research", "Design", "Implementation", "Review",
	}

	category := categories[index%len(categories)]
	return fmt.Sprintf("%s #%d - %s", category, index, generateDescription(index))
}

func generateDescription(index int) string {
	descriptions := []string{
		"Core functionality",
		"User interface",
		"Performance improvement",
		"Bug fix",
		"New capability",
		"API integration",
		"Data validation",
		"Error handling",
		"Caching layer",
		"Database schema",
		"Authentication",
		"Configuration",
		"Logging system",
		"Monitoring",
		"Security audit",
	}

	return descriptions[index%len(descriptions)]
}
