package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/pstuifzand/tui-treelist/internal/model"
)

// Format is the encoding of an outline file
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFor picks the format from the file extension
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Store handles outline file persistence
type Store struct {
	FilePath string
}

// NewStore creates a new store for the given file path
func NewStore(filePath string) *Store {
	return &Store{
		FilePath: filePath,
	}
}

// Load loads an outline from the file
func (s *Store) Load() (*model.Outline, error) {
	data, err := os.ReadFile(s.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty outline if file doesn't exist
			return model.NewOutline(), nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Decode(data, FormatFor(s.FilePath))
}

// Save saves an outline to the file
func (s *Store) Save(outline *model.Outline) error {
	// Ensure directory exists
	dir := filepath.Dir(s.FilePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := Encode(outline, FormatFor(s.FilePath))
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.FilePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// FileExists checks if the outline file exists
func (s *Store) FileExists() bool {
	_, err := os.Stat(s.FilePath)
	return err == nil
}

// Decode parses an outline
func Decode(data []byte, format Format) (*model.Outline, error) {
	var rec outlineRecord
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}
	return fromRecord(&rec), nil
}

// Encode serializes an outline
func Encode(outline *model.Outline, format Format) ([]byte, error) {
	rec := toRecord(outline)
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return data, nil
	}
}
