package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const appName = "tui-treelist"

// ColumnConfig describes one column of the list
type ColumnConfig struct {
	Title    string `toml:"title"`
	Field    string `toml:"field"`
	Width    int    `toml:"width,omitempty"`
	MinWidth int    `toml:"min_width,omitempty"`
}

// Config holds application configuration
type Config struct {
	Theme            string            `toml:"theme"`
	ChildrenProperty string            `toml:"children_property"`
	RowStorage       string            `toml:"row_storage"`
	MinColumnWidth   int               `toml:"min_column_width"`
	ResizeMargin     int               `toml:"resize_margin"`
	DateFormat       string            `toml:"date_format"`
	Columns          []ColumnConfig    `toml:"columns"`
	Settings         map[string]string `toml:"settings"`

	// Session settings (not persisted to TOML, overrides persisted settings)
	sessionSettings map[string]string
	path            string
}

// DefaultColumns are used when the config has no [[columns]]
func DefaultColumns() []ColumnConfig {
	return []ColumnConfig{
		{Title: "Text", Field: "text"},
		{Title: "Tags", Field: "tags"},
		{Title: "Modified", Field: "modified", Width: 12},
	}
}

// Load loads the config file from the standard location
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil // Return default if can't find config path
	}

	return LoadFromFile(configPath)
}

// LoadFromFile loads config from a specific file
func LoadFromFile(filePath string) (*Config, error) {
	// If file doesn't exist, return default config
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		cfg := defaultConfig()
		cfg.path = filePath
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.applyDefaults()
	config.path = filePath

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = "tokyo-night"
	}
	if c.ChildrenProperty == "" {
		c.ChildrenProperty = "children"
	}
	if c.RowStorage == "" {
		c.RowStorage = "flat"
	}
	if c.MinColumnWidth <= 0 {
		c.MinColumnWidth = 4
	}
	if c.ResizeMargin <= 0 {
		c.ResizeMargin = 1
	}
	if c.DateFormat == "" {
		c.DateFormat = "%Y-%m-%d"
	}
	if len(c.Columns) == 0 {
		c.Columns = DefaultColumns()
	}
	if c.Settings == nil {
		c.Settings = make(map[string]string)
	}
	if c.sessionSettings == nil {
		c.sessionSettings = make(map[string]string)
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return defaultConfig()
}

// GetConfigDir returns the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Set sets a session configuration value
func (c *Config) Set(key, value string) {
	if c.sessionSettings == nil {
		c.sessionSettings = make(map[string]string)
	}
	c.sessionSettings[key] = value
}

// Get retrieves a configuration value, checking session settings first (which override persisted settings)
// Returns empty string if not found in either source
func (c *Config) Get(key string) string {
	if val, ok := c.sessionSettings[key]; ok {
		return val
	}
	return c.Settings[key]
}

// GetAll returns all configuration values (both persisted and session)
// Session settings override persisted settings with the same key
func (c *Config) GetAll() map[string]string {
	result := make(map[string]string, len(c.Settings)+len(c.sessionSettings))
	maps.Copy(result, c.Settings)
	maps.Copy(result, c.sessionSettings)
	return result
}

// Save persists the configuration to the file it was loaded from, or the
// standard location. Session settings are not saved.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
