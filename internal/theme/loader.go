package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string `toml:"name"`
	Colors struct {
		Background      string `toml:"background"`
		HeaderText      string `toml:"header_text"`
		HeaderBg        string `toml:"header_bg"`
		RowText         string `toml:"row_text"`
		HoverBg         string `toml:"hover_bg"`
		SelectedText    string `toml:"selected_text"`
		SelectedBg      string `toml:"selected_bg"`
		Border          string `toml:"border"`
		Glyph           string `toml:"glyph"`
		DragGhost       string `toml:"drag_ghost"`
		ResizeIndicator string `toml:"resize_indicator"`
		StatusText      string `toml:"status_text"`
		StatusBg        string `toml:"status_bg"`
		PromptText      string `toml:"prompt_text"`
		Message         string `toml:"message"`
	} `toml:"colors"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	paths := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "tui-treelist", "themes"),
			filepath.Join(home, ".local", "share", "tui-treelist", "themes"),
		)
	}

	return paths
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme, with fallback to Tokyo Night for missing colors
func configToTheme(config ThemeConfig) *Theme {
	t := TokyoNight()
	c := config.Colors

	overrides := []struct {
		value string
		dst   *tcell.Color
	}{
		{c.Background, &t.Colors.Background},
		{c.HeaderText, &t.Colors.HeaderText},
		{c.HeaderBg, &t.Colors.HeaderBg},
		{c.RowText, &t.Colors.RowText},
		{c.HoverBg, &t.Colors.HoverBg},
		{c.SelectedText, &t.Colors.SelectedText},
		{c.SelectedBg, &t.Colors.SelectedBg},
		{c.Border, &t.Colors.Border},
		{c.Glyph, &t.Colors.Glyph},
		{c.DragGhost, &t.Colors.DragGhost},
		{c.ResizeIndicator, &t.Colors.ResizeIndicator},
		{c.StatusText, &t.Colors.StatusText},
		{c.StatusBg, &t.Colors.StatusBg},
		{c.PromptText, &t.Colors.PromptText},
		{c.Message, &t.Colors.Message},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.dst = ParseColorString(o.value)
		}
	}

	if config.Name != "" {
		t.Name = config.Name
	}

	return t
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	switch themeName {
	case "default":
		return Default()
	case "", "tokyo-night":
		return TokyoNight()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		return TokyoNight()
	}

	return theme
}
