package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  tcell.Color
	}{
		{"long hex", "#ff0000", tcell.NewRGBColor(255, 0, 0)},
		{"short hex", "#0f0", tcell.NewRGBColor(0, 255, 0)},
		{"rgb", "rgb(1, 2, 3)", tcell.NewRGBColor(1, 2, 3)},
		{"rgb out of range", "rgb(300, 2, 3)", tcell.ColorDefault},
		{"garbage", "blue-ish", tcell.ColorDefault},
		{"bad hex", "#12345", tcell.ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseColorString(tt.input))
		})
	}
}

func TestBlend(t *testing.T) {
	black := tcell.NewRGBColor(0, 0, 0)
	white := tcell.NewRGBColor(255, 255, 255)

	assert.Equal(t, black, Blend(black, white, 0))
	assert.Equal(t, white, Blend(black, white, 1))
	assert.Equal(t, tcell.ColorDefault, Blend(tcell.ColorDefault, white, 0.5))
}

func TestLoadThemeFromFileOverridesTokyoNight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.toml")
	data := "name = \"mine\"\n[colors]\nheader_text = \"#010203\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mine", th.Name)
	assert.Equal(t, tcell.NewRGBColor(1, 2, 3), th.Colors.HeaderText)
	assert.Equal(t, TokyoNight().Colors.RowText, th.Colors.RowText)
}

func TestLoadThemeOrDefault(t *testing.T) {
	assert.Equal(t, "default", LoadThemeOrDefault("default").Name)
	assert.Equal(t, "tokyo-night", LoadThemeOrDefault("does-not-exist").Name)
}
