package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ncruces/go-strftime"

	"github.com/pstuifzand/tui-treelist/internal/config"
	"github.com/pstuifzand/tui-treelist/internal/model"
	"github.com/pstuifzand/tui-treelist/internal/treelist"
	"github.com/pstuifzand/tui-treelist/internal/ui"
)

const defaultDateFormat = "%Y-%m-%d"

// fieldContent reads its value from the item every time it is measured or
// drawn, so edits to the item show up without rebuilding the cell.
type fieldContent struct {
	item   *model.Item
	field  string
	format string
	style  *tcell.Style
}

func (c fieldContent) String() string {
	return fieldValue(c.item, c.field, c.format)
}

func (c fieldContent) Size() ui.Size {
	return ui.Text(c.String()).Size()
}

func (c fieldContent) Draw(s ui.Surface, r ui.Rect, style tcell.Style) {
	if c.style != nil {
		ui.StyledText{Text: c.String(), Style: *c.style}.Draw(s, r, style)
		return
	}
	ui.Text(c.String()).Draw(s, r, style)
}

func fieldValue(item *model.Item, field, format string) string {
	if item == nil {
		return ""
	}
	switch field {
	case "text":
		return item.Text
	case "id":
		return item.ID
	case "tags":
		var b strings.Builder
		for i, tag := range item.Tags() {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("#" + tag)
		}
		return b.String()
	case "notes":
		if item.Metadata == nil {
			return ""
		}
		return firstLine(item.Metadata.Notes)
	case "created":
		if item.Metadata == nil {
			return ""
		}
		return formatTime(item.Metadata.Created, format)
	case "modified":
		if item.Metadata == nil {
			return ""
		}
		return formatTime(item.Metadata.Modified, format)
	}
	if name, ok := strings.CutPrefix(field, "attr:"); ok {
		return item.Attribute(name)
	}
	return ""
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func formatTime(t time.Time, format string) string {
	if t.IsZero() {
		return ""
	}
	return strftime.Format(format, t)
}

func validField(field string) bool {
	switch field {
	case "text", "id", "tags", "notes", "created", "modified":
		return true
	}
	name, ok := strings.CutPrefix(field, "attr:")
	return ok && name != ""
}

// buildColumns turns the configured columns into tree list columns. tagStyle
// colors the tags column, nil draws it like every other cell.
func buildColumns(cols []config.ColumnConfig, dateFormat string, tagStyle *tcell.Style) ([]treelist.Column[*model.Item], error) {
	if dateFormat == "" {
		dateFormat = defaultDateFormat
	}
	columns := make([]treelist.Column[*model.Item], 0, len(cols))
	for i, cc := range cols {
		if !validField(cc.Field) {
			return nil, fmt.Errorf("column %d: unknown field %q", i+1, cc.Field)
		}
		title := cc.Title
		if title == "" {
			title = cc.Field
		}
		field := cc.Field
		var style *tcell.Style
		if field == "tags" {
			style = tagStyle
		}
		columns = append(columns, treelist.Column[*model.Item]{
			Header:   ui.Text(title),
			Width:    cc.Width,
			MinWidth: cc.MinWidth,
			Cell: func(item *model.Item) ui.Content {
				return fieldContent{item: item, field: field, format: dateFormat, style: style}
			},
		})
	}
	return columns, nil
}
