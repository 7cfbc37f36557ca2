package storage

import (
	"time"

	"github.com/pstuifzand/tui-treelist/internal/model"
)

// outlineRecord is the on-disk shape of an outline
type outlineRecord struct {
	OriginalFilename string        `json:"original_filename,omitempty" yaml:"original_filename,omitempty"`
	Items            []*itemRecord `json:"items" yaml:"items"`
}

type itemRecord struct {
	ID       string          `json:"id" yaml:"id"`
	Text     string          `json:"text" yaml:"text"`
	Children []*itemRecord   `json:"children,omitempty" yaml:"children,omitempty"`
	Metadata *metadataRecord `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

type metadataRecord struct {
	Tags       []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	Notes      string            `json:"notes,omitempty" yaml:"notes,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Created    time.Time         `json:"created" yaml:"created"`
	Modified   time.Time         `json:"modified" yaml:"modified"`
}

func toRecord(o *model.Outline) *outlineRecord {
	rec := &outlineRecord{Items: []*itemRecord{}}
	for _, it := range o.Items.Items() {
		rec.Items = append(rec.Items, itemToRecord(it))
	}
	return rec
}

func itemToRecord(it *model.Item) *itemRecord {
	rec := &itemRecord{ID: it.ID, Text: it.Text}
	if m := it.Metadata; m != nil {
		rec.Metadata = &metadataRecord{
			Tags:       m.Tags,
			Notes:      m.Notes,
			Attributes: m.Attributes,
			Created:    m.Created,
			Modified:   m.Modified,
		}
	}
	if it.Children != nil {
		for _, c := range it.Children.Items() {
			rec.Children = append(rec.Children, itemToRecord(c))
		}
	}
	return rec
}

func fromRecord(rec *outlineRecord) *model.Outline {
	o := model.NewOutline()
	items := make([]*model.Item, 0, len(rec.Items))
	for _, r := range rec.Items {
		if r != nil {
			items = append(items, itemFromRecord(r, nil))
		}
	}
	o.Items.Reset(items)
	return o
}

// itemFromRecord builds the item with its parent pointers restored
func itemFromRecord(rec *itemRecord, parent *model.Item) *model.Item {
	it := model.NewItem(rec.Text)
	if rec.ID != "" {
		it.ID = rec.ID
	}
	it.Parent = parent
	if m := rec.Metadata; m != nil {
		it.Metadata.Tags = m.Tags
		it.Metadata.Notes = m.Notes
		if m.Attributes != nil {
			it.Metadata.Attributes = m.Attributes
		}
		it.Metadata.Created = m.Created
		it.Metadata.Modified = m.Modified
	}
	children := make([]*model.Item, 0, len(rec.Children))
	for _, c := range rec.Children {
		if c != nil {
			children = append(children, itemFromRecord(c, it))
		}
	}
	it.Children.Reset(children)
	return it
}
