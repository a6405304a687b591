// Package embed holds the value model of a rich message embed.
//
// Every attribute of an Embed is independently optional. Values are built
// through the fluent builders in this package (or decoded from a JSON/YAML
// document) and expose read-only accessors; nothing mutates an Embed after
// it has been built. Size limits are not checked here: an Embed may carry a
// description or field list the downstream API would reject, and only the
// converter package refuses such values.
package embed

import "time"

// Embed represents a rich embed before conversion.
type Embed struct {
	title        *Title
	description  *string
	timestamp    *time.Time
	color        *uint32
	footer       *Footer
	imageURL     *string
	thumbnailURL *string
	author       *Author
	fields       []Field // nil when absent
}

// Title returns the embed title, if any.
func (e Embed) Title() (Title, bool) {
	if e.title == nil {
		return Title{}, false
	}
	return *e.title, true
}

// Description returns the embed description, if any.
func (e Embed) Description() (string, bool) {
	return deref(e.description)
}

// Timestamp returns the embed timestamp, if any.
func (e Embed) Timestamp() (time.Time, bool) {
	if e.timestamp == nil {
		return time.Time{}, false
	}
	return *e.timestamp, true
}

// Color returns the packed 0xRRGGBB color, if any.
func (e Embed) Color() (uint32, bool) {
	if e.color == nil {
		return 0, false
	}
	return *e.color, true
}

// Footer returns the embed footer, if any.
func (e Embed) Footer() (Footer, bool) {
	if e.footer == nil {
		return Footer{}, false
	}
	return *e.footer, true
}

// ImageURL returns the image URL, if any.
func (e Embed) ImageURL() (string, bool) {
	return deref(e.imageURL)
}

// ThumbnailURL returns the thumbnail URL, if any.
func (e Embed) ThumbnailURL() (string, bool) {
	return deref(e.thumbnailURL)
}

// Author returns the embed author, if any.
func (e Embed) Author() (Author, bool) {
	if e.author == nil {
		return Author{}, false
	}
	return *e.author, true
}

// Fields returns a copy of the field list in rendering order. The result is
// nil when the embed carries no field list, and non-nil (possibly empty)
// otherwise.
func (e Embed) Fields() []Field {
	return cloneFields(e.fields)
}

// HasFields reports whether a field list is present.
func (e Embed) HasFields() bool {
	return e.fields != nil
}

// FieldCount returns the number of fields without copying them.
func (e Embed) FieldCount() int {
	return len(e.fields)
}

// Clone returns a deep copy of the embed. The copy shares no memory with e.
func (e Embed) Clone() Embed {
	c := Embed{
		description:  clonePtr(e.description),
		timestamp:    clonePtr(e.timestamp),
		color:        clonePtr(e.color),
		imageURL:     clonePtr(e.imageURL),
		thumbnailURL: clonePtr(e.thumbnailURL),
		fields:       cloneFields(e.fields),
	}
	if e.title != nil {
		t := e.title.clone()
		c.title = &t
	}
	if e.footer != nil {
		f := e.footer.clone()
		c.footer = &f
	}
	if e.author != nil {
		a := e.author.clone()
		c.author = &a
	}
	return c
}

func deref(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}
