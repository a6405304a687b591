package embed

import "time"

// Builder helps in constructing Embed values. Every setter is optional and
// attributes that are never set stay absent in the built Embed.
type Builder struct {
	embed Embed
}

// NewBuilder creates a new embed builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Title sets the embed title
func (b *Builder) Title(title Title) *Builder {
	t := title.clone()
	b.embed.title = &t
	return b
}

// Description sets the embed description
func (b *Builder) Description(description string) *Builder {
	b.embed.description = &description
	return b
}

// Timestamp sets the embed timestamp
func (b *Builder) Timestamp(timestamp time.Time) *Builder {
	b.embed.timestamp = &timestamp
	return b
}

// Color sets the embed color as a packed 0xRRGGBB value
func (b *Builder) Color(color uint32) *Builder {
	b.embed.color = &color
	return b
}

// Footer sets the whole embed footer
func (b *Builder) Footer(footer Footer) *Builder {
	f := footer.clone()
	b.embed.footer = &f
	return b
}

// FooterText sets the footer text, keeping any footer icon already set
func (b *Builder) FooterText(text string) *Builder {
	b.ensureFooter().text = &text
	return b
}

// FooterIconURL sets the footer icon, keeping any footer text already set
func (b *Builder) FooterIconURL(iconURL string) *Builder {
	b.ensureFooter().iconURL = &iconURL
	return b
}

// ImageURL sets the embed image
func (b *Builder) ImageURL(url string) *Builder {
	b.embed.imageURL = &url
	return b
}

// ThumbnailURL sets the embed thumbnail
func (b *Builder) ThumbnailURL(url string) *Builder {
	b.embed.thumbnailURL = &url
	return b
}

// Author sets the whole embed author
func (b *Builder) Author(author Author) *Builder {
	a := author.clone()
	b.embed.author = &a
	return b
}

// AuthorName sets the author name
func (b *Builder) AuthorName(name string) *Builder {
	b.ensureAuthor().name = &name
	return b
}

// AuthorURL sets the author link
func (b *Builder) AuthorURL(url string) *Builder {
	b.ensureAuthor().url = &url
	return b
}

// AuthorIconURL sets the author icon
func (b *Builder) AuthorIconURL(iconURL string) *Builder {
	b.ensureAuthor().iconURL = &iconURL
	return b
}

// Fields replaces the field list. Passing a nil slice marks the list as
// present but empty.
func (b *Builder) Fields(fields []Field) *Builder {
	b.embed.fields = make([]Field, len(fields))
	copy(b.embed.fields, fields)
	return b
}

// AddField appends a field to the embed
func (b *Builder) AddField(field Field) *Builder {
	b.embed.fields = append(b.embed.fields, field)
	return b
}

// Build returns the embed. It never fails and never validates: limits are
// enforced by the converter. The result does not alias the builder, so the
// builder may keep being used.
func (b *Builder) Build() Embed {
	return b.embed.Clone()
}

func (b *Builder) ensureFooter() *Footer {
	if b.embed.footer == nil {
		b.embed.footer = &Footer{}
	}
	return b.embed.footer
}

func (b *Builder) ensureAuthor() *Author {
	if b.embed.author == nil {
		b.embed.author = &Author{}
	}
	return b.embed.author
}
