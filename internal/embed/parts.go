package embed

// Title is the embed title together with the link it points to.
//
// With the strict variant both parts are always present (see NewTitle). The
// relaxed variant builds titles through TitleBuilder, where either part may
// be omitted.
type Title struct {
	text *string
	url  *string
}

// NewTitle creates a title with both text and URL set.
func NewTitle(text, url string) Title {
	return Title{text: &text, url: &url}
}

// Text returns the title text, if any.
func (t Title) Text() (string, bool) { return deref(t.text) }

// URL returns the title link, if any.
func (t Title) URL() (string, bool) { return deref(t.url) }

func (t Title) clone() Title {
	return Title{text: clonePtr(t.text), url: clonePtr(t.url)}
}

// TitleBuilder builds a Title whose parts are optional.
type TitleBuilder struct {
	title Title
}

// NewTitleBuilder creates a builder for a title with optional parts.
//
// Builder.Title accepts such a title whatever variant is configured. The
// strict variant is enforced when decoding documents, so code that builds
// embeds directly in strict mode should use NewTitle.
func NewTitleBuilder() *TitleBuilder {
	return &TitleBuilder{}
}

// Text sets the title text
func (tb *TitleBuilder) Text(text string) *TitleBuilder {
	tb.title.text = &text
	return tb
}

// URL sets the title link
func (tb *TitleBuilder) URL(url string) *TitleBuilder {
	tb.title.url = &url
	return tb
}

// Build returns the title. It never fails.
func (tb *TitleBuilder) Build() Title {
	return tb.title.clone()
}

// Footer is the text shown at the bottom of an embed.
type Footer struct {
	text    *string
	iconURL *string
}

// Text returns the footer text, if any.
func (f Footer) Text() (string, bool) { return deref(f.text) }

// IconURL returns the footer icon URL, if any.
func (f Footer) IconURL() (string, bool) { return deref(f.iconURL) }

func (f Footer) clone() Footer {
	return Footer{text: clonePtr(f.text), iconURL: clonePtr(f.iconURL)}
}

// FooterBuilder builds a Footer.
type FooterBuilder struct {
	footer Footer
}

// NewFooterBuilder creates a footer builder
func NewFooterBuilder() *FooterBuilder {
	return &FooterBuilder{}
}

// Text sets the footer text
func (fb *FooterBuilder) Text(text string) *FooterBuilder {
	fb.footer.text = &text
	return fb
}

// IconURL sets the footer icon
func (fb *FooterBuilder) IconURL(iconURL string) *FooterBuilder {
	fb.footer.iconURL = &iconURL
	return fb
}

// Build returns the footer. It never fails.
func (fb *FooterBuilder) Build() Footer {
	return fb.footer.clone()
}

// Author identifies who the embed is attributed to.
type Author struct {
	name    *string
	url     *string
	iconURL *string
}

// Name returns the author name, if any.
func (a Author) Name() (string, bool) { return deref(a.name) }

// URL returns the author link, if any.
func (a Author) URL() (string, bool) { return deref(a.url) }

// IconURL returns the author icon URL, if any.
func (a Author) IconURL() (string, bool) { return deref(a.iconURL) }

func (a Author) clone() Author {
	return Author{name: clonePtr(a.name), url: clonePtr(a.url), iconURL: clonePtr(a.iconURL)}
}

// AuthorBuilder builds an Author.
type AuthorBuilder struct {
	author Author
}

// NewAuthorBuilder creates an author builder
func NewAuthorBuilder() *AuthorBuilder {
	return &AuthorBuilder{}
}

// Name sets the author name
func (ab *AuthorBuilder) Name(name string) *AuthorBuilder {
	ab.author.name = &name
	return ab
}

// URL sets the author link
func (ab *AuthorBuilder) URL(url string) *AuthorBuilder {
	ab.author.url = &url
	return ab
}

// IconURL sets the author icon
func (ab *AuthorBuilder) IconURL(iconURL string) *AuthorBuilder {
	ab.author.iconURL = &iconURL
	return ab
}

// Build returns the author. It never fails.
func (ab *AuthorBuilder) Build() Author {
	return ab.author.clone()
}

// Field is a single name/value entry of an embed.
type Field struct {
	name   string
	value  string
	inline bool
}

// NewField creates a field
func NewField(name, value string, inline bool) Field {
	return Field{name: name, value: value, inline: inline}
}

// Name returns the field name
func (f Field) Name() string { return f.name }

// Value returns the field value
func (f Field) Value() string { return f.value }

// Inline reports whether the field is rendered inline
func (f Field) Inline() bool { return f.inline }

// FieldBuilder builds a Field. Omitted attributes default to "", "" and false.
type FieldBuilder struct {
	field Field
}

// NewFieldBuilder creates a field builder
func NewFieldBuilder() *FieldBuilder {
	return &FieldBuilder{}
}

// Name sets the field name
func (fb *FieldBuilder) Name(name string) *FieldBuilder {
	fb.field.name = name
	return fb
}

// Value sets the field value
func (fb *FieldBuilder) Value(value string) *FieldBuilder {
	fb.field.value = value
	return fb
}

// Inline sets whether the field is displayed inline
func (fb *FieldBuilder) Inline(inline bool) *FieldBuilder {
	fb.field.inline = inline
	return fb
}

// Build returns the field
func (fb *FieldBuilder) Build() Field {
	return fb.field
}
