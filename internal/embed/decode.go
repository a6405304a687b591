package embed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of an embed document.
type Format int

const (
	// FormatJSON decodes documents with encoding/json.
	FormatJSON Format = iota
	// FormatYAML decodes documents with yaml.v3.
	FormatYAML
)

// FormatFromPath picks the document format from a file extension. YAML is
// used for .yaml and .yml files, JSON for everything else.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// record mirrors the attribute names of the data model. The flat footer_* and
// author_* keys are accepted as an alternative to the nested objects.
type record struct {
	Title         *titleRecord   `json:"title,omitempty" yaml:"title,omitempty"`
	Description   *string        `json:"description,omitempty" yaml:"description,omitempty"`
	Timestamp     *string        `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Color         *uint32        `json:"color,omitempty" yaml:"color,omitempty"`
	Footer        *footerRecord  `json:"footer,omitempty" yaml:"footer,omitempty"`
	FooterText    *string        `json:"footer_text,omitempty" yaml:"footer_text,omitempty"`
	FooterIconURL *string        `json:"footer_icon_url,omitempty" yaml:"footer_icon_url,omitempty"`
	ImageURL      *string        `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	ThumbnailURL  *string        `json:"thumbnail_url,omitempty" yaml:"thumbnail_url,omitempty"`
	Author        *authorRecord  `json:"author,omitempty" yaml:"author,omitempty"`
	AuthorName    *string        `json:"author_name,omitempty" yaml:"author_name,omitempty"`
	AuthorURL     *string        `json:"author_url,omitempty" yaml:"author_url,omitempty"`
	AuthorIconURL *string        `json:"author_icon_url,omitempty" yaml:"author_icon_url,omitempty"`
	Fields        *[]fieldRecord `json:"fields,omitempty" yaml:"fields,omitempty"`
}

type titleRecord struct {
	Text *string `json:"text,omitempty" yaml:"text,omitempty" validate:"required"`
	URL  *string `json:"url,omitempty" yaml:"url,omitempty" validate:"required"`
}

type footerRecord struct {
	Text    *string `json:"text,omitempty" yaml:"text,omitempty"`
	IconURL *string `json:"icon_url,omitempty" yaml:"icon_url,omitempty"`
}

type authorRecord struct {
	Name    *string `json:"name,omitempty" yaml:"name,omitempty"`
	URL     *string `json:"url,omitempty" yaml:"url,omitempty"`
	IconURL *string `json:"icon_url,omitempty" yaml:"icon_url,omitempty"`
}

type fieldRecord struct {
	Name   string `json:"name" yaml:"name"`
	Value  string `json:"value" yaml:"value"`
	Inline bool   `json:"inline" yaml:"inline"`
}

// Decode parses an embed document. Omitted attributes stay absent. With the
// strict variant a title missing its text or url is rejected; the size limits
// are never checked here.
func Decode(data []byte, format Format, variant Variant) (Embed, error) {
	var rec record
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &rec)
	default:
		err = json.Unmarshal(data, &rec)
	}
	if err != nil {
		return Embed{}, fmt.Errorf("%w: %v", errorwrapper.ErrInvalidInput, err)
	}

	if variant == VariantStrict {
		if err := validateStrict(rec); err != nil {
			return Embed{}, err
		}
	}

	return rec.toEmbed()
}

// DecodeFile reads and decodes the embed document at path.
func DecodeFile(path string, variant Variant) (Embed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Embed{}, errorwrapper.WrapError(err, "failed to read embed file")
	}
	e, err := Decode(data, FormatFromPath(path), variant)
	if err != nil {
		return Embed{}, errorwrapper.WrapError(err, filepath.Base(path))
	}
	return e, nil
}

var strictValidator = validator.New()

func validateStrict(rec record) error {
	err := strictValidator.Struct(rec)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		field := "title." + strings.ToLower(errs[0].Field())
		return errorwrapper.NewValidationError(field, nil, "required when a title is present")
	}
	return errorwrapper.WrapError(err, "embed validation error")
}

func (rec record) toEmbed() (Embed, error) {
	b := NewBuilder()

	if rec.Title != nil {
		tb := NewTitleBuilder()
		if rec.Title.Text != nil {
			tb.Text(*rec.Title.Text)
		}
		if rec.Title.URL != nil {
			tb.URL(*rec.Title.URL)
		}
		b.Title(tb.Build())
	}
	if rec.Description != nil {
		b.Description(*rec.Description)
	}
	if rec.Timestamp != nil {
		ts, err := time.Parse(time.RFC3339, *rec.Timestamp)
		if err != nil {
			return Embed{}, errorwrapper.NewValidationError("timestamp", *rec.Timestamp, "must be an RFC 3339 timestamp")
		}
		b.Timestamp(ts)
	}
	if rec.Color != nil {
		b.Color(*rec.Color)
	}

	footerText, footerIcon := rec.FooterText, rec.FooterIconURL
	if rec.Footer != nil {
		footerText, footerIcon = rec.Footer.Text, rec.Footer.IconURL
	}
	if footerText != nil {
		b.FooterText(*footerText)
	}
	if footerIcon != nil {
		b.FooterIconURL(*footerIcon)
	}
	if rec.Footer != nil && footerText == nil && footerIcon == nil {
		b.Footer(Footer{})
	}

	if rec.ImageURL != nil {
		b.ImageURL(*rec.ImageURL)
	}
	if rec.ThumbnailURL != nil {
		b.ThumbnailURL(*rec.ThumbnailURL)
	}

	author := authorRecord{Name: rec.AuthorName, URL: rec.AuthorURL, IconURL: rec.AuthorIconURL}
	if rec.Author != nil {
		author = *rec.Author
		b.Author(Author{})
	}
	if author.Name != nil {
		b.AuthorName(*author.Name)
	}
	if author.URL != nil {
		b.AuthorURL(*author.URL)
	}
	if author.IconURL != nil {
		b.AuthorIconURL(*author.IconURL)
	}

	if rec.Fields != nil {
		fields := make([]Field, 0, len(*rec.Fields))
		for _, f := range *rec.Fields {
			fields = append(fields, NewField(f.Name, f.Value, f.Inline))
		}
		b.Fields(fields)
	}

	return b.Build(), nil
}
