// Package converter turns embed values into the discordgo embed model,
// refusing embeds that exceed the limits of the downstream API.
package converter

import (
	"time"

	"github.com/aleister1102/embedkit/internal/embed"
	"github.com/bwmarrin/discordgo"
)

// Convert maps e onto a *discordgo.MessageEmbed.
//
// Absent attributes are skipped. A description of MaxDescriptionLength bytes
// or more fails with KindDescriptionTooLong and a field list longer than
// MaxFieldCount fails with KindTooManyFields; the description is checked
// first. On failure no embed is returned.
func Convert(e embed.Embed) (*discordgo.MessageEmbed, error) {
	out := &discordgo.MessageEmbed{Type: discordgo.EmbedTypeRich}

	if title, ok := e.Title(); ok {
		if text, ok := title.Text(); ok {
			out.Title = text
		}
		if url, ok := title.URL(); ok {
			out.URL = url
		}
	}

	if description, ok := e.Description(); ok {
		if len(description) >= MaxDescriptionLength {
			return nil, &ConvertError{Kind: KindDescriptionTooLong}
		}
		out.Description = description
	}

	if ts, ok := e.Timestamp(); ok {
		out.Timestamp = ts.Format(time.RFC3339Nano)
	}

	if color, ok := e.Color(); ok {
		out.Color = int(color)
	}

	if footer, ok := e.Footer(); ok {
		if text, ok := footer.Text(); ok {
			out.Footer = &discordgo.MessageEmbedFooter{Text: text}
			if iconURL, ok := footer.IconURL(); ok {
				out.Footer.IconURL = iconURL
			}
		}
	}

	if imageURL, ok := e.ImageURL(); ok {
		out.Image = &discordgo.MessageEmbedImage{URL: imageURL}
	}

	if thumbnailURL, ok := e.ThumbnailURL(); ok {
		out.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: thumbnailURL}
	}

	if author, ok := e.Author(); ok {
		if name, ok := author.Name(); ok {
			out.Author = &discordgo.MessageEmbedAuthor{Name: name}
			if url, ok := author.URL(); ok {
				out.Author.URL = url
			}
			if iconURL, ok := author.IconURL(); ok {
				out.Author.IconURL = iconURL
			}
		}
	}

	if e.HasFields() {
		if e.FieldCount() > MaxFieldCount {
			return nil, &ConvertError{Kind: KindTooManyFields}
		}
		fields := e.Fields()
		out.Fields = make([]*discordgo.MessageEmbedField, 0, len(fields))
		for _, f := range fields {
			out.Fields = append(out.Fields, &discordgo.MessageEmbedField{
				Name:   f.Name(),
				Value:  f.Value(),
				Inline: f.Inline(),
			})
		}
	}

	return out, nil
}

// Check reports the error Convert would return for e without building the
// downstream embed.
func Check(e embed.Embed) error {
	if description, ok := e.Description(); ok && len(description) >= MaxDescriptionLength {
		return &ConvertError{Kind: KindDescriptionTooLong}
	}
	if e.HasFields() && e.FieldCount() > MaxFieldCount {
		return &ConvertError{Kind: KindTooManyFields}
	}
	return nil
}

// ConvertAll converts every embed in order and stops at the first failure,
// returning the index of the embed that failed.
func ConvertAll(embeds []embed.Embed) ([]*discordgo.MessageEmbed, int, error) {
	out := make([]*discordgo.MessageEmbed, 0, len(embeds))
	for i, e := range embeds {
		converted, err := Convert(e)
		if err != nil {
			return nil, i, err
		}
		out = append(out, converted)
	}
	return out, -1, nil
}
