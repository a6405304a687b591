package discord

import (
	"errors"
	"fmt"

	"github.com/aleister1102/embedkit/internal/converter"
	"github.com/aleister1102/embedkit/internal/embed"
	"github.com/bwmarrin/discordgo"
)

// MaxEmbedsPerMessage is the number of embeds Discord accepts in one message.
const MaxEmbedsPerMessage = 10

var (
	// ErrEmptyPayload is returned when a payload has neither content nor embeds.
	ErrEmptyPayload = errors.New("payload has no content and no embeds")
	// ErrTooManyEmbeds is returned when more than MaxEmbedsPerMessage embeds are added.
	ErrTooManyEmbeds = errors.New("payload exceeds the maximum of 10 embeds")
)

// PayloadBuilder helps in constructing webhook payloads.
type PayloadBuilder struct {
	params discordgo.WebhookParams
	embeds []embed.Embed
}

// NewPayloadBuilder creates a new instance of PayloadBuilder.
func NewPayloadBuilder() *PayloadBuilder {
	return &PayloadBuilder{}
}

// WithContent sets the plain text content of the message.
func (b *PayloadBuilder) WithContent(content string) *PayloadBuilder {
	b.params.Content = content
	return b
}

// WithUsername overrides the default webhook username.
func (b *PayloadBuilder) WithUsername(username string) *PayloadBuilder {
	b.params.Username = username
	return b
}

// WithAvatarURL overrides the default webhook avatar.
func (b *PayloadBuilder) WithAvatarURL(avatarURL string) *PayloadBuilder {
	b.params.AvatarURL = avatarURL
	return b
}

// WithMentionRoles restricts mentions to the given roles. Without it, the
// message mentions nobody.
func (b *PayloadBuilder) WithMentionRoles(roleIDs []string) *PayloadBuilder {
	b.params.AllowedMentions = &discordgo.MessageAllowedMentions{
		Parse: []discordgo.AllowedMentionType{},
		Roles: append([]string(nil), roleIDs...),
	}
	return b
}

// AddEmbed queues an embed; it is converted when Build is called.
func (b *PayloadBuilder) AddEmbed(e embed.Embed) *PayloadBuilder {
	b.embeds = append(b.embeds, e.Clone())
	return b
}

// Build converts the queued embeds and returns the payload. It fails when
// the payload is empty, carries too many embeds, or any embed is refused by
// the converter.
func (b *PayloadBuilder) Build() (*discordgo.WebhookParams, error) {
	if b.params.Content == "" && len(b.embeds) == 0 {
		return nil, ErrEmptyPayload
	}
	if len(b.embeds) > MaxEmbedsPerMessage {
		return nil, ErrTooManyEmbeds
	}

	converted, idx, err := converter.ConvertAll(b.embeds)
	if err != nil {
		return nil, fmt.Errorf("embed %d: %w", idx, err)
	}

	params := b.params
	if params.AllowedMentions == nil {
		params.AllowedMentions = &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}
	}
	if len(converted) > 0 {
		params.Embeds = converted
	}
	return &params, nil
}
