package discord

import (
	"testing"

	"github.com/aleister1102/embedkit/internal/converter"
	"github.com/aleister1102/embedkit/internal/embed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadBuilder_Build(t *testing.T) {
	e := embed.NewBuilder().Description("D").AddField(embed.NewField("n", "v", true)).Build()

	params, err := NewPayloadBuilder().
		WithContent("content").
		WithUsername("bot").
		WithAvatarURL("https://example.com/a.png").
		AddEmbed(e).
		Build()

	require.NoError(t, err)
	assert.Equal(t, "content", params.Content)
	assert.Equal(t, "bot", params.Username)
	assert.Equal(t, "https://example.com/a.png", params.AvatarURL)
	require.Len(t, params.Embeds, 1)
	assert.Equal(t, "D", params.Embeds[0].Description)
	require.NotNil(t, params.AllowedMentions)
	assert.Empty(t, params.AllowedMentions.Parse)
}

func TestPayloadBuilder_Empty(t *testing.T) {
	_, err := NewPayloadBuilder().WithUsername("bot").Build()
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestPayloadBuilder_TooManyEmbeds(t *testing.T) {
	b := NewPayloadBuilder()
	for i := 0; i <= MaxEmbedsPerMessage; i++ {
		b.AddEmbed(embed.NewBuilder().Build())
	}
	_, err := b.Build()
	assert.ErrorIs(t, err, ErrTooManyEmbeds)
}

func TestPayloadBuilder_ConversionError(t *testing.T) {
	fields := make([]embed.Field, converter.MaxFieldCount+1)
	_, err := NewPayloadBuilder().
		AddEmbed(embed.NewBuilder().Build()).
		AddEmbed(embed.NewBuilder().Fields(fields).Build()).
		Build()

	require.Error(t, err)
	assert.Equal(t, converter.KindTooManyFields, converter.KindOf(err))
	assert.Contains(t, err.Error(), "embed 1")
}
