package converter

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aleister1102/embedkit/internal/embed"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mockText  = "This is a test text."
	mockURL   = "https://example.com"
	mockColor = 0xff0000
)

func mockTimestamp(t *testing.T) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2024-01-01T00:00:00Z")
	require.NoError(t, err)
	return ts
}

func fieldsOf(n int) []embed.Field {
	fields := make([]embed.Field, n)
	for i := range fields {
		fields[i] = embed.NewField("n", "v", false)
	}
	return fields
}

func TestConvert_FullEmbed(t *testing.T) {
	ts := mockTimestamp(t)
	e := embed.NewBuilder().
		Title(embed.NewTitle(mockText, mockURL)).
		Description(mockText).
		Timestamp(ts).
		Color(mockColor).
		FooterText(mockText).
		FooterIconURL(mockURL).
		ImageURL(mockURL).
		ThumbnailURL(mockURL).
		AuthorName(mockText).
		AuthorURL(mockURL).
		AuthorIconURL(mockURL).
		Fields([]embed.Field{
			embed.NewFieldBuilder().Name(mockText).Value(mockText).Inline(true).Build(),
			embed.NewFieldBuilder().Name(mockText).Value(mockText).Build(),
		}).
		Build()

	expected := &discordgo.MessageEmbed{
		Type:        discordgo.EmbedTypeRich,
		Title:       mockText,
		URL:         mockURL,
		Description: mockText,
		Timestamp:   "2024-01-01T00:00:00Z",
		Color:       mockColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: mockText, IconURL: mockURL},
		Image:       &discordgo.MessageEmbedImage{URL: mockURL},
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: mockURL},
		Author:      &discordgo.MessageEmbedAuthor{Name: mockText, URL: mockURL, IconURL: mockURL},
		Fields: []*discordgo.MessageEmbedField{
			{Name: mockText, Value: mockText, Inline: true},
			{Name: mockText, Value: mockText, Inline: false},
		},
	}

	converted, err := Convert(e)
	require.NoError(t, err)
	assert.Equal(t, expected, converted)
}

func TestConvert_Scenario(t *testing.T) {
	e := embed.NewBuilder().
		Title(embed.NewTitle("T", "https://example.com")).
		Description("D").
		Color(0xff0000).
		FooterText("F").
		ImageURL("https://example.com/i.png").
		AuthorName("A").
		AddField(embed.NewField("n", "v", true)).
		Build()

	converted, err := Convert(e)
	require.NoError(t, err)

	assert.Equal(t, "T", converted.Title)
	assert.Equal(t, "https://example.com", converted.URL)
	assert.Equal(t, "D", converted.Description)
	assert.Equal(t, 0xff0000, converted.Color)
	require.NotNil(t, converted.Footer)
	assert.Equal(t, "F", converted.Footer.Text)
	assert.Empty(t, converted.Footer.IconURL)
	require.NotNil(t, converted.Image)
	assert.Equal(t, "https://example.com/i.png", converted.Image.URL)
	require.NotNil(t, converted.Author)
	assert.Equal(t, "A", converted.Author.Name)
	assert.Equal(t, []*discordgo.MessageEmbedField{{Name: "n", Value: "v", Inline: true}}, converted.Fields)
	assert.Nil(t, converted.Thumbnail)
	assert.Empty(t, converted.Timestamp)
}

func TestConvert_TimestampKeepsFractionalSeconds(t *testing.T) {
	ts, err := time.Parse(time.RFC3339, "2024-01-01T00:00:00.123Z")
	require.NoError(t, err)

	converted, err := Convert(embed.NewBuilder().Timestamp(ts).Build())
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:00.123Z", converted.Timestamp)

	converted, err = Convert(embed.NewBuilder().Timestamp(mockTimestamp(t)).Build())
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:00Z", converted.Timestamp)
}

func TestConvert_EmptyEmbed(t *testing.T) {
	converted, err := Convert(embed.NewBuilder().Build())
	require.NoError(t, err)

	assert.Equal(t, &discordgo.MessageEmbed{Type: discordgo.EmbedTypeRich}, converted)
}

func TestConvert_DescriptionLength(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"empty", 0, false},
		{"one below limit", MaxDescriptionLength - 1, false},
		{"at limit", MaxDescriptionLength, true},
		{"above limit", MaxDescriptionLength + 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := embed.NewBuilder().Description(strings.Repeat("a", tt.length)).Build()

			converted, err := Convert(e)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, converted)
				assert.True(t, errors.Is(err, ErrDescriptionTooLong))
				assert.Equal(t, KindDescriptionTooLong, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, converted.Description, tt.length)
		})
	}
}

func TestConvert_DescriptionLengthCountsBytes(t *testing.T) {
	// 1366 three-byte runes = 4098 bytes, well under 4096 runes.
	e := embed.NewBuilder().Description(strings.Repeat("あ", 1366)).Build()

	_, err := Convert(e)
	assert.ErrorIs(t, err, ErrDescriptionTooLong)
}

func TestConvert_FieldCount(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr bool
	}{
		{"empty list", 0, false},
		{"at limit", MaxFieldCount, false},
		{"one above limit", MaxFieldCount + 1, true},
		{"far above limit", 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := embed.NewBuilder().Fields(fieldsOf(tt.count)).Build()

			converted, err := Convert(e)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, converted)
				assert.ErrorIs(t, err, ErrTooManyFields)
				assert.Equal(t, KindTooManyFields, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, converted.Fields, tt.count)
			assert.NotNil(t, converted.Fields)
		})
	}
}

func TestConvert_DescriptionCheckedBeforeFields(t *testing.T) {
	e := embed.NewBuilder().
		Description(strings.Repeat("a", MaxDescriptionLength)).
		Fields(fieldsOf(MaxFieldCount + 1)).
		Build()

	_, err := Convert(e)
	assert.Equal(t, KindDescriptionTooLong, KindOf(err))
	assert.Equal(t, KindDescriptionTooLong, KindOf(Check(e)))
}

func TestConvert_PreservesFieldOrder(t *testing.T) {
	e := embed.NewBuilder().
		AddField(embed.NewField("a", "1", true)).
		AddField(embed.NewField("b", "2", false)).
		AddField(embed.NewField("a", "1", true)).
		Build()

	converted, err := Convert(e)
	require.NoError(t, err)

	assert.Equal(t, []*discordgo.MessageEmbedField{
		{Name: "a", Value: "1", Inline: true},
		{Name: "b", Value: "2", Inline: false},
		{Name: "a", Value: "1", Inline: true},
	}, converted.Fields)
}

func TestConvert_SkipsFooterAndAuthorWithoutText(t *testing.T) {
	e := embed.NewBuilder().
		FooterIconURL(mockURL).
		AuthorURL(mockURL).
		AuthorIconURL(mockURL).
		Build()

	converted, err := Convert(e)
	require.NoError(t, err)
	assert.Nil(t, converted.Footer)
	assert.Nil(t, converted.Author)
}

func TestConvert_RelaxedTitle(t *testing.T) {
	e := embed.NewBuilder().Title(embed.NewTitleBuilder().Text("only text").Build()).Build()

	converted, err := Convert(e)
	require.NoError(t, err)
	assert.Equal(t, "only text", converted.Title)
	assert.Empty(t, converted.URL)
}

func TestConvert_Idempotent(t *testing.T) {
	e := embed.NewBuilder().
		Title(embed.NewTitle(mockText, mockURL)).
		Timestamp(mockTimestamp(t)).
		AddField(embed.NewField("a", "1", true)).
		Build()

	first, err := Convert(e)
	require.NoError(t, err)
	second, err := Convert(e)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

func TestConvert_ConcurrentReaders(t *testing.T) {
	e := embed.NewBuilder().Description(mockText).Fields(fieldsOf(MaxFieldCount)).Build()
	expected, err := Convert(e)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*discordgo.MessageEmbed, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Convert(e)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, expected, r)
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(embed.NewBuilder().Build()))
	assert.NoError(t, Check(embed.NewBuilder().Fields(fieldsOf(MaxFieldCount)).Build()))
	assert.ErrorIs(t, Check(embed.NewBuilder().Fields(fieldsOf(MaxFieldCount+1)).Build()), ErrTooManyFields)
}

func TestConvertAll(t *testing.T) {
	ok := embed.NewBuilder().Description("ok").Build()
	bad := embed.NewBuilder().Fields(fieldsOf(MaxFieldCount + 1)).Build()

	converted, idx, err := ConvertAll([]embed.Embed{ok, ok})
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
	assert.Len(t, converted, 2)

	converted, idx, err = ConvertAll([]embed.Embed{ok, bad, ok})
	assert.ErrorIs(t, err, ErrTooManyFields)
	assert.Equal(t, 1, idx)
	assert.Nil(t, converted)
}

func TestConvertError_Message(t *testing.T) {
	err := &ConvertError{Kind: KindTooManyFields}
	assert.Equal(t, "the number of fields exceeds the maximum of 25", err.Error())
	assert.Equal(t, "TooManyFields", err.Kind.String())
	assert.Equal(t, Kind(0), KindOf(errors.New("other")))
}
