package share_test

import (
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"newsdesk/internal/share"

	"github.com/stretchr/testify/require"
)

func TestComposeTextTruncation(t *testing.T) {
	summary := strings.Repeat("x", 300)

	text := share.ComposeText(summary, "", "")

	base, suffix, found := strings.Cut(text, "\n\n")
	require.True(t, found)
	require.Equal(t, share.DefaultHashtag, suffix)
	require.Equal(t, 279, utf8.RuneCountInString(base))
	require.True(t, strings.HasSuffix(base, "…"))
	require.Equal(t, strings.Repeat("x", 278), strings.TrimSuffix(base, "…"))
}

func TestComposeTextShortSummaryUnchanged(t *testing.T) {
	text := share.ComposeText("Короткая сводка", "", "")
	require.Equal(t, "Короткая сводка\n\n"+share.DefaultHashtag, text)
}

func TestComposeTextURLAppendedWhenFits(t *testing.T) {
	link := "https://example.com/news/1"
	text := share.ComposeText("Сводка", link, "")
	require.True(t, strings.HasSuffix(text, "\n"+link))
}

func TestComposeTextURLOmittedOnOverflow(t *testing.T) {
	summary := strings.Repeat("x", 300)
	link := "https://example.com/news/1"

	withURL := share.ComposeText(summary, link, "")
	withoutURL := share.ComposeText(summary, "", "")

	// ссылка не поместилась — базовый текст не меняется
	require.Equal(t, withoutURL, withURL)
	require.NotContains(t, withURL, link)
}

func TestComposeTweetIntentURL(t *testing.T) {
	raw := share.ComposeTweet("Сводка дня", "https://example.com/n/1", "")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "twitter.com", parsed.Host)
	require.Equal(t, "/intent/tweet", parsed.Path)

	text := parsed.Query().Get("text")
	require.Contains(t, text, "Сводка дня")
	require.Contains(t, text, share.DefaultHashtag)
}

func TestComposeTextCustomHashtag(t *testing.T) {
	text := share.ComposeText("Сводка", "", "#Дайджест")
	require.True(t, strings.HasSuffix(text, "\n\n#Дайджест"))
}
