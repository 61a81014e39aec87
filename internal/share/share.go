package share

import (
	"net/url"
	"unicode/utf8"
)

const (
	// DefaultHashtag добавляется к тексту твита, если в конфигурации не задан свой.
	DefaultHashtag = "#Новости"

	// maxTweetLen — жёсткий лимит X на длину твита.
	maxTweetLen = 280
	// truncateTo — длина усечённого текста вместе с завершающим многоточием.
	truncateTo = 279

	intentBase = "https://twitter.com/intent/tweet?text="
)

// ComposeText собирает текст твита: усекает summary до 279 символов
// с многоточием на конце, добавляет хэштег и, если итоговая длина
// не превышает 280 символов, ссылку на новой строке.
func ComposeText(summary, link, hashtag string) string {
	if hashtag == "" {
		hashtag = DefaultHashtag
	}

	text := summary
	if runes := []rune(summary); len(runes) > truncateTo {
		text = string(runes[:truncateTo-1]) + "…"
	}
	text += "\n\n" + hashtag

	if link != "" && utf8.RuneCountInString(text)+1+utf8.RuneCountInString(link) <= maxTweetLen {
		text += "\n" + link
	}
	return text
}

// ComposeTweet возвращает intent-ссылку X с собранным текстом твита.
func ComposeTweet(summary, link, hashtag string) string {
	return intentBase + url.QueryEscape(ComposeText(summary, link, hashtag))
}
