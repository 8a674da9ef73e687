package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

type Language string

const (
	Vietnamese Language = "vi"
	Korean     Language = "ko"
)

// Supported lists the languages in toggle order.
var Supported = []Language{Vietnamese, Korean}

var matcher = language.NewMatcher([]language.Tag{
	language.Vietnamese,
	language.Korean,
})

func (l Language) Valid() bool {
	_, ok := tables[l]
	return ok
}

// Parse returns the language for a code such as "vi" or "ko-KR".
func Parse(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	lang := Language(code)
	return lang, lang.Valid()
}

// Match picks a supported language from an Accept-Language header value,
// returning fallback when nothing matches.
func Match(acceptLanguage string, fallback Language) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}

	return Supported[index]
}

// Other returns the language the toggle switches to.
func (l Language) Other() Language {
	if l == Korean {
		return Vietnamese
	}
	return Korean
}
