package collector

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"rfetch/internal/model"
)

func (c *Collector) Locale() (model.LocaleInfo, bool) {
	locale := c.getenv("LANG")
	if locale == "" {
		c.absent("locale", nil, "reason", "LANG is not set")
		return model.LocaleInfo{}, false
	}

	name, err := languageName(locale)
	if err != nil {
		c.absent("locale", err, "locale", locale)
		return model.LocaleInfo{}, false
	}
	return model.LocaleInfo{Locale: locale, Language: name}, true
}

// languageName maps a POSIX locale such as "en_US.UTF-8" to the English name
// of its language.
func languageName(locale string) (string, error) {
	code := locale
	if i := strings.IndexAny(code, "_.@"); i >= 0 {
		code = code[:i]
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", err
	}

	name := display.English.Languages().Name(tag)
	if name == "" {
		return "", fmt.Errorf("no name for language %q", code)
	}
	return name, nil
}
