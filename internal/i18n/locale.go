package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// localeVars lists the POSIX variables consulted for message language, in
// precedence order.
var localeVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// TagFromEnv resolves the message language from the process environment.
// getenv is usually os.Getenv; tests pass a map lookup.
func TagFromEnv(getenv func(string) string) language.Tag {
	if getenv == nil {
		return language.English
	}
	for _, name := range localeVars {
		value := strings.TrimSpace(getenv(name))
		if value == "" {
			continue
		}
		return ParseLocale(value)
	}
	return language.English
}

// ParseLocale converts a POSIX locale name such as "fi_FI.UTF-8@euro" into a
// BCP 47 tag. Unparseable values and the C/POSIX locales map to English.
func ParseLocale(value string) language.Tag {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	switch value {
	case "", "C", "POSIX":
		return language.English
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.English
	}
	return tag
}
