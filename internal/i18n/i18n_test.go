package i18n

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input string
		want  language.Tag
	}{
		{"", language.English},
		{"C", language.English},
		{"POSIX", language.English},
		{"C.UTF-8", language.English},
		{"fi_FI.UTF-8", language.MustParse("fi-FI")},
		{"fi_FI@euro", language.MustParse("fi-FI")},
		{"en_GB", language.MustParse("en-GB")},
		{"not a locale!", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLocale(tt.input); got != tt.want {
				t.Errorf("ParseLocale(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTagFromEnvPrecedence(t *testing.T) {
	env := map[string]string{
		"LANG":        "en_US.UTF-8",
		"LC_MESSAGES": "fi_FI.UTF-8",
	}
	got := TagFromEnv(func(key string) string { return env[key] })
	if got != language.MustParse("fi-FI") {
		t.Fatalf("expected LC_MESSAGES to win over LANG, got %v", got)
	}

	env["LC_ALL"] = "C"
	if got := TagFromEnv(func(key string) string { return env[key] }); got != language.English {
		t.Fatalf("expected LC_ALL=C to force English, got %v", got)
	}

	if got := TagFromEnv(nil); got != language.English {
		t.Fatalf("expected English for nil getenv, got %v", got)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		input language.Tag
		want  language.Tag
	}{
		{language.MustParse("fi-FI"), language.Finnish},
		{language.Finnish, language.Finnish},
		{language.MustParse("en-US"), language.English},
		{language.German, language.English},
		{language.Und, language.English},
	}
	for _, tt := range tests {
		t.Run(tt.input.String(), func(t *testing.T) {
			if got := Match(tt.input); got != tt.want {
				t.Errorf("Match(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPrinterTranslatesFinnish(t *testing.T) {
	p := NewPrinter(language.MustParse("fi-FI"))
	got := p.Sprintf(MsgSubmissionURL, "https://example.test")
	if got != "Lähetysosoite: https://example.test\n" {
		t.Fatalf("unexpected finnish text: %q", got)
	}
}

func TestPrinterFallsBackToEnglishKey(t *testing.T) {
	p := NewPrinter(language.German)
	got := p.Sprintf(MsgUsage, "cdidc")
	if got != "Usage: cdidc [OPTIONS]\n" {
		t.Fatalf("unexpected fallback text: %q", got)
	}
}

func TestFinnishCatalogKeepsVerbs(t *testing.T) {
	for key, msg := range finnish {
		if strings.Count(key, "%s") != strings.Count(msg, "%s") {
			t.Errorf("verb mismatch for %q: %q", key, msg)
		}
		if strings.HasSuffix(key, "\n") != strings.HasSuffix(msg, "\n") {
			t.Errorf("newline mismatch for %q: %q", key, msg)
		}
	}
}
