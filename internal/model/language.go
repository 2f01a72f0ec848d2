package model

import "strings"

// LanguageOption describes one selectable transcription language.
type LanguageOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// LanguageOptions maps selection keys to the supported transcription languages.
var LanguageOptions = map[string]LanguageOption{
	"US": {Code: "en", Label: "English (US)", Emoji: "🇺🇸"},
	"PL": {Code: "pl", Label: "Polski", Emoji: "🇵🇱"},
	"UA": {Code: "uk", Label: "Українська", Emoji: "🇺🇦"},
}

// LanguageKeyOrder fixes the display order of the language picker.
var LanguageKeyOrder = []string{"US", "PL", "UA"}

// FallbackLanguageKey is used when an account has no usable language preference.
const FallbackLanguageKey = "US"

// LanguageKeyForCode resolves a language code ("pl") to its selection key ("PL").
func LanguageKeyForCode(code string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(code))
	for key, opt := range LanguageOptions {
		if opt.Code == lower {
			return key, true
		}
	}
	return "", false
}

// DeriveDefaultLanguageKey resolves the default transcription language key for
// an account. The preference may hold either a key ("PL") or a code ("pl").
func DeriveDefaultLanguageKey(preferred string) string {
	preferred = strings.TrimSpace(preferred)
	if preferred == "" {
		return FallbackLanguageKey
	}

	upper := strings.ToUpper(preferred)
	if _, ok := LanguageOptions[upper]; ok {
		return upper
	}
	if key, ok := LanguageKeyForCode(preferred); ok {
		return key
	}

	return FallbackLanguageKey
}
