package locale

import "strings"

// Resolve applies the localized triple pattern {field, fieldEn, fieldFr}:
// the override for the requested language wins when non-empty, otherwise
// the authored default is served. Unknown languages fall back to the
// default. The result is never more than a plain string; callers get ""
// when every variant is empty.
func Resolve(language, def, english, french string) string {
	switch NormalizeLanguage(language) {
	case LanguageFrench:
		if strings.TrimSpace(french) != "" {
			return french
		}
	case LanguageEnglish:
		if strings.TrimSpace(english) != "" {
			return english
		}
	}
	return def
}
