package locale

import "strings"

const (
	LanguageEnglish = "en"
	LanguageFrench  = "fr"
)

// NormalizeLanguage maps a raw language hint to a supported language,
// returning "" when the hint matches neither.
func NormalizeLanguage(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "fr") {
		return LanguageFrench
	}
	if strings.HasPrefix(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

// LanguageFromAcceptLanguage picks the first supported tag out of an
// Accept-Language header. Quality weights are ignored; the earlier tag
// wins.
func LanguageFromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(part)
		if i := strings.IndexByte(tag, ';'); i >= 0 {
			tag = strings.TrimSpace(tag[:i])
		}
		if lang := matchLanguageTag(tag); lang != "" {
			return lang
		}
	}
	return ""
}

// matchLanguageTag maps one language-range tag to a supported
// language. Only exact matches and region subtags count; a tag like
// "frm" is not French.
func matchLanguageTag(tag string) string {
	tag = strings.ToLower(tag)
	switch {
	case tag == LanguageFrench || strings.HasPrefix(tag, "fr-"):
		return LanguageFrench
	case tag == LanguageEnglish || strings.HasPrefix(tag, "en-"):
		return LanguageEnglish
	}
	return ""
}
