package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ngomna/cms/internal/locale"
)

// requestLanguage decides the response language for a request: the
// lang query parameter wins, then the Accept-Language header, then
// English.
func requestLanguage(c *gin.Context) string {
	if lang := locale.NormalizeLanguage(c.Query("lang")); lang != "" {
		return lang
	}
	if lang := locale.LanguageFromAcceptLanguage(c.GetHeader("Accept-Language")); lang != "" {
		return lang
	}
	return locale.LanguageEnglish
}
