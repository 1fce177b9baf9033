package service

import (
	"bytes"
	"encoding/json"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ngomna/cms/internal/db"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderContent converts a content block body to HTML that is safe to
// serve, according to the block's declared format. Plain text passes
// through untouched.
func renderContent(contentType, body string) string {
	switch contentType {
	case db.ContentTypeMarkdown:
		var buf bytes.Buffer
		if err := markdownEngine.Convert([]byte(body), &buf); err != nil {
			return sanitizer.Sanitize(body)
		}
		return sanitizer.Sanitize(buf.String())
	case db.ContentTypeHTML:
		return sanitizer.Sanitize(body)
	default:
		return body
	}
}

// validatedJSON returns raw when it holds a well-formed JSON object or
// array and nil otherwise, so malformed payloads are never served.
func validatedJSON(raw []byte) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	switch value.(type) {
	case map[string]interface{}, []interface{}:
		return json.RawMessage(raw)
	}
	return nil
}

// requireJSONObject rejects custom payloads that are not JSON objects.
// Free-form section and content data is stored as a tagged structure,
// never an opaque scalar.
func requireJSONObject(field string, raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	var value map[string]interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return validationError(field, "must be a JSON object")
	}
	return nil
}
