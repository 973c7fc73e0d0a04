package database

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// markup removes every tag and keeps the text content, including the text of
// script and style elements.
var markup = bluemonday.StrictPolicy().AllowElementsContent(
	"frame", "frameset", "iframe", "noembed", "noframes", "noscript",
	"nostyle", "object", "script", "style", "title",
)

// ampersands protects entities already present in the input. The policy
// decodes entities in the text it keeps and encodes them again on output.
var ampersands = strings.NewReplacer("&", "&amp;")

// stripTags removes anything resembling markup. Entities in the input are
// returned as written.
func stripTags(value string) string {
	return html.UnescapeString(markup.Sanitize(ampersands.Replace(value)))
}
