package service

import "strings"

var markdownEscaper = strings.NewReplacer(
	`_`, `\_`,
	`~`, `\~`,
	`*`, `\*`,
	`>`, `\>`,
	"`", "\\`",
	`|`, `\|`,
)

// EscapeMarkdown prefixes every markup-significant character with a backslash.
// Telegram's legacy Markdown only drops the backslash before _ * and `, so an
// escaped ~ > or | is shown with its backslash.
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}
