package utils

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML заменяет & < > " ' на ссылки-сущности за один проход.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

// SanitizeTerminal убирает ANSI-последовательности и управляющие символы,
// переводы строк превращает в пробелы.
func SanitizeTerminal(s string) string {
	stripped := ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, stripped)
}
