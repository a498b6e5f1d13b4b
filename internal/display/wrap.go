package display

import (
	"unicode"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const DefaultWidth = 80

// Wrap fits text to DefaultWidth columns.
func Wrap(text string) string {
	return WrapWidth(text, DefaultWidth)
}

// WrapWidth breaks text on word boundaries at width columns and hard-wraps any word that is
// still too long. ANSI escape sequences do not count toward the width. A width below one
// selects DefaultWidth.
func WrapWidth(text string, width int) string {
	if width < 1 {
		width = DefaultWidth
	}
	return wrap.String(wordwrap.String(text, width), width)
}

// Capitalize uppercases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
