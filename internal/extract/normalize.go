package extract

import (
	"strings"
	"unicode/utf8"
)

// MinTextLength is the minimum number of characters a normalized resume must have.
const MinTextLength = 10

// Normalize collapses every whitespace run (newlines included) into a single
// space and trims the result. Text shorter than MinTextLength fails with
// ErrNoReadableText.
func Normalize(raw string) (string, error) {
	text := strings.Join(strings.Fields(strings.ToValidUTF8(raw, "")), " ")
	if utf8.RuneCountInString(text) < MinTextLength {
		return "", ErrNoReadableText
	}
	return text, nil
}
