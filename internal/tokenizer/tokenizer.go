package tokenizer

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`\W`)

// Tokenize splits free text into word tokens. Periods are removed first so
// "e.g." becomes "eg", then every other non-word character becomes a break.
// Short tokens are not filtered here.
func Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}
	merged := strings.ReplaceAll(text, ".", "")
	spaced := nonWord.ReplaceAllString(merged, " ")
	return strings.Fields(spaced)
}
