package textqc

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\w+`)

// Token is a maximal run of word characters with its byte offsets in the
// source text. Tokens are recomputed whenever the consuming text changes.
type Token struct {
	Start int
	End   int
	Text  string
}

// Tokenize returns every word token of text in order.
func Tokenize(text string) []Token {
	idx := wordPattern.FindAllStringIndex(text, -1)
	tokens := make([]Token, 0, len(idx))
	for _, pair := range idx {
		tokens = append(tokens, Token{
			Start: pair[0],
			End:   pair[1],
			Text:  text[pair[0]:pair[1]],
		})
	}
	return tokens
}

// Words returns the lowercase word tokens of text without offsets.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}
