package textqc

import (
	"strings"
	"unicode/utf8"
)

func isBoundaryRune(r rune) bool {
	return strings.ContainsRune(boundaryChars, r)
}

// Runes a completed anchor match may be extended over: boundary characters,
// trailing punctuation and the colon/semicolon that usually follows an intro.
func isEdgeRune(r rune) bool {
	return strings.ContainsRune(boundaryChars+trailingPunct+":;", r)
}

// FindPrefix searches the intro catalog in priority order for a phrase
// anchored at the very start of text and returns the matched span including
// any trailing punctuation, or "" when no phrase matches.
//
// Matching is token-anchored: the phrase's word tokens must appear in order
// among the text's tokens, the first of them preceded only by boundary
// characters. A phrase is abandoned once a candidate token starts beyond the
// prefix window, which bounds the scan and keeps deep body text from
// anchoring. The first phrase that matches wins.
func (a *Analyzer) FindPrefix(text string) string {
	tokens := Tokenize(text)

phrases:
	for _, phrase := range a.introPhrases {
		want := Words(phrase)
		if len(want) == 0 {
			continue
		}
		j := 0
		anchored := false
		for _, tok := range tokens {
			if tok.Start > a.prefixWindow {
				continue phrases
			}
			if strings.ToLower(tok.Text) != want[j] {
				continue
			}
			if !anchored {
				if strings.Trim(text[:tok.Start], boundaryChars) != "" {
					continue phrases
				}
				anchored = true
			}
			j++
			if j == len(want) {
				end := tok.End
				for end < len(text) {
					r, size := utf8.DecodeRuneInString(text[end:])
					if !isEdgeRune(r) {
						break
					}
					end += size
				}
				return text[:end]
			}
		}
	}
	return ""
}

// FindSuffix is the mirror of [Analyzer.FindPrefix]: it matches phrase tokens
// backward from the end of text, bounded by the suffix window, and returns
// the matched span extended backward over punctuation, or "".
//
// A completed match is rejected when the untouched tail after it is itself
// substantial (contains a newline, exceeds the tail character limit, or holds
// more tokens than the tail token limit); real content that merely ends with
// outro-like wording must not be swallowed.
func (a *Analyzer) FindSuffix(text string) string {
	tokens := Tokenize(text)

phrases:
	for _, phrase := range a.outroPhrases {
		want := Words(phrase)
		if len(want) == 0 {
			continue
		}
		j := len(want) - 1
		matchStart, matchEnd := -1, -1
		for i := len(tokens) - 1; i >= 0; i-- {
			tok := tokens[i]
			if len(text)-tok.End > a.suffixWindow {
				continue phrases
			}
			if strings.ToLower(tok.Text) != want[j] {
				continue
			}
			if matchEnd < 0 {
				matchEnd = tok.End
			}
			matchStart = tok.Start
			j--
			if j >= 0 {
				continue
			}
			tail := strings.Trim(text[matchEnd:], boundaryChars)
			if tail != "" {
				if strings.Contains(tail, "\n") ||
					utf8.RuneCountInString(tail) > a.tailMaxChars ||
					len(Tokenize(tail)) > a.tailMaxTokens {
					continue phrases
				}
			}
			start := matchStart
			for start > 0 {
				r, size := utf8.DecodeLastRuneInString(text[:start])
				if !isEdgeRune(r) {
					break
				}
				start -= size
			}
			return strings.TrimRight(text[start:], boundaryChars)
		}
	}
	return ""
}
