package textqc

import (
	"strings"
	"unicode/utf8"
)

// Weak lexical signals for the fallback classifiers. A line that did not
// anchor-match any catalog phrase may still look like chatter; these sets
// catch the common variations.

var introKeywords = []string{"transcription", "transcribe", "transcribed"}

var introContextPhrases = []string{
	"text from the image",
	"text from this image",
	"the text from the",
	"the text of the",
}

var introStrongPhrases = []string{
	"here is the transcription",
	"here's the transcription",
	"here is your transcript",
	"here's your transcript",
	"this is the transcription",
	"this is your transcript",
	"let me transcribe",
	"i will transcribe",
	"i can provide",
	"allow me to transcribe",
	"here is the text from",
	"here's the text from",
}

var introSelfPhrases = []string{
	"here is", "this is", "your transcript", "let me", "allow me",
	"i will", "i'm going to", "providing you with", "presenting",
}

var introFailurePhrases = []string{
	"the image is blurry",
	"i can't read",
	"cannot read",
	"unable to transcribe",
	"can't transcribe",
}

var introLeads = map[string]struct{}{
	"ok": {}, "okay": {}, "sure": {}, "alright": {}, "hello": {}, "hi": {},
	"hey": {}, "greetings": {}, "here": {}, "this": {}, "let": {}, "i": {},
	"we": {},
}

var outroStrongPhrases = []string{
	"let me know if you need",
	"anything else i can",
	"anything else you need",
	"would you like me to",
	"can i help with anything else",
	"need me to transcribe another",
	"feel free to ask",
	"happy to help further",
	"here if you need more",
}

var outroOfferPhrases = []string{
	"transcribe", "need", "want me to", "you would like me to", "i can",
}

var outroKeywords = map[string]struct{}{
	"anything": {}, "else": {}, "another": {}, "need": {}, "more": {},
	"help": {}, "assist": {}, "support": {}, "transcribe": {},
}

var outroPolite = map[string]struct{}{
	"thanks": {}, "thank": {}, "appreciate": {}, "happy": {}, "glad": {},
	"let": {}, "feel": {}, "please": {}, "ready": {},
}

func tokenSet(segment string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range Words(segment) {
		set[w] = struct{}{}
	}
	return set
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func intersects(set map[string]struct{}, other map[string]struct{}) bool {
	for w := range set {
		if _, ok := other[w]; ok {
			return true
		}
	}
	return false
}

// LooksLikeIntro reports whether a short segment reads like conversational
// framing before the actual transcript. Any satisfied branch decides.
func (a *Analyzer) LooksLikeIntro(segment string) bool {
	segment = strings.TrimSpace(segment)
	if segment == "" || utf8.RuneCountInString(segment) > a.heuristicMaxChars {
		return false
	}
	lower := strings.ToLower(segment)
	tokens := tokenSet(segment)
	if len(tokens) == 0 {
		return false
	}
	if containsAny(lower, introStrongPhrases) {
		return true
	}
	hasKeyword := containsAny(lower, introKeywords)
	hasContext := containsAny(lower, introContextPhrases)
	hasColon := strings.HasSuffix(lower, ":")
	if !hasKeyword && !hasContext && !hasColon {
		return false
	}
	if intersects(tokens, introLeads) || containsAny(lower, introSelfPhrases) {
		return true
	}
	return containsAny(lower, introFailurePhrases)
}

// LooksLikeOutro reports whether a short segment reads like a closing
// offer-to-help. Any satisfied branch decides.
func (a *Analyzer) LooksLikeOutro(segment string) bool {
	segment = strings.TrimSpace(segment)
	if segment == "" || utf8.RuneCountInString(segment) > a.heuristicMaxChars {
		return false
	}
	lower := strings.ToLower(segment)
	tokens := tokenSet(segment)
	if len(tokens) == 0 {
		return false
	}
	if containsAny(lower, outroStrongPhrases) {
		return true
	}
	if strings.Contains(lower, "anything else") && containsAny(lower, outroOfferPhrases) {
		return true
	}
	if intersects(tokens, outroPolite) && intersects(tokens, outroKeywords) {
		return true
	}
	if strings.Contains(segment, "?") &&
		(strings.Contains(lower, "anything else") || strings.Contains(lower, "need")) {
		return true
	}
	return false
}

// splitLines splits text into lines keeping their terminators, alongside the
// byte offset of every line start plus a final offset equal to len(text).
func splitLines(text string) (lines []string, offsets []int) {
	lines = strings.SplitAfter(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	offsets = make([]int, len(lines)+1)
	for i, line := range lines {
		offsets[i+1] = offsets[i] + len(line)
	}
	return lines, offsets
}

// detectIntroHeuristic applies LooksLikeIntro to the first non-blank line and
// returns the matched span. The span absorbs blank lines on both sides so the
// separator between chatter and content is stripped too.
func (a *Analyzer) detectIntroHeuristic(text string) string {
	lines, offsets := splitLines(text)
	idx := 0
	for idx < len(lines) && strings.TrimSpace(lines[idx]) == "" {
		idx++
	}
	if idx >= len(lines) {
		return ""
	}
	segment := strings.Trim(lines[idx], boundaryChars)
	if !a.LooksLikeIntro(segment) {
		return ""
	}
	start := offsets[idx]
	for k := idx - 1; k >= 0 && strings.TrimSpace(lines[k]) == ""; k-- {
		start = offsets[k]
	}
	end := offsets[idx+1]
	for j := idx + 1; j < len(lines) && strings.TrimSpace(lines[j]) == ""; j++ {
		end = offsets[j+1]
	}
	return text[start:end]
}

// detectOutroHeuristic is the mirror at the end of text. A single-line text
// never yields an outro; the lone line is the content.
func (a *Analyzer) detectOutroHeuristic(text string) string {
	lines, offsets := splitLines(text)
	idx := len(lines) - 1
	for idx >= 0 && strings.TrimSpace(lines[idx]) == "" {
		idx--
	}
	if idx < 0 {
		return ""
	}
	nonBlank := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonBlank++
		}
	}
	if nonBlank <= 1 {
		return ""
	}
	segment := strings.Trim(lines[idx], boundaryChars)
	if !a.LooksLikeOutro(segment) {
		return ""
	}
	start := offsets[idx]
	for k := idx - 1; k >= 0 && strings.TrimSpace(lines[k]) == ""; k-- {
		start = offsets[k]
	}
	end := offsets[idx+1]
	for m := idx + 1; m < len(lines) && strings.TrimSpace(lines[m]) == ""; m++ {
		end = offsets[m+1]
	}
	return text[start:end]
}
