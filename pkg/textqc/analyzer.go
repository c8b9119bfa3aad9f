// Package textqc assesses the quality of plain-text transcripts produced by a
// generative transcription process. It strips conversational wrapper text
// ("chatter") that such a process prepends or appends to the actual
// transcription, estimates how much of the text is duplicated, flags residual
// markdown syntax, and combines placeholder density with repetition into a
// single 0-100 confidence score.
//
// All detection state (phrase catalogs, keyword sets, thresholds) is owned by
// an [Analyzer] value that is read-only after construction, so a single
// Analyzer is safe for concurrent use.
package textqc

import "strings"

// Characters treated as a soft boundary around chatter: whitespace, BOM and
// typographic quotes. Matches what the upstream transcription process wraps
// its framing text in.
const boundaryChars = "\ufeff \t\r\n\"'“”‘’"

// Punctuation a matched phrase is extended over.
const trailingPunct = "!?.,-"

// introCatalog holds the known fixed intro utterances in search priority
// order. The first phrase that matches wins.
var introCatalog = []string{
	"okay, here is the transcription of the text from the image",
	"okay, here is the transcription of the text",
	"here is the transcription of the text",
	"here is the text transcription",
	"here is the transcription",
	"here is the text from the image",
	"the transcription from the image is",
}

var outroCatalog = []string{
	"thank you, would you like me to transcribe another image",
	"thank you, anything else you need",
	"thank you, anything else i can help with",
	"there you go, what else would you like me to do",
	"there you go, anything else you need",
	"let me know if you need anything else",
	"let me know if you need me to transcribe another one",
	"let me know if you need me to transcribe another",
	"let me know if you need me to transcribe another image",
	"please attach more files if you want me to transcribe",
	"please attach more files if you want me to transcribe another image",
	"please attach more files if you want me to continue",
}

const (
	defaultPrefixWindow      = 200
	defaultSuffixWindow      = 200
	defaultHeuristicMaxChars = 240
	defaultTailMaxChars      = 120
	defaultTailMaxTokens     = 16
	defaultNGramWindow       = 8
	defaultNearDupThreshold  = 0.92
)

// Option is a functional option for configuring an [Analyzer].
type Option func(*Analyzer)

// WithPrefixWindow bounds how deep (in bytes) intro anchor matching scans
// from the start of the text. Default: 200.
func WithPrefixWindow(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.prefixWindow = n
		}
	}
}

// WithSuffixWindow bounds how deep outro anchor matching scans from the end
// of the text. Default: 200.
func WithSuffixWindow(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.suffixWindow = n
		}
	}
}

// WithHeuristicMaxChars sets the maximum length (in runes) of a line still
// considered by the intro/outro heuristics. Default: 240.
func WithHeuristicMaxChars(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.heuristicMaxChars = n
		}
	}
}

// WithTailLimits sets how substantial the text after a matched outro may be
// before the match is rejected: maxChars in runes, maxTokens in word tokens.
// Defaults: 120 and 16.
func WithTailLimits(maxChars, maxTokens int) Option {
	return func(a *Analyzer) {
		if maxChars > 0 {
			a.tailMaxChars = maxChars
		}
		if maxTokens > 0 {
			a.tailMaxTokens = maxTokens
		}
	}
}

// WithNGramWindow sets the sliding-window size (in words) used by the
// repetition estimator. Default: 8.
func WithNGramWindow(n int) Option {
	return func(a *Analyzer) {
		if n > 1 {
			a.ngramWindow = n
		}
	}
}

// WithNearDuplicateThreshold sets the minimum Jaro-Winkler similarity for two
// distinct normalized lines to be reported as near duplicates. Default: 0.92.
func WithNearDuplicateThreshold(threshold float64) Option {
	return func(a *Analyzer) {
		if threshold > 0 && threshold <= 1 {
			a.nearDupThreshold = threshold
		}
	}
}

// WithExtraIntroPhrases appends phrases to the intro catalog. They are tried
// after the built-in catalog, in the given order.
func WithExtraIntroPhrases(phrases ...string) Option {
	return func(a *Analyzer) {
		a.introPhrases = append(a.introPhrases, phrases...)
	}
}

// WithExtraOutroPhrases appends phrases to the outro catalog.
func WithExtraOutroPhrases(phrases ...string) Option {
	return func(a *Analyzer) {
		a.outroPhrases = append(a.outroPhrases, phrases...)
	}
}

// Analyzer owns the chatter catalogs and tuning thresholds. Construct with
// [New]; the zero value is not usable.
type Analyzer struct {
	introPhrases []string
	outroPhrases []string

	prefixWindow      int
	suffixWindow      int
	heuristicMaxChars int
	tailMaxChars      int
	tailMaxTokens     int
	ngramWindow       int
	nearDupThreshold  float64
}

// New creates an Analyzer with the built-in catalogs and default thresholds.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		introPhrases:      append([]string(nil), introCatalog...),
		outroPhrases:      append([]string(nil), outroCatalog...),
		prefixWindow:      defaultPrefixWindow,
		suffixWindow:      defaultSuffixWindow,
		heuristicMaxChars: defaultHeuristicMaxChars,
		tailMaxChars:      defaultTailMaxChars,
		tailMaxTokens:     defaultTailMaxTokens,
		ngramWindow:       defaultNGramWindow,
		nearDupThreshold:  defaultNearDupThreshold,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Strip removes chatter from text and returns the cleaned text together with
// the removed intro and outro (empty when nothing was removed).
//
// The cleaned text is always a contiguous region of the original: the intro
// is taken off the front first, then the outro off the back of what remains.
// Anchor matching against the phrase catalogs runs first; the line heuristics
// are a fallback for chatter the catalogs do not know. Stripping an already
// clean text returns it unchanged, so Strip is idempotent.
func (a *Analyzer) Strip(text string) (cleaned, intro, outro string) {
	intro = a.FindPrefix(text)
	if intro == "" {
		intro = a.detectIntroHeuristic(text)
	}

	cleaned = text
	if strings.TrimSpace(intro) != "" {
		cleaned = strings.TrimLeft(cleaned[len(intro):], boundaryChars)
	} else {
		intro = ""
	}

	outro = a.FindSuffix(cleaned)
	if outro == "" {
		outro = a.detectOutroHeuristic(cleaned)
	}

	if strings.TrimSpace(outro) != "" {
		cleaned = strings.TrimRight(cleaned[:len(cleaned)-len(outro)], boundaryChars)
	} else {
		outro = ""
	}

	return cleaned, intro, outro
}
