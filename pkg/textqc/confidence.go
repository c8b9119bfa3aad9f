package textqc

import (
	"math"
	"regexp"
	"strings"
)

// Placeholder tokens the upstream transcription process inserts for uncertain
// or missing words.
var placeholderPattern = regexp.MustCompile(`(?i)\[(?:unsure|blank)\]`)

// padPlaceholders surrounds every placeholder with spaces so it splits into a
// standalone word even when glued to punctuation or neighbouring text.
func padPlaceholders(text string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(m string) string {
		return " " + strings.ToLower(m) + " "
	})
}

// PlaceholderStats counts placeholder tokens and total words in text.
func PlaceholderStats(text string) (count, total int) {
	for _, w := range strings.Fields(padPlaceholders(text)) {
		total++
		if w == "[unsure]" || w == "[blank]" {
			count++
		}
	}
	return count, total
}

// PlaceholderRatio returns placeholder tokens over total words, 0 when the
// text has no words.
func PlaceholderRatio(text string) float64 {
	count, total := PlaceholderStats(text)
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}

// Score combines a placeholder ratio and a repetition ratio into a 0-100
// confidence, rounded to two decimals. Both inputs are clamped to [0, 1] and
// their sum to 1, so the result is monotonically decreasing in each ratio,
// never negative, and 100 exactly when both are 0.
func Score(placeholderRatio, repetitionRatio float64) float64 {
	sum := clamp01(placeholderRatio) + clamp01(repetitionRatio)
	if sum > 1 {
		sum = 1
	}
	return math.Round((1-sum)*100*100) / 100
}

// Confidence scores cleaned text: 100 means no placeholders and no detected
// repetition.
func (a *Analyzer) Confidence(text string) float64 {
	return Score(PlaceholderRatio(text), a.RepetitionRatio(text))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
