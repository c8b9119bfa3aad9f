package textqc

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// Caps for the near-duplicate pass; comparison is pairwise over distinct
// lines, so both the line pool and the reported pairs are bounded.
const (
	nearDupMaxLines = 64
	nearDupMaxPairs = 3
	nearDupMinRunes = 12
)

func normalizedLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// RepetitionRatio estimates, in [0, 1], how much of text is duplicated.
//
// Two independent signals are computed and the maximum wins: the share of
// non-blank lines whose normalized value occurs more than once, and the share
// of duplicated sliding word windows. Either signal alone reliably indicates
// duplication — a repeated short line trips the line signal even in long
// documents where the window signal is diluted, and a paragraph repeated with
// different line wrapping trips the window signal.
func (a *Analyzer) RepetitionRatio(text string) float64 {
	lineRatio := 0.0
	lines := normalizedLines(text)
	if len(lines) > 0 {
		counts := make(map[string]int, len(lines))
		for _, line := range lines {
			counts[line]++
		}
		dup := 0
		for _, line := range lines {
			if counts[line] > 1 {
				dup++
			}
		}
		lineRatio = float64(dup) / float64(len(lines))
	}

	ngramRatio := 0.0
	words := Words(text)
	n := a.ngramWindow
	// Below two full windows the estimate is meaningless noise.
	if len(words) >= 2*n {
		total := len(words) - n + 1
		counts := make(map[string]int, total)
		for i := 0; i < total; i++ {
			counts[strings.Join(words[i:i+n], " ")]++
		}
		extra := 0
		for _, c := range counts {
			if c > 1 {
				extra += c - 1
			}
		}
		ngramRatio = float64(extra) / float64(total)
	}

	if ngramRatio > lineRatio {
		return ngramRatio
	}
	return lineRatio
}

// NearDuplicateLines returns pairs of distinct normalized lines whose
// Jaro-Winkler similarity reaches the near-duplicate threshold. Exact
// duplicates are excluded; they already count toward [Analyzer.RepetitionRatio].
// The result feeds report notes only and never affects scoring.
func (a *Analyzer) NearDuplicateLines(text string) [][2]string {
	seen := make(map[string]struct{})
	var distinct []string
	for _, line := range normalizedLines(text) {
		if len([]rune(line)) < nearDupMinRunes {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		distinct = append(distinct, line)
		if len(distinct) == nearDupMaxLines {
			break
		}
	}

	var pairs [][2]string
	for i := 0; i < len(distinct) && len(pairs) < nearDupMaxPairs; i++ {
		for j := i + 1; j < len(distinct) && len(pairs) < nearDupMaxPairs; j++ {
			if matchr.JaroWinkler(distinct[i], distinct[j], false) >= a.nearDupThreshold {
				pairs = append(pairs, [2]string{distinct[i], distinct[j]})
			}
		}
	}
	return pairs
}
