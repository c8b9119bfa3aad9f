package scanner

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/transcript-triage/pkg/textqc"
)

// removal records what a scan pass stripped or flagged in one file, for the
// append-only removal log.
type removal struct {
	path       string
	intro      string
	outro      string
	repetition bool
	ratio      float64
}

// Reported removed-text values are trimmed of whitespace and BOM only;
// quotes stay, they are part of what was removed.
const reportTrimChars = "\ufeff \t\r\n"

// scanFile assesses a single transcript and, when remediation is enabled and
// chatter was stripped, rewrites the file in place. Metrics always reflect
// the in-memory cleaned text, even when the rewrite fails.
func (s *implScanner) scanFile(ctx context.Context, path, text string) (Entry, removal) {
	artifacts := textqc.DetectMarkdown(text)

	cleaned, intro, outro := s.analyzer.Strip(text)

	var notes []string
	if s.cfg.Scan.Apply && cleaned != text {
		if err := s.remediate(ctx, path, cleaned); err != nil {
			s.logger.Warn(ctx, "Failed to rewrite %s: %v", path, err)
			notes = append(notes, "remediation write failed; metrics reflect the in-memory cleaned text")
		}
	}

	count, total := textqc.PlaceholderStats(cleaned)
	placeholderRatio := 0.0
	if total > 0 {
		placeholderRatio = float64(count) / float64(total)
	}
	repetitionRatio := s.analyzer.RepetitionRatio(cleaned)

	entry := Entry{
		File:             filepath.Base(path),
		Confidence:       textqc.Score(placeholderRatio, repetitionRatio),
		PlaceholderRatio: round4(placeholderRatio),
		PlaceholderCount: count,
		TokenCount:       total,
		RepetitionRatio:  round4(repetitionRatio),
	}

	var issues []string
	if intro != "" {
		entry.RemoveIntroText = strings.Trim(intro, reportTrimChars)
		issues = append(issues, "intro chatter detected")
	}
	if outro != "" {
		entry.RemoveOutroText = strings.Trim(outro, reportTrimChars)
		issues = append(issues, "outro chatter detected")
	}
	if repetitionRatio > s.cfg.Scan.RepetitionIssueThreshold {
		issues = append(issues, fmt.Sprintf("repetition ratio %.2f above %.2f",
			repetitionRatio, s.cfg.Scan.RepetitionIssueThreshold))
	}
	if len(artifacts) > 0 {
		entry.MarkdownArtifacts = artifacts
		issues = append(issues, "markdown artifacts: "+strings.Join(artifacts, ", "))
	}

	entry.RepetitionDetected = repetitionRatio > s.cfg.Scan.RepetitionFlagThreshold

	for _, pair := range s.analyzer.NearDuplicateLines(cleaned) {
		notes = append(notes, fmt.Sprintf("near-duplicate lines: %q / %q", pair[0], pair[1]))
	}

	entry.Issues = issues
	entry.Notes = notes

	return entry, removal{
		path:       path,
		intro:      intro,
		outro:      outro,
		repetition: entry.RepetitionDetected,
		ratio:      repetitionRatio,
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
