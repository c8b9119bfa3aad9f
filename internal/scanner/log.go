package scanner

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// appendRemovalLog appends one line per removed intro, one per removed outro
// and one per repetition flag, plus a summary line. Logging is best effort;
// a failure never affects the returned report or the remediated files.
func (s *implScanner) appendRemovalLog(ctx context.Context, removals []removal) {
	f, err := os.OpenFile(s.cfg.Paths.Log, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		s.logger.Warn(ctx, "Removal log unavailable: %v", err)
		return
	}
	defer f.Close()

	touched := 0
	var b strings.Builder
	for _, r := range removals {
		if strings.TrimSpace(r.intro) != "" {
			fmt.Fprintf(&b, "[OUT] [OK] Removed intro chatter from %s: \"%s\"\n", r.path, oneLine(r.intro))
		}
		if strings.TrimSpace(r.outro) != "" {
			fmt.Fprintf(&b, "[OUT] [OK] Removed outro chatter from %s: \"%s\"\n", r.path, oneLine(r.outro))
		}
		if r.repetition {
			fmt.Fprintf(&b, "[OUT] [OK] Flagged repetition in %s (ratio %.2f)\n", r.path, r.ratio)
		}
		if strings.TrimSpace(r.intro) != "" || strings.TrimSpace(r.outro) != "" {
			touched++
		}
	}
	fmt.Fprintf(&b, "[OUT] [OK] Quality scan cleaned %d file(s).\n", touched)

	if _, err := f.WriteString(b.String()); err != nil {
		s.logger.Warn(ctx, "Failed to append removal log: %v", err)
	}
}

func oneLine(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), "\n", " ")
}
