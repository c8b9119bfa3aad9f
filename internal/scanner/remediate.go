package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// remediate overwrites the transcript with its cleaned text, normalized to
// end with exactly one line terminator. The write is atomic
// (write-temp-then-rename) so a failure never corrupts the original file.
func (s *implScanner) remediate(ctx context.Context, path, cleaned string) error {
	normalized := strings.TrimRight(cleaned, "\n") + "\n"

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(normalized); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	// Preserve the original file mode where possible.
	if info, err := os.Stat(path); err == nil {
		os.Chmod(tmpPath, info.Mode())
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace transcript: %w", err)
	}

	s.logger.Debug(ctx, "Rewrote %s without chatter", path)
	return nil
}
