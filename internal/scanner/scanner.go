package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// Scan runs one full quality pass over every *.txt transcript in folder.
//
// Files are processed in case-insensitive filename order, one at a time; a
// file that cannot be read or decoded as UTF-8 is skipped silently. Only a
// missing folder is fatal.
func (s *implScanner) Scan(ctx context.Context, folder string) (*Result, error) {
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("folder not found: %s", folder)
	}

	paths, err := filepath.Glob(filepath.Join(folder, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	sort.Slice(paths, func(i, j int) bool {
		return strings.ToLower(filepath.Base(paths[i])) < strings.ToLower(filepath.Base(paths[j]))
	})

	s.logger.Info(ctx, "Scanning %d transcript(s) in %s", len(paths), folder)

	result := &Result{All: []Entry{}}
	var removals []removal

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Debug(ctx, "Skipping unreadable file %s: %v", path, err)
			continue
		}
		if !utf8.Valid(data) {
			s.logger.Debug(ctx, "Skipping non-UTF-8 file %s", path)
			continue
		}

		entry, rem := s.scanFile(ctx, path, string(data))
		result.All = append(result.All, entry)
		if rem.intro != "" || rem.outro != "" || rem.repetition {
			removals = append(removals, rem)
		}
	}

	if s.cfg.Scan.Threshold != nil {
		over := []Entry{}
		for _, e := range result.All {
			if e.Confidence <= *s.cfg.Scan.Threshold {
				over = append(over, e)
			}
		}
		result.Over = &over
	}

	if s.cfg.Scan.Apply && s.cfg.Paths.Log != "" && len(removals) > 0 {
		s.appendRemovalLog(ctx, removals)
	}

	s.logger.Info(ctx, "Scan complete: %d reported, %d with removable chatter", len(result.All), len(removals))

	return result, nil
}
