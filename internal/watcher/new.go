package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/transcript-triage/internal/logger"
)

const defaultSettle = 500 * time.Millisecond

// New creates a Watcher that triggers handler whenever .txt transcripts in
// folder are created or rewritten, debounced so a burst of writes results in
// a single rescan.
func New(folder string, handler RescanHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(folder); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		folder:  folder,
		handler: handler,
		logger:  log,
		watcher: watcher,
		settle:  defaultSettle,
	}, nil
}
