package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// RescanHandler is invoked after transcript changes settle; it should run a
// fresh scan pass over the watched folder.
type RescanHandler func(ctx context.Context) error
