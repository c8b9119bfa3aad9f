package scanner

import "context"

// Scanner defines the interface for transcript quality scan passes
type Scanner interface {
	Scan(ctx context.Context, folder string) (*Result, error)
}
