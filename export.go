package tourcopy

import (
	"context"
	"time"
)

// ExportedPage is a rendered product page ready to be written out.
type ExportedPage struct {
	ProductID   string
	Name        string
	Anchor      string
	ContentHash string
	ExportedAt  time.Time
	Body        string
}

// PageStore persists exported pages. Saved pages become visible only after
// Commit; Abort discards them.
type PageStore interface {
	Save(ctx context.Context, page *ExportedPage) error
	Commit() error
	Abort() error
}

// Fetcher retrieves a remote resource.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
