package mock

import (
	"context"

	"github.com/fwojciec/tourcopy"
)

var _ tourcopy.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of tourcopy.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *tourcopy.ExportedPage) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *tourcopy.ExportedPage) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}

var _ tourcopy.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of tourcopy.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}
