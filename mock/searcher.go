package mock

import (
	"context"

	"github.com/gurugrv/dashpage"
)

var _ dashpage.ContentSearcher = (*ContentSearcher)(nil)

// ContentSearcher is a mock implementation of dashpage.ContentSearcher.
type ContentSearcher struct {
	SearchFn func(ctx context.Context, query string) dashpage.ToolResult
}

func (s *ContentSearcher) Search(ctx context.Context, query string) dashpage.ToolResult {
	return s.SearchFn(ctx, query)
}
