package dashpage_test

import (
	"context"
	"testing"

	"github.com/gurugrv/dashpage"
	"github.com/gurugrv/dashpage/mock"
	"github.com/stretchr/testify/assert"
)

func TestToolResult(t *testing.T) {
	t.Parallel()

	t.Run("success carries a payload", func(t *testing.T) {
		t.Parallel()

		res := dashpage.ToolSuccess("https://img.example.com/hero.jpg")

		assert.True(t, res.OK())
		assert.Equal(t, "https://img.example.com/hero.jpg", res.Payload)
		assert.Empty(t, res.Err)
	})

	t.Run("failure carries a message", func(t *testing.T) {
		t.Parallel()

		res := dashpage.ToolFailure("no results for query")

		assert.False(t, res.OK())
		assert.Equal(t, "no results for query", res.Err)
		assert.Empty(t, res.Payload)
	})

	t.Run("searcher results are substituted verbatim", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.ContentSearcher{
			SearchFn: func(ctx context.Context, query string) dashpage.ToolResult {
				assert.Equal(t, "bakery storefront", query)
				return dashpage.ToolSuccess("<svg>icon</svg>")
			},
		}

		res := searcher.Search(context.Background(), "bakery storefront")
		assert.True(t, res.OK())
		assert.Equal(t, "<svg>icon</svg>", res.Payload)
	})
}
