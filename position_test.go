package dashpage_test

import (
	"testing"

	"github.com/gurugrv/dashpage"
	"github.com/stretchr/testify/assert"
)

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no whitespace", "<h1>Hi</h1>", "<h1>Hi</h1>"},
		{"internal runs collapse", "<h1>  Hello   World</h1>", "<h1> Hello World</h1>"},
		{"tabs and newlines collapse", "a\t\n  b", "a b"},
		{"leading run becomes one space", "  a", " a"},
		{"trailing run becomes one space", "a  ", "a "},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dashpage.CollapseWhitespace(tt.in))
		})
	}
}

func TestMapCollapsedIndex(t *testing.T) {
	t.Parallel()

	t.Run("identity when no whitespace runs", func(t *testing.T) {
		t.Parallel()

		original := "<h1>Hi</h1>"
		for i := 0; i <= len(original); i++ {
			assert.Equal(t, i, dashpage.MapCollapsedIndex(original, i))
		}
	})

	t.Run("whitespace run counts as one unit", func(t *testing.T) {
		t.Parallel()

		original := "a   b"
		// collapsed form is "a b"
		assert.Equal(t, 0, dashpage.MapCollapsedIndex(original, 0))
		assert.Equal(t, 1, dashpage.MapCollapsedIndex(original, 1)) // the run
		assert.Equal(t, 4, dashpage.MapCollapsedIndex(original, 2)) // "b"
		assert.Equal(t, 5, dashpage.MapCollapsedIndex(original, 3)) // end
	})

	t.Run("offset past end fails", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, dashpage.MapCollapsedIndex("ab", 3))
	})

	t.Run("negative offset fails", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, dashpage.MapCollapsedIndex("ab", -1))
	})

	t.Run("round trip through collapsed match span", func(t *testing.T) {
		t.Parallel()

		original := "<h1>  Hello   World</h1>"
		collapsed := dashpage.CollapseWhitespace(original)
		assert.Equal(t, "<h1> Hello World</h1>", collapsed)

		start := dashpage.MapCollapsedIndex(original, 0)
		end := dashpage.MapCollapsedIndex(original, len(collapsed))
		assert.Equal(t, 0, start)
		assert.Equal(t, len(original), end)
	})
}
