package patch_test

import (
	"testing"

	"github.com/gurugrv/dashpage"
	"github.com/gurugrv/dashpage/patch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_ExactTier(t *testing.T) {
	t.Parallel()

	t.Run("replaces an exact substring", func(t *testing.T) {
		t.Parallel()

		res := patch.Apply("<h1>Old Title</h1>", []dashpage.EditOperation{
			{Search: "Old Title", Replace: "New Title"},
		})

		assert.Equal(t, patch.StatusFull, res.Status)
		assert.Equal(t, "<h1>New Title</h1>", res.Text)
		assert.Equal(t, 1, res.Applied)
		assert.Equal(t, -1, res.FailedIndex)
	})

	t.Run("round trip restores the original text", func(t *testing.T) {
		t.Parallel()

		original := "<p>alpha beta gamma</p>"
		forward := patch.Apply(original, []dashpage.EditOperation{
			{Search: "beta", Replace: "delta"},
		})
		require.Equal(t, patch.StatusFull, forward.Status)

		back := patch.Apply(forward.Text, []dashpage.EditOperation{
			{Search: "delta", Replace: "beta"},
		})
		require.Equal(t, patch.StatusFull, back.Status)
		assert.Equal(t, original, back.Text)
	})

	t.Run("operations see the result of prior operations", func(t *testing.T) {
		t.Parallel()

		res := patch.Apply("aaa", []dashpage.EditOperation{
			{Search: "aaa", Replace: "bbb"},
			{Search: "bbb", Replace: "ccc"},
		})

		assert.Equal(t, patch.StatusFull, res.Status)
		assert.Equal(t, "ccc", res.Text)
	})

	t.Run("replaces only the first occurrence when no count is declared", func(t *testing.T) {
		t.Parallel()

		res := patch.Apply("x y x", []dashpage.EditOperation{
			{Search: "x", Replace: "z"},
		})

		assert.Equal(t, "z y x", res.Text)
	})
}

func TestApply_WhitespaceTolerantTier(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace runs on both sides", func(t *testing.T) {
		t.Parallel()

		res := patch.Apply("<h1>  Hello   World</h1>", []dashpage.EditOperation{
			{Search: "<h1>Hello World</h1>", Replace: "<h1>Hi</h1>"},
		})

		assert.Equal(t, patch.StatusFull, res.Status)
		assert.Equal(t, "<h1>Hi</h1>", res.Text)
	})

	t.Run("maps the matched span back to original offsets", func(t *testing.T) {
		t.Parallel()

		res := patch.Apply("before <div>\n\t<span>x</span>\n</div> after", []dashpage.EditOperation{
			{Search: "<div> <span>x</span> </div>", Replace: "<div>y</div>"},
		})

		assert.Equal(t, patch.StatusFull, res.Status)
		assert.Equal(t, "before <div>y</div> after", res.Text)
	})
}

func TestApply_FuzzyTier(t *testing.T) {
	t.Parallel()

	t.Run("accepts a near match above the threshold", func(t *testing.T) {
		t.Parallel()

		text := `<a class="btn primary" href="/start">Get started today</a>`
		res := patch.Apply(text, []dashpage.EditOperation{
			// One word differs from the live text.
			{Search: `<a class="btn primary" href="/start">Get started now__</a>`, Replace: "<a>done</a>"},
		})

		assert.Equal(t, patch.StatusFull, res.Status)
		assert.Equal(t, "<a>done</a>", res.Text)
	})

	t.Run("rejects a match below the threshold", func(t *testing.T) {
		t.Parallel()

		res := patch.Apply("completely different content here", []dashpage.EditOperation{
			{Search: "<nav><ul><li>Home</li></ul></nav>", Replace: "x"},
		})

		assert.Equal(t, patch.StatusFailed, res.Status)
		assert.Contains(t, res.Err, "not found")
	})
}

func TestApply_ExpectedReplacements(t *testing.T) {
	t.Parallel()

	t.Run("replaces all occurrences when the count matches", func(t *testing.T) {
		t.Parallel()

		res := patch.Apply("x y x", []dashpage.EditOperation{
			{Search: "x", Replace: "z", ExpectedReplacements: 2},
		})

		assert.Equal(t, patch.StatusFull, res.Status)
		assert.Equal(t, "z y z", res.Text)
	})

	t.Run("fails when the count differs", func(t *testing.T) {
		t.Parallel()

		res := patch.Apply("x y x x", []dashpage.EditOperation{
			{Search: "x", Replace: "z", ExpectedReplacements: 2},
		})

		assert.Equal(t, patch.StatusFailed, res.Status)
		assert.Equal(t, 0, res.FailedIndex)
		assert.Contains(t, res.Err, "expected 2 occurrences")
		assert.Equal(t, "x y x x", res.Text)
	})
}

func TestApply_PartialSuccess(t *testing.T) {
	t.Parallel()

	t.Run("keeps prior mutations and stops at the failed operation", func(t *testing.T) {
		t.Parallel()

		res := patch.Apply("one two three", []dashpage.EditOperation{
			{Search: "one", Replace: "1"},
			{Search: "missing", Replace: "x"},
			{Search: "three", Replace: "3"},
		})

		assert.Equal(t, patch.StatusPartial, res.Status)
		assert.Equal(t, "1 two three", res.Text)
		assert.Equal(t, 1, res.Applied)
		assert.Equal(t, 1, res.FailedIndex)
		assert.NotEmpty(t, res.Err)
	})

	t.Run("empty search text fails the operation", func(t *testing.T) {
		t.Parallel()

		res := patch.Apply("content", []dashpage.EditOperation{
			{Search: "", Replace: "x"},
		})

		assert.Equal(t, patch.StatusFailed, res.Status)
		assert.Equal(t, 0, res.FailedIndex)
		assert.Equal(t, "content", res.Text)
	})

	t.Run("no operations is a full result", func(t *testing.T) {
		t.Parallel()

		res := patch.Apply("content", nil)

		assert.Equal(t, patch.StatusFull, res.Status)
		assert.Equal(t, "content", res.Text)
		assert.Equal(t, 0, res.Applied)
	})
}
