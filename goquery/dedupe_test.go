package goquery_test

import (
	"strings"
	"testing"

	"github.com/gurugrv/dashpage"
	dpquery "github.com/gurugrv/dashpage/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(body string) string {
	return "<html><head><title>t</title></head><body>" + body + "</body></html>"
}

func TestExtractComponents(t *testing.T) {
	t.Parallel()

	t.Run("extracts one shared nav from structurally identical pages", func(t *testing.T) {
		t.Parallel()

		files := dashpage.FileSet{
			"index.html": page(`<nav data-block="nav" class="top"><a class="link" href="/">Home</a></nav><main>home</main>`),
			"about.html": page(`<nav data-block="nav" class="top"><a class="link" href="/about">About us</a></nav><main>about</main>`),
		}

		out, components, err := dpquery.ExtractComponents(files)

		require.NoError(t, err)
		require.Len(t, components, 1)
		assert.Equal(t, "nav", components[0].ID)
		assert.Equal(t, "_components/nav.html", components[0].Filename)

		shared, ok := out.Read("_components/nav.html")
		require.True(t, ok)
		assert.Contains(t, shared, "Home")

		for _, p := range []string{"index.html", "about.html"} {
			content, _ := out.Read(p)
			assert.Contains(t, content, dpquery.PlaceholderFor("nav"), p)
			assert.NotContains(t, content, "<nav", p)
		}
	})

	t.Run("a structurally different page keeps its block", func(t *testing.T) {
		t.Parallel()

		files := dashpage.FileSet{
			"index.html": page(`<nav data-block="nav"><a class="link">Home</a></nav>`),
			"about.html": page(`<nav data-block="nav"><a class="link">About</a></nav>`),
			"shop.html":  page(`<nav data-block="nav"><div class="search-box"><input><button>Go</button></div><a class="link">Shop</a></nav>`),
		}

		out, components, err := dpquery.ExtractComponents(files)

		require.NoError(t, err)
		require.Len(t, components, 1)

		shop, _ := out.Read("shop.html")
		assert.NotContains(t, shop, dpquery.PlaceholderFor("nav"))
		assert.Contains(t, shop, "search-box")

		index, _ := out.Read("index.html")
		assert.Contains(t, index, dpquery.PlaceholderFor("nav"))
	})

	t.Run("requires at least two pages", func(t *testing.T) {
		t.Parallel()

		files := dashpage.FileSet{
			"index.html": page(`<nav data-block="nav"><a>Home</a></nav>`),
		}

		out, components, err := dpquery.ExtractComponents(files)

		require.NoError(t, err)
		assert.Empty(t, components)
		index, _ := out.Read("index.html")
		assert.Contains(t, index, "<nav")
	})

	t.Run("input file set is left untouched", func(t *testing.T) {
		t.Parallel()

		files := dashpage.FileSet{
			"index.html": page(`<nav data-block="nav"><a class="link">Home</a></nav>`),
			"about.html": page(`<nav data-block="nav"><a class="link">About</a></nav>`),
		}

		_, _, err := dpquery.ExtractComponents(files)

		require.NoError(t, err)
		assert.NotContains(t, files["index.html"], dpquery.PlaceholderFor("nav"))
		_, ok := files.Read("_components/nav.html")
		assert.False(t, ok)
	})

	t.Run("adopts a matching block when the shared file already exists", func(t *testing.T) {
		t.Parallel()

		files := dashpage.FileSet{
			"index.html":           page(dpquery.PlaceholderFor("nav")),
			"new.html":             page(`<nav data-block="nav" class="top"><a class="link">New</a></nav>`),
			"_components/nav.html": `<nav data-block="nav" class="top"><a class="link">Home</a></nav>`,
		}

		out, components, err := dpquery.ExtractComponents(files)

		require.NoError(t, err)
		assert.Empty(t, components)

		updated, _ := out.Read("new.html")
		assert.Contains(t, updated, dpquery.PlaceholderFor("nav"))
		assert.NotContains(t, updated, "<nav")
	})

	t.Run("does not adopt a structurally different block", func(t *testing.T) {
		t.Parallel()

		files := dashpage.FileSet{
			"index.html":           page(dpquery.PlaceholderFor("nav")),
			"new.html":             page(`<nav data-block="nav"><div class="mega-menu"><ul><li>x</li></ul></div></nav>`),
			"_components/nav.html": `<nav data-block="nav" class="top"><a class="link">Home</a></nav>`,
		}

		out, _, err := dpquery.ExtractComponents(files)

		require.NoError(t, err)
		updated, _ := out.Read("new.html")
		assert.NotContains(t, updated, dpquery.PlaceholderFor("nav"))
	})

	t.Run("assigns block ids before extracting when missing", func(t *testing.T) {
		t.Parallel()

		files := dashpage.FileSet{
			"index.html": page(`<header class="hero"><h1>One</h1></header>`),
			"about.html": page(`<header class="hero"><h1>Two</h1></header>`),
		}

		out, components, err := dpquery.ExtractComponents(files)

		require.NoError(t, err)
		require.Len(t, components, 1)
		assert.Equal(t, "header", components[0].ID)
		index, _ := out.Read("index.html")
		assert.True(t, strings.Contains(index, dpquery.PlaceholderFor("header")))
	})

	t.Run("non-page files are ignored", func(t *testing.T) {
		t.Parallel()

		files := dashpage.FileSet{
			"styles.css": "nav { color: red; }",
			"index.html": page(`<nav data-block="nav"><a>Home</a></nav>`),
		}

		out, components, err := dpquery.ExtractComponents(files)

		require.NoError(t, err)
		assert.Empty(t, components)
		css, _ := out.Read("styles.css")
		assert.Equal(t, "nav { color: red; }", css)
	})
}
