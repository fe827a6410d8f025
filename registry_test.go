package tagpages

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAppendOnly(t *testing.T) {
	reg := NewRegistry()
	a := &Page{Dir: "/a"}
	b := &Page{Dir: "/b"}
	reg.Append(a)
	reg.Append(b)

	pages := reg.Pages()
	pages[0] = nil
	assert.Same(t, a, reg.Pages()[0])
	assert.Equal(t, 2, reg.Len())

	got, ok := reg.Lookup("/b")
	require.True(t, ok)
	assert.Same(t, b, got)
	_, ok = reg.Lookup("/c")
	assert.False(t, ok)
}

func TestPageAccessors(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, New(1).Generate(TagIndex{"go": datedPosts("2024-01-01", "2024-01-02")}, reg))

	p, ok := reg.Lookup("/tags/go/page2")
	require.True(t, ok)
	assert.Equal(t, "/tags/go/page2/", p.URL())
	assert.Equal(t, "/tags/go/page2/index.html", p.OutputFile())
	assert.Equal(t, "tags", p.GroupType())
	assert.Equal(t, "go", p.GroupValue())
	assert.Equal(t, "index.html", p.Name)
}

func TestWriteSitemap(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, New(1).Generate(TagIndex{"go": datedPosts("2024-01-01", "2024-03-02")}, reg))

	var buf bytes.Buffer
	require.NoError(t, reg.WriteSitemap(&buf, "https://blog.example"))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>https://blog.example/tags/go/</loc>")
	assert.Contains(t, out, "<lastmod>2024-03-02</lastmod>")
	assert.Contains(t, out, "<loc>https://blog.example/tags/go/page2/</loc>")
	assert.Contains(t, out, "<lastmod>2024-01-01</lastmod>")
}

func TestWriteSitemapOmitsUnknownLastMod(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, New(0).Generate(TagIndex{"x": datedPosts("")}, reg))

	var buf bytes.Buffer
	require.NoError(t, reg.WriteSitemap(&buf, "https://blog.example"))
	assert.NotContains(t, buf.String(), "<lastmod>")
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "https://blog.example", BuildURL("https://blog.example"))
	assert.Equal(t, "https://blog.example/tags/go/", BuildURL("https://blog.example", "/tags/go"))
	assert.Equal(t, "https://blog.example/sub/tags/go/", BuildURL("https://blog.example/sub/", "tags", "go"))
}
