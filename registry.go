package tagpages

import (
	"encoding/xml"
	"io"
)

// Registry is the host's collection of output pages. Generators only
// append to it; it is not safe for concurrent use.
type Registry struct {
	pages []*Page
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Append adds a page after every page already registered.
func (r *Registry) Append(p *Page) {
	r.pages = append(r.pages, p)
}

// Pages returns the registered pages in append order.
func (r *Registry) Pages() []*Page {
	out := make([]*Page, len(r.pages))
	copy(out, r.pages)
	return out
}

// Len returns the number of registered pages.
func (r *Registry) Len() int {
	return len(r.pages)
}

// Lookup finds the page registered at path.
func (r *Registry) Lookup(path string) (*Page, bool) {
	for _, p := range r.pages {
		if p.Dir == path {
			return p, true
		}
	}
	return nil, false
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap encodes the registered pages as a sitemaps.org urlset. A
// page's lastmod is the newest publish date among its posts.
func (r *Registry) WriteSitemap(w io.Writer, baseURL string) error {
	urls := make([]sitemapURL, 0, len(r.pages))
	for _, p := range r.pages {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(baseURL, p.Dir),
			LastMod: lastMod(p),
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemap); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func lastMod(p *Page) string {
	if p.Pager == nil || len(p.Pager.Posts) == 0 {
		return ""
	}
	// Pages hold posts newest first.
	t := p.Pager.Posts[0].PublishTime()
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
