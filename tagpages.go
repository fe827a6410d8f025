// Package tagpages is a page generator for static blog sites. It groups a
// site's posts by tag, orders each group newest first, and splits every
// group into paginated sub-pages (/tags/<tag>, /tags/<tag>/page2, ...)
// that the host's rendering stage turns into HTML.
//
// The host owns posts, templates and output files. This package only
// computes page descriptors and appends them to the Registry it is given.
package tagpages

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// ErrNilRegistry is returned when Generate has no registry to append to.
var ErrNilRegistry = errors.New("tagpages: nil page registry")

// Generator builds tag pages. It holds no state between runs.
type Generator struct {
	perPage  PageSize
	defaults DefaultsLoader
	log      zerolog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithDefaults sets the loader consulted for each page's front-matter
// defaults (default NoDefaults).
func WithDefaults(loader DefaultsLoader) Option {
	return func(g *Generator) {
		g.defaults = loader
	}
}

// WithLogger sets the logger used to report generation progress.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// New creates a Generator paginating at perPage posts per page. A
// non-positive perPage puts every post of a tag on one page.
func New(perPage PageSize, opts ...Option) *Generator {
	g := &Generator{
		perPage:  perPage,
		defaults: NoDefaults{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewFromConfig creates a Generator from the site configuration, applying
// its scoped front-matter defaults.
func NewFromConfig(cfg SiteConfig, opts ...Option) *Generator {
	opts = append([]Option{WithDefaults(ScopedDefaults(cfg.Defaults))}, opts...)
	return New(cfg.Paginate, opts...)
}

// Generate appends the paginated pages of every tag in idx to reg. Tags
// are processed in sorted order. Any error aborts the run; pages appended
// before the failure stay in reg.
func (g *Generator) Generate(idx TagIndex, reg *Registry) error {
	if reg == nil {
		return ErrNilRegistry
	}
	total := 0
	for _, tag := range idx.Tags() {
		posts := idx[tag]
		if len(posts) == 0 {
			continue
		}
		n, err := g.paginate(tag, SortByDate(posts), reg)
		if err != nil {
			return err
		}
		g.log.Debug().Str("tag", tag).Int("posts", len(posts)).Int("pages", n).Msg("paginated tag")
		total += n
	}
	g.log.Info().Int("tags", len(idx)).Int("pages", total).Msg("generated tag pages")
	return nil
}

// paginate appends one page per page number of the sorted posts.
func (g *Generator) paginate(tag string, posts []Post, reg *Registry) (int, error) {
	perPage := int(g.perPage)
	pages := CalculatePages(len(posts), perPage)
	for num := 1; num <= pages; num++ {
		pager := NewPager(num, perPage, posts, pages, GroupTypeTags, tag)
		page := newGroupPage(GroupTypeTags, tag, pager)
		if err := page.loadDefaults(g.defaults); err != nil {
			return num - 1, fmt.Errorf("tagpages: tag %q: %w", tag, err)
		}
		reg.Append(page)
	}
	return pages, nil
}

// SortByDate returns a copy of posts ordered newest first. Posts with
// equal publish times keep their relative order.
func SortByDate(posts []Post) []Post {
	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b Post) int {
		return b.PublishTime().Compare(a.PublishTime())
	})
	return sorted
}
