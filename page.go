package tagpages

import (
	"fmt"
	"path"
)

const (
	// GroupTypeTags is the group type of every page the generator emits.
	GroupTypeTags = "tags"

	pageName = "index.html"
)

// Page is one generated group sub-page: a single page of one tag's
// paginated post list, waiting for the host to render it.
type Page struct {
	Dir      string         // resolved output path, e.g. /tags/go/page2
	Name     string         // always index.html
	Template string         // <groupType>/index.html; existence is the host's concern
	Data     map[string]any // front-matter fields the template reads
	Pager    *Pager

	groupType  string
	groupValue string
}

// newGroupPage computes everything about a page that needs no I/O.
func newGroupPage(groupType, value string, pager *Pager) *Page {
	return &Page{
		Dir:        PagePath(groupType, value, pager.Page),
		Name:       pageName,
		Template:   path.Join(groupType, pageName),
		Data:       make(map[string]any),
		Pager:      pager,
		groupType:  groupType,
		groupValue: value,
	}
}

// loadDefaults merges the loader's values for the page path into Data.
// The grouping keys are written last so defaults cannot override them.
func (p *Page) loadDefaults(loader DefaultsLoader) error {
	defaults, err := loader.LoadDefaults(p.Dir)
	if err != nil {
		return fmt.Errorf("load defaults for %s: %w", p.Dir, err)
	}
	for k, v := range defaults {
		p.Data[k] = v
	}
	p.Data["grouptype"] = p.groupType
	p.Data[p.groupType] = p.groupValue
	return nil
}

// Path returns the resolved output path.
func (p *Page) Path() string { return p.Dir }

// URL returns the page URL as a directory with a trailing slash.
func (p *Page) URL() string { return p.Dir + "/" }

// OutputFile is where a host would write the rendered page.
func (p *Page) OutputFile() string { return path.Join(p.Dir, p.Name) }

// GroupType returns the group the page belongs to ("tags").
func (p *Page) GroupType() string { return p.groupType }

// GroupValue returns the tag the page lists.
func (p *Page) GroupValue() string { return p.groupValue }
