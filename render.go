package tagpages

import "github.com/a-h/templ"

// Views holds the user-provided templ components for generated pages.
// The host renders the components; this package only binds page data.
type Views struct {
	TagPage func(page *Page) templ.Component
}

// Component returns the tag page template bound to p, or nil when the
// views define no tag page.
func (p *Page) Component(v Views) templ.Component {
	if v.TagPage == nil {
		return nil
	}
	return v.TagPage(p)
}
