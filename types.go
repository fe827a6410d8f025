package tagpages

import (
	"strings"
	"time"
)

// dateLayout is the storage format for BlogPost.Date.
const dateLayout = "2006-01-02"

// Post is the capability set the generator needs from a site post.
// Implementations are never mutated; only references are reordered.
type Post interface {
	TagList() []string
	PublishTime() time.Time
}

// BlogPost is the post type stored in SQLite and handed to templates.
type BlogPost struct {
	Title     string
	Date      string
	Tags      []string
	Summary   string
	Link      string
	Slug      string
	Content   string
	Published bool
}

// TagList returns the post's tags as written.
func (p BlogPost) TagList() []string {
	return p.Tags
}

// PublishTime parses Date. Posts without a usable date report the zero
// time and therefore sort after every dated post.
func (p BlogPost) PublishTime() time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(p.Date))
	if err != nil {
		return time.Time{}
	}
	return t
}
