package tagpages

import (
	"sort"
	"strings"
)

// TagIndex maps a tag to the posts carrying it, in the order the posts
// were indexed.
type TagIndex map[string][]Post

// IndexTags groups posts by tag. Tags are trimmed and kept otherwise as
// written; a post listing the same tag twice is indexed once for it.
func IndexTags(posts []Post) TagIndex {
	idx := make(TagIndex)
	for _, p := range posts {
		seen := make(map[string]struct{})
		for _, t := range p.TagList() {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			idx[t] = append(idx[t], p)
		}
	}
	return idx
}

// Tags returns the indexed tag names in sorted order.
func (idx TagIndex) Tags() []string {
	tags := make([]string, 0, len(idx))
	for t := range idx {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
