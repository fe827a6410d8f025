package tagpages

import "strconv"

// CalculatePages returns how many pages postCount posts fill at perPage
// posts per page. A non-positive perPage disables pagination, and an empty
// list still occupies one page.
func CalculatePages(postCount, perPage int) int {
	if perPage <= 0 || postCount <= 0 {
		return 1
	}
	return (postCount + perPage - 1) / perPage
}

// PagePath returns the output path of page num of a group: the first page
// lives at /<groupType>/<value>, later pages at /<groupType>/<value>/page<num>.
// value is used verbatim.
func PagePath(groupType, value string, num int) string {
	p := "/" + groupType + "/" + value
	if num > 1 {
		p += "/page" + strconv.Itoa(num)
	}
	return p
}

// Pager describes one page of a paginated post list.
type Pager struct {
	Page       int
	PerPage    int
	Posts      []Post
	TotalPosts int
	TotalPages int

	PreviousPage     int    // 0 on the first page
	PreviousPagePath string // "" on the first page
	NextPage         int    // 0 on the last page
	NextPagePath     string // "" on the last page
}

// NewPager slices page num out of posts. groupType and value locate the
// neighbouring pages for the previous/next links. When perPage is not
// positive the only page holds every post.
func NewPager(num, perPage int, posts []Post, totalPages int, groupType, value string) *Pager {
	start, end := 0, len(posts)
	if perPage > 0 {
		start = min((num-1)*perPage, len(posts))
		end = min(num*perPage, len(posts))
	}
	p := &Pager{
		Page:       num,
		PerPage:    perPage,
		Posts:      posts[start:end:end],
		TotalPosts: len(posts),
		TotalPages: totalPages,
	}
	if num > 1 {
		p.PreviousPage = num - 1
		p.PreviousPagePath = PagePath(groupType, value, num-1)
	}
	if num < totalPages {
		p.NextPage = num + 1
		p.NextPagePath = PagePath(groupType, value, num+1)
	}
	return p
}
