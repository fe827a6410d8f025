package tagpages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIndexTags(t *testing.T) {
	posts := []Post{
		BlogPost{Slug: "a", Tags: []string{"go", " web ", "go"}},
		BlogPost{Slug: "b", Tags: []string{"", "Go"}},
		BlogPost{Slug: "c"},
		BlogPost{Slug: "d", Tags: []string{"go"}},
	}
	idx := IndexTags(posts)

	assert.Equal(t, []string{"Go", "go", "web"}, idx.Tags())
	assert.Equal(t, []string{"a", "d"}, blogSlugs(idx["go"]))
	assert.Equal(t, []string{"b"}, blogSlugs(idx["Go"]))
	assert.Equal(t, []string{"a"}, blogSlugs(idx["web"]))
}

func TestIndexTagsEmpty(t *testing.T) {
	assert.Empty(t, IndexTags(nil).Tags())
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{",go,web,", []string{"go", "web"}},
		{",,", nil},
		{"", nil},
		{"go, web", []string{"go", "web"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTags(tt.input), "ParseTags(%q)", tt.input)
	}
}

func TestBlogPostPublishTime(t *testing.T) {
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), BlogPost{Date: "2024-01-05"}.PublishTime())
	assert.True(t, BlogPost{Date: "someday"}.PublishTime().IsZero())
	assert.True(t, BlogPost{}.PublishTime().IsZero())
}
