package tagpages

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageComponent(t *testing.T) {
	views := Views{
		TagPage: func(p *Page) templ.Component {
			return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s %d/%d next=%s", p.GroupValue(), p.Pager.Page, p.Pager.TotalPages, p.Pager.NextPagePath)
				return err
			})
		},
	}

	reg := NewRegistry()
	require.NoError(t, New(1).Generate(TagIndex{"go": datedPosts("2024-01-01", "2024-01-02")}, reg))

	var buf bytes.Buffer
	require.NoError(t, reg.Pages()[0].Component(views).Render(context.Background(), &buf))
	assert.Equal(t, "go 1/2 next=/tags/go/page2", buf.String())
}

func TestPageComponentWithoutView(t *testing.T) {
	p := &Page{Dir: "/tags/go"}
	assert.Nil(t, p.Component(Views{}))
}
