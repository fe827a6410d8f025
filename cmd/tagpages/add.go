package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/tagpages"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	var post tagpages.BlogPost
	var tags string
	var draft bool
	cmd := &cobra.Command{
		Use:   "add <slug>",
		Short: "Add or update a post in the site database",
		Args:  cobra.ExactArgs(1),
		Example: `  tagpages add hello-world --title "Hello" --date 2024-01-05 --tags go,web`,
		RunE: func(cmd *cobra.Command, args []string) error {
			post.Slug = args[0]
			post.Tags = strings.Split(tags, ",")
			post.Published = !draft
			if post.Date == "" {
				post.Date = time.Now().Format("2006-01-02")
			}
			if _, err := time.Parse("2006-01-02", post.Date); err != nil {
				return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", post.Date)
			}
			s, err := openSite(opts)
			if err != nil {
				return err
			}
			defer s.store.Close()
			if err := s.store.SavePost(post); err != nil {
				return fmt.Errorf("tagpages: save post: %w", err)
			}
			s.log.Info().Str("slug", post.Slug).Strs("tags", post.Tags).Msg("saved post")
			return nil
		},
	}
	cmd.Flags().StringVar(&post.Title, "title", "", "post title")
	cmd.Flags().StringVar(&post.Date, "date", "", "publish date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&post.Summary, "summary", "", "post summary")
	cmd.Flags().StringVar(&post.Content, "content", "", "post body")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags")
	cmd.Flags().BoolVar(&draft, "draft", false, "save as unpublished")
	return cmd
}
