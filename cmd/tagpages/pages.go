package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eringen/tagpages"
)

func newPagesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the tag pages the site would generate",
		Example: `  tagpages pages
  tagpages pages --config site/_config.yml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSite(opts)
			if err != nil {
				return err
			}
			defer s.store.Close()
			reg, err := s.generate()
			if err != nil {
				return err
			}
			return printPages(cmd.OutOrStdout(), reg.Pages())
		},
	}
}

// printPages writes one line per page: path, page/total and post slugs.
func printPages(w io.Writer, pages []*tagpages.Page) error {
	for _, p := range pages {
		slugs := make([]string, 0, len(p.Pager.Posts))
		for _, post := range p.Pager.Posts {
			if bp, ok := post.(tagpages.BlogPost); ok {
				slugs = append(slugs, bp.Slug)
			}
		}
		if _, err := fmt.Fprintf(w, "%s\t%d/%d\t%s\n", p.Path(), p.Pager.Page, p.Pager.TotalPages, strings.Join(slugs, ",")); err != nil {
			return err
		}
	}
	return nil
}

func newSitemapCmd(opts *rootOptions) *cobra.Command {
	var baseURL string
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Write a sitemap of the tag pages to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSite(opts)
			if err != nil {
				return err
			}
			defer s.store.Close()
			reg, err := s.generate()
			if err != nil {
				return err
			}
			if baseURL == "" {
				baseURL = s.cfg.URL
			}
			return reg.WriteSitemap(cmd.OutOrStdout(), baseURL)
		},
	}
	cmd.Flags().StringVar(&baseURL, "base-url", "", "site URL (defaults to url in the config)")
	return cmd
}
