package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSiteConfig(t *testing.T, paginate string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "_config.yml")
	cfg := "url: https://blog.example\n" +
		"database: " + filepath.Join(dir, "data", "blog.db") + "\n" +
		"log_level: error\n" +
		"paginate: " + paginate + "\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPagesCommand(t *testing.T) {
	cfg := writeSiteConfig(t, "2")

	for _, args := range [][]string{
		{"add", "p0", "--date", "2024-01-01", "--tags", "go"},
		{"add", "p1", "--date", "2024-01-05", "--tags", "go,web"},
		{"add", "p2", "--date", "2024-01-03", "--tags", "go"},
		{"add", "p3", "--date", "2024-01-05", "--tags", "go"},
		{"add", "p4", "--date", "2024-01-02", "--tags", "go"},
		{"add", "draft", "--date", "2024-02-01", "--tags", "go", "--draft"},
	} {
		_, err := run(t, append(args, "--config", cfg)...)
		require.NoError(t, err)
	}

	out, err := run(t, "pages", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "/tags/go\t1/3\tp1,p3\n"+
		"/tags/go/page2\t2/3\tp2,p4\n"+
		"/tags/go/page3\t3/3\tp0\n"+
		"/tags/web\t1/1\tp1\n", out)
}

func TestSitemapCommand(t *testing.T) {
	cfg := writeSiteConfig(t, "nope")
	_, err := run(t, "add", "hello", "--date", "2024-01-05", "--tags", "go", "--config", cfg)
	require.NoError(t, err)

	out, err := run(t, "sitemap", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "<loc>https://blog.example/tags/go/</loc>")
	assert.NotContains(t, out, "page2")
}

func TestAddRejectsBadDate(t *testing.T) {
	cfg := writeSiteConfig(t, "2")
	_, err := run(t, "add", "bad", "--date", "Jan 5", "--config", cfg)
	assert.ErrorContains(t, err, "invalid --date")
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "pages", "--config", filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorContains(t, err, "read config")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tagpages dev\n", out)
}
