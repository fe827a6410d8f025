package tagpages

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SiteConfig holds the site settings read from _config.yml.
type SiteConfig struct {
	URL      string       `yaml:"url"`       // Canonical URL (default "http://localhost:3000")
	Database string       `yaml:"database"`  // SQLite path (default "data/blog.db")
	LogLevel string       `yaml:"log_level"` // zerolog level (default "info")
	Paginate PageSize     `yaml:"paginate"`  // Posts per tag page; 0 disables pagination
	Defaults []DefaultSet `yaml:"defaults"`  // Front-matter defaults applied to generated pages
}

// DefaultSet is one entry of the defaults list: values applied to every
// page whose path falls under Scope.Path.
type DefaultSet struct {
	Scope  DefaultScope   `yaml:"scope"`
	Values map[string]any `yaml:"values"`
}

// DefaultScope selects pages by path prefix. An empty path matches all pages.
type DefaultScope struct {
	Path string `yaml:"path"`
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Database == "" {
		c.Database = "data/blog.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// LoadConfig reads and parses the YAML site configuration at path.
func LoadConfig(path string) (SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("tagpages: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses a YAML site configuration and fills in defaults.
func ParseConfig(data []byte) (SiteConfig, error) {
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("tagpages: parse config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// PageSize is the paginate setting. It accepts an integer or a numeric
// string; anything else leaves pagination disabled.
type PageSize int

// Enabled reports whether posts should be split across pages.
func (s PageSize) Enabled() bool {
	return s > 0
}

// UnmarshalYAML never fails: a bad paginate value is cosmetic and must not
// break the build.
func (s *PageSize) UnmarshalYAML(node *yaml.Node) error {
	*s = 0
	if node.Kind != yaml.ScalarNode {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(node.Value))
	if err != nil || n < 0 {
		return nil
	}
	*s = PageSize(n)
	return nil
}

