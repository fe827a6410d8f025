package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eringen/tagpages"
)

// version is set at build time via ldflags.
var version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "tagpages",
		Short:         "Generate paginated tag pages for a blog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "_config.yml", "site configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides log_level in the config)")

	cmd.AddCommand(
		newPagesCmd(opts),
		newSitemapCmd(opts),
		newAddCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tagpages version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("tagpages %s\n", version)
		},
	}
}

// newLogger writes human-readable logs to stderr so stdout stays clean
// for command output.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// site is everything a command needs after loading configuration.
type site struct {
	cfg   tagpages.SiteConfig
	log   zerolog.Logger
	store *tagpages.Store
}

func openSite(opts *rootOptions) (*site, error) {
	cfg, err := tagpages.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	log := newLogger(level)
	store, err := tagpages.NewStore(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("tagpages: init store: %w", err)
	}
	log.Debug().Str("database", cfg.Database).Int("paginate", int(cfg.Paginate)).Msg("site loaded")
	return &site{cfg: cfg, log: log, store: store}, nil
}

// generate runs the tag generator over the store's published posts.
func (s *site) generate() (*tagpages.Registry, error) {
	idx, err := s.store.TagIndex()
	if err != nil {
		return nil, err
	}
	reg := tagpages.NewRegistry()
	gen := tagpages.NewFromConfig(s.cfg, tagpages.WithLogger(s.log))
	if err := gen.Generate(idx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}
