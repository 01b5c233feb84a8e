package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kamusis/devguide/internal/config"
	"github.com/kamusis/devguide/internal/display"
	"github.com/kamusis/devguide/internal/logging"
	"github.com/kamusis/devguide/internal/search"
)

var (
	flagRoot     string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:          "devguide",
	Short:        "DevGuide — 開発初心者向け用語検索CLIツール",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `DevGuide searches a curated glossary, the markdown docs under docs/
and the source files under src/ of the current project.

Paths can be changed in .devguide.yaml or with DEVGUIDE_* environment
variables (also read from .env).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		newPrinter(cmd).Welcome()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", ".", "Project root holding docs/, src/ and .devguide.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Diagnostic log level: debug, info, warn or error")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session bundles what a command needs once the config is loaded.
type session struct {
	cfg      *config.Config
	log      zerolog.Logger
	searcher *search.Searcher
	out      *display.Printer
}

// newSession loads the project config for --root. Config errors are the
// only errors that escape a command and set a non-zero exit code.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(flagRoot)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	level := cfg.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	log := logging.New(level)
	log.Debug().Str("root", cfg.Root).Msg("config loaded")

	return &session{
		cfg:      cfg,
		log:      log,
		searcher: newSearcher(cfg, log),
		out:      newPrinter(cmd),
	}, nil
}

func newSearcher(cfg *config.Config, log zerolog.Logger) *search.Searcher {
	label := filepath.ToSlash(cfg.SrcDir)
	if filepath.IsAbs(cfg.SrcDir) {
		label = filepath.Base(cfg.SrcDir)
	}
	return &search.Searcher{
		GlossaryPath: cfg.GlossaryPath(),
		DocsDir:      cfg.DocsPath(),
		SrcDir:       cfg.SrcPath(),
		SrcLabel:     label,
		CodePattern:  cfg.CodePattern,
		RoutePattern: cfg.RoutePattern,
		SchemaPath:   cfg.SchemaPath(),
		Log:          log,
	}
}

func newPrinter(cmd *cobra.Command) *display.Printer {
	return display.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// report prints err as a user-facing message prefixed with what was being
// attempted. The command itself still succeeds.
func (s *session) report(what string, err error) {
	s.log.Debug().Err(err).Msg(what)
	s.out.Error(fmt.Sprintf("%s中にエラーが発生しました: %v", what, err))
}
