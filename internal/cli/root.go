// Package cli provides the pandoc-jekyll commands.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/geocine/pandoc-jekyll/internal/config"
	"github.com/geocine/pandoc-jekyll/internal/filter"
	"github.com/geocine/pandoc-jekyll/internal/logging"
	"github.com/geocine/pandoc-jekyll/internal/version"
)

// NewCmdRoot creates the root command. Run without a subcommand it is the
// pandoc filter: JSON AST on stdin, filtered AST on stdout.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pandoc-jekyll [target-format]",
		Short: "Pandoc JSON filter that prepares org documents for Jekyll",
		Long: `pandoc-jekyll reads a pandoc JSON AST on stdin and writes it back on stdout.

Org directives (#+TAGS:, #+COVER:, #+SUMMARY:, #+LANG:) become document
metadata and json gallery blocks are rendered as html.

Use it as a pandoc filter:
  pandoc post.org -t html --filter pandoc-jekyll`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, log, err := newFilter(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				log.Debug("target format", "format", args[0])
			}
			_, err = f.Run(cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
	}

	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ./"+config.DefaultFileName+")")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	cmd.SetVersionTemplate("pandoc-jekyll version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	cmd.AddCommand(NewCmdFrontMatter())
	cmd.AddCommand(NewCmdDiff())
	cmd.AddCommand(NewCmdInit())
	cmd.AddCommand(NewCmdVersion())

	return cmd
}

// loadConfig resolves the configuration and the logger for cmd
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, used, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Log.Level = "debug"
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Log.Color = logging.ColorNever
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(logging.Options{
		Level:  level,
		Format: cfg.Log.Format,
		Color:  cfg.Log.Color,
		Writer: cmd.ErrOrStderr(),
	})
	if used != "" {
		log.Debug("configuration loaded", "path", used)
	} else {
		log.Debug("no configuration file, using defaults")
	}
	return cfg, log, nil
}

func newFilter(cmd *cobra.Command) (*filter.Filter, *slog.Logger, error) {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	f, err := filter.New(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("filter ready", "stages", f.Stages())
	return f, log, nil
}
