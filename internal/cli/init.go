package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geocine/pandoc-jekyll/internal/config"
	"github.com/geocine/pandoc-jekyll/internal/utils"
)

const configHeader = `# pandoc-jekyll configuration
#
# Every value can be overridden from the environment, for example
# PANDOC_JEKYLL_LOG__LEVEL=debug or PANDOC_JEKYLL_GALLERY__STRICT_ITEMS=true.
#
# [directives] disable takes built-in names: tags, cover, summary, lang.
# Extra directives are added as:
#
#   [[directives.extra]]
#   prefix = "#+DATE: "
#   key = "date"

`

// InitOptions captures options for writing a new config file
type InitOptions struct {
	Path  string // default: pandoc-jekyll.toml
	Force bool   // overwrite an existing file
}

// Init writes a default configuration file
func Init(opts InitOptions) (string, error) {
	if opts.Path == "" {
		opts.Path = config.DefaultFileName
	}

	if utils.Exists(opts.Path) && !opts.Force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", opts.Path)
	}

	data, err := config.NewDefaultConfig().Encode()
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	if err := utils.WriteFile(opts.Path, append([]byte(configHeader), data...)); err != nil {
		return "", err
	}
	return opts.Path, nil
}

// NewCmdInit creates the init command
func NewCmdInit() *cobra.Command {
	var opts InitOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.DefaultFileName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := Init(opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Path, "path", "p", config.DefaultFileName, "where to write the config file")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "overwrite an existing file")

	return cmd
}
