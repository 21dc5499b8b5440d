// Package cli implements the tanaout command-line interface.
//
// The root command takes an export file and an output directory and runs the
// whole conversion: load, resolve the entity graph, build the page graph and
// write one document per page. Any failure aborts the run.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/tanaout/internal/config"
	"github.com/aidanlsb/tanaout/internal/ui"
)

// loadConfig is swapped in tests.
var loadConfig = config.Load

// Execute runs the CLI and prints any failure to stderr.
func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		printError(cmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:   "tanaout <input.json> <output-dir>",
		Short: "Convert a graph note export into outline pages",
		Long: `tanaout reads a graph-structured note export and writes one outline
document per page into an empty output directory.

A node becomes a page when it has a supertag (other than todo) or field
values. Everything else is inlined as bullets under the page that owns it.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig()
			if err != nil {
				return newError(ErrConfigInvalid, err, "Fix the config file or remove it")
			}
			if cfg == nil {
				cfg = &config.Config{}
			}
			ui.ConfigureTheme(cfg.UI.Accent)

			level, err := charmlog.ParseLevel(cfg.GetLogLevel())
			if err != nil {
				return newError(ErrConfigInvalid, err, "")
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, cfg, args[0], args[1])
		},
	}

	root.AddCommand(newVersionCmd())
	return root
}

func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	code, suggestion := errorDetails(err)
	if code != "" {
		fmt.Fprintln(w, ui.Error(fmt.Sprintf("[%s] %s", code, err)))
	} else {
		fmt.Fprintln(w, ui.Error(err.Error()))
	}
	if suggestion != "" {
		fmt.Fprintln(w, ui.Hint(suggestion))
	}
}
