// Package commands implements the captray command line: a headless view of
// the recent-items scan and the projected tray menu.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ytget/captray/internal/config"
)

// CLI represents the command line interface for captray.
type CLI struct {
	rootCmd *cobra.Command
	out     io.Writer
	version string
	logger  zerolog.Logger
}

// New creates the CLI. Output goes to out; logs go to stderr.
func New(version string, out io.Writer) *CLI {
	c := &CLI{
		out:     out,
		version: version,
		logger:  zerolog.Nop(),
	}

	rootCmd := &cobra.Command{
		Use:           "captray",
		Short:         "Inspect recent captures and the tray menu",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			c.logger = newLogger(verbose)
		},
	}

	rootCmd.PersistentFlags().String("base", config.DefaultRecordingsBasePath(), "Directory holding recordings and exports")
	rootCmd.PersistentFlags().String("recordings", "", "Recordings root (defaults to <base>/recordings)")
	rootCmd.PersistentFlags().String("screenshots", "", "Screenshots root (defaults to <base>/exports/screenshot)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.SetOut(out)
	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newScanCmd())
	rootCmd.AddCommand(c.newMenuCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// roots resolves the recordings and screenshots roots from the flags.
func roots(cmd *cobra.Command) (string, string) {
	base, _ := cmd.Flags().GetString("base")
	recordings, _ := cmd.Flags().GetString("recordings")
	screenshots, _ := cmd.Flags().GetString("screenshots")

	if recordings == "" {
		recordings = config.RecordingsRootIn(base)
	}
	if screenshots == "" {
		screenshots = config.ScreenshotsRootIn(base)
	}
	return recordings, screenshots
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
