// Package cli provides the command-line interface
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kokjohn0824/cat-facts-cli/internal/config"
	clierrors "github.com/kokjohn0824/cat-facts-cli/internal/errors"
	"github.com/kokjohn0824/cat-facts-cli/internal/i18n"
	"github.com/kokjohn0824/cat-facts-cli/internal/logging"
	"github.com/kokjohn0824/cat-facts-cli/internal/ui"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds the global flags and the state derived from them
type rootOptions struct {
	cfgFile string
	verbose bool
	debug   bool
	quiet   bool
	noColor bool

	cfg    *config.Config
	logger *log.Logger
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "cat-facts-cli",
		Short:         i18n.CmdRootShort,
		Long:          i18n.CmdRootLong,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			opts.setup(cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.logger.Debug(i18n.LogGreeting)
			return Greet(cmd.OutOrStdout())
		},
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf(i18n.VersionTemplate, Version, Commit, BuildDate))

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", i18n.FlagConfig)
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, i18n.FlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, i18n.FlagDebug)
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, i18n.FlagQuiet)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, i18n.FlagNoColor)

	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup loads the configuration and builds the logger. Configuration
// problems are logged and the defaults are used instead.
func (o *rootOptions) setup(stderr io.Writer) {
	cfg, err := config.Load(o.cfgFile)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		err = clierrors.ErrLoadConfig(err)
		cfg = config.DefaultConfig()
	}
	o.cfg = cfg

	color := ui.ColorEnabled(asFile(stderr), o.noColor || cfg.NoColor)
	ui.ApplyColorMode(color)

	level := logging.ResolveLevel(cfg.LogLevel, logging.Flags{
		Debug:   o.debug,
		Verbose: o.verbose,
		Quiet:   o.quiet,
	})
	o.logger = logging.New(stderr, level, color)

	if err != nil {
		o.logger.Warn(i18n.LogConfigFallback, "err", err)
		return
	}
	o.logger.Debug(i18n.LogConfigLoaded, "file", cfg.File, "log_level", cfg.LogLevel)
}

// Greet writes the greeting line to w
func Greet(w io.Writer) error {
	if _, err := fmt.Fprintln(w, i18n.MsgGreeting); err != nil {
		return clierrors.ErrWriteOutput(err)
	}
	return nil
}

// Run executes the command tree with args and returns the process exit code
func Run(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(stderr, err.Error())
		return clierrors.ExitCode(err)
	}
	return 0
}

// Execute runs the root command against the process arguments
func Execute() {
	if code := Run(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

func asFile(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
