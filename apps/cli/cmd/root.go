package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

type rootOptions struct {
	sampleFile   string
	examples     []string
	examplesFile string
	configFile   string
	output       string
	dryRun       bool
	watch        bool
	verbose      bool
	noColor      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "envsync [FILE]",
		Short: "Generate a secret-free .env.sample from a .env file",
		Long: `envsync reads a .env file and writes a sample counterpart in which every
value is replaced by a <NAME> placeholder or an example value you supply.
Comments, blank lines and variable order are kept, so the sample can be
committed next to the real, secret-bearing file.

FILE defaults to .env. The sample is written next to it as FILE.sample
unless --sample-file is given.

Examples:
  envsync
  envsync config/.env
  envsync .env --sample-file .env.example
  envsync .env -e DB_HOST=localhost -e DB_PORT=5432
  envsync .env --examples-file .env.examples
  envsync .env --dry-run
  envsync .env --watch`,
		Args: func(cmd *cobra.Command, args []string) error {
			return withExitCode(ExitUsageError, cobra.MaximumNArgs(1)(cmd, args))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateCommand(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.sampleFile, "sample-file", "s", "", "Sample file to write (default: FILE with .sample appended)")
	cmd.Flags().StringArrayVarP(&opts.examples, "example", "e", nil, "Example value for a variable as VAR=VALUE (repeatable)")
	cmd.Flags().StringVar(&opts.examplesFile, "examples-file", "", "Dotenv file with example values")
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Path to config file (default: .envsync.yaml if present)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "console", "Output format: console, json")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the sample to stdout instead of writing it")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate the sample whenever FILE changes")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print a summary of the generated sample")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return withExitCode(ExitUsageError, err)
	})

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

func Execute(v, bt string) {
	version = v
	buildTime = bt

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd()
	rootCmd.Version = version
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		stop()
		os.Exit(ExitCode(err))
	}
}
