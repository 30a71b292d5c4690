package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/envsync/packages/core/config"
	"github.com/abdul-hamid-achik/envsync/packages/core/env"
	"github.com/abdul-hamid-achik/envsync/packages/core/sample"
	"github.com/abdul-hamid-achik/envsync/packages/output"
	"github.com/spf13/cobra"
)

// Formatter interface for all output formatters
type Formatter interface {
	FormatStart(run *output.Run)
	FormatResult(run *output.Run)
	FormatWatch(envFile string)
	FormatError(err error)
}

// job is a fully resolved generation request.
type job struct {
	envFile    string
	sampleFile string
	overrides  map[string]string
	dryRun     bool
}

func generateCommand(cmd *cobra.Command, opts *rootOptions, args []string) error {
	// Load config from file (if present) and apply CLI overrides
	fileConfig, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return withExitCode(ExitUsageError, err)
	}

	cfg := resolveConfig(cmd, opts, fileConfig, args)

	var formatter Formatter
	switch strings.ToLower(opts.output) {
	case "json":
		formatter = output.NewJSONFormatter(output.JSONWithWriter(cmd.OutOrStdout()))
	case "console", "":
		formatter = output.NewConsoleFormatter(
			output.WithWriter(cmd.OutOrStdout()),
			output.WithErrWriter(cmd.ErrOrStderr()),
			output.WithVerbose(cfg.GetVerbose()),
			output.WithNoColor(cfg.GetNoColor()),
		)
	default:
		return withExitCode(ExitUsageError, fmt.Errorf("unknown output format %q (use console or json)", opts.output))
	}

	j, err := resolveJob(cfg, opts)
	if err != nil {
		formatter.FormatError(err)
		return &reportedError{err: err}
	}

	if err := runJob(cmd.Context(), j, formatter); err != nil {
		formatter.FormatError(err)
		return &reportedError{err: err}
	}

	if !opts.watch {
		return nil
	}

	return watchEnvFile(cmd.Context(), j.envFile, formatter, func(ctx context.Context) error {
		return runJob(ctx, j, formatter)
	})
}

// resolveConfig merges the flags that were set on the command line over
// the config file.
func resolveConfig(cmd *cobra.Command, opts *rootOptions, fileConfig *config.Config, args []string) *config.Config {
	base := *fileConfig
	cliConfig := &config.Config{}

	// A sample path from the config belongs to the config's env file
	if len(args) > 0 {
		base.SampleFile = ""
		cliConfig.EnvFile = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("sample-file") {
		cliConfig.SampleFile = opts.sampleFile
	}
	if flags.Changed("examples-file") {
		cliConfig.ExamplesFile = opts.examplesFile
	}
	if flags.Changed("verbose") {
		cliConfig.Verbose = config.BoolPtr(opts.verbose)
	}
	if flags.Changed("no-color") {
		cliConfig.NoColor = config.BoolPtr(opts.noColor)
	}

	return base.Merge(cliConfig)
}

// resolveJob turns the merged config and the example flags into a job.
func resolveJob(cfg *config.Config, opts *rootOptions) (*job, error) {
	j := &job{
		envFile:    cfg.EnvFile,
		sampleFile: cfg.SampleFile,
		dryRun:     opts.dryRun,
	}
	if j.envFile == "" {
		j.envFile = config.DefaultEnvFile
	}
	if j.sampleFile == "" {
		path, err := sample.DefaultSamplePath(j.envFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, j.envFile)
		}
		j.sampleFile = path
	}

	flagExamples, err := sample.ParseOverrides(opts.examples)
	if err != nil {
		return nil, err
	}

	var fileExamples map[string]string
	if cfg.ExamplesFile != "" {
		fileExamples, err = env.LoadExamples(cfg.ExamplesFile)
		if err != nil {
			return nil, withExitCode(ExitInputError, err)
		}
	}

	j.overrides = env.MergeExamples(cfg.Examples, fileExamples, flagExamples)
	return j, nil
}

// runJob generates the sample once and reports it.
func runJob(ctx context.Context, j *job, formatter Formatter) error {
	run := &output.Run{
		EnvFile:    j.envFile,
		SampleFile: j.sampleFile,
		DryRun:     j.dryRun,
	}

	formatter.FormatStart(run)

	var err error
	if j.dryRun {
		var source string
		source, err = sample.ReadEnvFile(j.envFile)
		if err == nil {
			run.Result = sample.Render(source, j.overrides)
		}
	} else {
		run.Result, err = sample.ScrubFile(ctx, j.envFile, j.sampleFile, j.overrides)
	}
	if err != nil {
		return fmt.Errorf("error while creating sample env file: %w", err)
	}

	formatter.FormatResult(run)
	return nil
}
