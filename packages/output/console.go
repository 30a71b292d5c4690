package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer    io.Writer
	errWriter io.Writer
	verbose   bool
	noColor   bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer:    os.Stdout,
		errWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithErrWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.errWriter = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// FormatStart announces the sample file about to be written.
func (f *ConsoleFormatter) FormatStart(run *Run) {
	if run.DryRun {
		return
	}
	fmt.Fprintf(f.writer, "Creating sample env file: %s\n", run.SampleFile)
}

// FormatResult prints the sample text for dry runs, and a summary of the
// rendered lines in verbose mode.
func (f *ConsoleFormatter) FormatResult(run *Run) {
	if run.DryRun {
		fmt.Fprint(f.writer, run.Result.Text)
	}
	if !f.verbose {
		return
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	r := run.Result
	out := f.writer
	if run.DryRun {
		out = f.errWriter
	}

	fmt.Fprintf(out, "  %s %s -> %s\n", green("✓"), run.EnvFile, run.SampleFile)
	fmt.Fprintf(out, "    Variables: %d (%s, %s)\n", r.Variables,
		cyan(fmt.Sprintf("%d examples", r.Overridden)),
		cyan(fmt.Sprintf("%d placeholders", r.Placeholders)))
	fmt.Fprintf(out, "    Kept:      %d comment or blank lines\n", r.Passthrough)

	for _, name := range r.UnusedOverrides {
		fmt.Fprintf(out, "    %s example for %s matches no variable\n", yellow("!"), name)
	}
}

// FormatWatch announces that envFile is being watched.
func (f *ConsoleFormatter) FormatWatch(envFile string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(f.writer, "\n%s\n", cyan("Watching "+envFile+" for changes... (Ctrl+C to exit)"))
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.errWriter, "%s %v\n", red("Error:"), err)
}
