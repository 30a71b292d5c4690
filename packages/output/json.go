package output

import (
	"encoding/json"
	"io"
	"os"
)

// JSONOutput is the JSON document written for a run
type JSONOutput struct {
	EnvFile        string   `json:"envFile"`
	SampleFile     string   `json:"sampleFile"`
	DryRun         bool     `json:"dryRun,omitempty"`
	Lines          int      `json:"lines"`
	Variables      int      `json:"variables"`
	Examples       int      `json:"examples"`
	Placeholders   int      `json:"placeholders"`
	Passthrough    int      `json:"passthrough"`
	UnusedExamples []string `json:"unusedExamples,omitempty"`
	Content        string   `json:"content,omitempty"`
}

// JSONError is written when a run fails
type JSONError struct {
	Error string `json:"error"`
}

// JSONFormatter formats runs as JSON, one document per line
type JSONFormatter struct {
	writer io.Writer
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatStart(run *Run) {}

func (f *JSONFormatter) FormatResult(run *Run) {
	r := run.Result
	doc := JSONOutput{
		EnvFile:        run.EnvFile,
		SampleFile:     run.SampleFile,
		DryRun:         run.DryRun,
		Lines:          r.Lines,
		Variables:      r.Variables,
		Examples:       r.Overridden,
		Placeholders:   r.Placeholders,
		Passthrough:    r.Passthrough,
		UnusedExamples: r.UnusedOverrides,
	}
	if run.DryRun {
		doc.Content = r.Text
	}
	f.encode(doc)
}

func (f *JSONFormatter) FormatWatch(envFile string) {}

func (f *JSONFormatter) FormatError(err error) {
	f.encode(JSONError{Error: err.Error()})
}

func (f *JSONFormatter) encode(v any) {
	enc := json.NewEncoder(f.writer)
	_ = enc.Encode(v)
}
