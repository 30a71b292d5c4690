package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abdul-hamid-achik/envsync/packages/core/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRun(dryRun bool) *Run {
	return &Run{
		EnvFile:    "fixtures/.env",
		SampleFile: "fixtures/.env.sample",
		DryRun:     dryRun,
		Result:     sample.Render("# db\nFOO=1\nBAR=2\n", map[string]string{"BAR": "123", "NOPE": "x"}),
	}
}

func TestConsoleFormatter_FormatStart(t *testing.T) {
	var out bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&out), WithNoColor(true))

	f.FormatStart(newRun(false))
	assert.Equal(t, "Creating sample env file: fixtures/.env.sample\n", out.String())

	out.Reset()
	f.FormatStart(newRun(true))
	assert.Empty(t, out.String())
}

func TestConsoleFormatter_FormatResult(t *testing.T) {
	t.Run("quiet by default", func(t *testing.T) {
		var out bytes.Buffer
		f := NewConsoleFormatter(WithWriter(&out), WithNoColor(true))
		f.FormatResult(newRun(false))
		assert.Empty(t, out.String())
	})

	t.Run("verbose summary", func(t *testing.T) {
		var out bytes.Buffer
		f := NewConsoleFormatter(WithWriter(&out), WithVerbose(true), WithNoColor(true))
		f.FormatResult(newRun(false))

		s := out.String()
		assert.Contains(t, s, "fixtures/.env -> fixtures/.env.sample")
		assert.Contains(t, s, "Variables: 2 (1 examples, 1 placeholders)")
		assert.Contains(t, s, "1 comment or blank lines")
		assert.Contains(t, s, "example for NOPE matches no variable")
	})

	t.Run("dry run prints sample text", func(t *testing.T) {
		var out, errOut bytes.Buffer
		f := NewConsoleFormatter(WithWriter(&out), WithErrWriter(&errOut), WithVerbose(true), WithNoColor(true))
		f.FormatResult(newRun(true))

		assert.Equal(t, "# db\nFOO=<FOO>\nBAR=123\n", out.String())
		assert.Contains(t, errOut.String(), "Variables: 2")
	})
}

func TestConsoleFormatter_FormatError(t *testing.T) {
	var errOut bytes.Buffer
	f := NewConsoleFormatter(WithErrWriter(&errOut), WithNoColor(true))
	f.FormatError(errors.New("could not read env file .env"))
	assert.Equal(t, "Error: could not read env file .env\n", errOut.String())
}

func TestJSONFormatter_FormatResult(t *testing.T) {
	var out bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&out))

	f.FormatStart(newRun(false))
	f.FormatResult(newRun(false))

	var doc JSONOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "fixtures/.env.sample", doc.SampleFile)
	assert.Equal(t, 3, doc.Lines)
	assert.Equal(t, 2, doc.Variables)
	assert.Equal(t, 1, doc.Examples)
	assert.Equal(t, 1, doc.Placeholders)
	assert.Equal(t, []string{"NOPE"}, doc.UnusedExamples)
	assert.Empty(t, doc.Content)
}

func TestJSONFormatter_DryRunIncludesContent(t *testing.T) {
	var out bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&out))
	f.FormatResult(newRun(true))

	var doc JSONOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.True(t, doc.DryRun)
	assert.Equal(t, "# db\nFOO=<FOO>\nBAR=123\n", doc.Content)
}

func TestJSONFormatter_FormatError(t *testing.T) {
	var out bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&out))
	f.FormatError(errors.New("boom"))
	assert.JSONEq(t, `{"error":"boom"}`, out.String())
}
