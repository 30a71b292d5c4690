package cmd

import (
	"errors"

	"github.com/abdul-hamid-achik/envsync/packages/core/sample"
)

// Exit codes for envsync CLI
const (
	// ExitSuccess indicates the sample file was written
	ExitSuccess = 0

	// ExitFailure indicates an unclassified error
	ExitFailure = 1

	// ExitInputError indicates the env file or examples file could not be read
	ExitInputError = 2

	// ExitOutputError indicates the sample file could not be written
	ExitOutputError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// reportedError marks an error that a formatter has already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

// ExitCode maps an error returned by the CLI to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	if errors.Is(err, sample.ErrMalformedOverride) || errors.Is(err, sample.ErrNoFileName) {
		return ExitUsageError
	}

	var fileErr *sample.FileError
	if errors.As(err, &fileErr) {
		if fileErr.Op == sample.OpRead {
			return ExitInputError
		}
		return ExitOutputError
	}

	return ExitFailure
}
