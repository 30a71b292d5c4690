package sample

import (
	"errors"
	"path/filepath"
	"strings"
)

// SampleSuffix is appended to the env file name to build the default sample path.
const SampleSuffix = ".sample"

// ErrNoFileName is returned when a path has no file name component to derive
// a sample path from.
var ErrNoFileName = errors.New("cannot get file name from env file path")

// DefaultSamplePath returns the sample path for envFile by appending
// SampleSuffix to its file name. The directory part is kept as written, so
// "config/.env" becomes "config/.env.sample". Trailing separators and
// trailing "." components are ignored, so "config/." becomes "config.sample".
func DefaultSamplePath(envFile string) (string, error) {
	const separators = `/` + string(filepath.Separator)

	trimmed := strings.TrimRight(envFile, separators)
	for trimmed != "" && trimmed != "." && filepath.Base(trimmed) == "." {
		trimmed = strings.TrimRight(strings.TrimSuffix(trimmed, "."), separators)
	}
	if trimmed == "" {
		return "", ErrNoFileName
	}

	switch filepath.Base(trimmed) {
	case ".", "..":
		return "", ErrNoFileName
	}
	if vol := filepath.VolumeName(trimmed); vol != "" && vol == trimmed {
		return "", ErrNoFileName
	}

	return trimmed + SampleSuffix, nil
}
