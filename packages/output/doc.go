// Package output provides formatters for reporting envsync runs.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - JSON: Machine-readable JSON output
//
// Both formatters implement the same method set and are selected by the
// CLI with the --output flag.
package output
