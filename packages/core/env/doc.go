// Package env loads example values for envsync.
//
// It provides functionality for:
//   - Loading example values from a dotenv-format file (--examples-file)
//   - Merging example sources with later sources taking precedence
package env
