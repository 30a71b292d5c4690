// Package config handles configuration loading and management for envsync.
//
// It provides functionality for:
//   - Loading configuration from .envsync.yaml, .envsync.yml or envsync.yaml
//   - Default configuration values
//   - Merging configurations with explicit values taking precedence
package config
