// Package cmd implements the envsync CLI commands using Cobra.
//
// The root command reads a .env file and writes a .env.sample next to it,
// replacing every value with a <NAME> placeholder or an example value given
// with --example or --examples-file.
//
// Available subcommands:
//   - init: Create a .envsync.yaml project config
//   - version: Show envsync version information
//   - completion: Generate shell completion scripts
package cmd
