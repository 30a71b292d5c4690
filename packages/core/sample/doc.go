// Package sample turns a .env file into a secret-free .env.sample template.
//
// It provides functionality for:
//   - Rendering sample text, where every variable value becomes a <NAME>
//     placeholder or an explicitly supplied example value
//   - Parsing VAR=VALUE example arguments into an override map
//   - Deriving the default sample path (.env -> .env.sample)
//   - Reading the source file and writing the sample file under a lock
//
// Comments, blank lines and variable order are preserved. Values in the
// source file are never copied into the sample.
package sample
