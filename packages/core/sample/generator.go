package sample

import (
	"sort"
	"strings"
)

// Result holds the rendered sample text along with counters describing
// how each source line was handled.
type Result struct {
	Text         string
	Lines        int
	Variables    int
	Overridden   int
	Placeholders int
	Passthrough  int
	// UnusedOverrides lists override keys that matched no variable line, sorted.
	UnusedOverrides []string
}

// Generate returns the sample text for source. Variables named in overrides
// get the override value, every other variable gets a <NAME> placeholder.
func Generate(source string, overrides map[string]string) string {
	return Render(source, overrides).Text
}

// Render is Generate with line statistics.
func Render(source string, overrides map[string]string) *Result {
	result := &Result{}
	used := make(map[string]bool, len(overrides))

	var b strings.Builder
	b.Grow(len(source) + len(source)/4)

	for _, line := range splitLines(source) {
		result.Lines++

		if isPassthrough(line) {
			result.Passthrough++
			b.WriteString(line)
			b.WriteByte('\n')
			continue
		}

		name := variableName(line)
		result.Variables++

		value, ok := overrides[name]
		if ok {
			result.Overridden++
			used[name] = true
		} else {
			result.Placeholders++
			value = Placeholder(name)
		}

		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(value)
		b.WriteByte('\n')
	}

	for key := range overrides {
		if !used[key] {
			result.UnusedOverrides = append(result.UnusedOverrides, key)
		}
	}
	sort.Strings(result.UnusedOverrides)

	result.Text = b.String()
	return result
}

// Placeholder returns the value written for a variable with no example.
func Placeholder(name string) string {
	return "<" + name + ">"
}

// isPassthrough reports whether line is copied to the sample unchanged.
// Only a '#' in the very first column marks a comment.
func isPassthrough(line string) bool {
	return strings.HasPrefix(line, "#") || strings.TrimSpace(line) == ""
}

// variableName returns everything before the first '='. A line without
// '=' is its own name.
func variableName(line string) string {
	name, _, _ := strings.Cut(line, "=")
	return name
}

// splitLines splits text on '\n', dropping a trailing '\r' from each line.
// A final newline does not produce an empty last line, and empty text has
// no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
