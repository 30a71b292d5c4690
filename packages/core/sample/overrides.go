package sample

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedOverride is wrapped by OverrideError.
var ErrMalformedOverride = errors.New("expected VAR=VALUE")

// OverrideError reports an example argument that could not be parsed.
type OverrideError struct {
	Entry string
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("invalid example %q: %v", e.Entry, ErrMalformedOverride)
}

func (e *OverrideError) Unwrap() error {
	return ErrMalformedOverride
}

// ParseOverrides builds an override map from VAR=VALUE entries. The entry is
// split on its first '=', so the value may contain further '=' characters.
// Later entries win over earlier ones with the same name.
func ParseOverrides(entries []string) (map[string]string, error) {
	overrides := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			return nil, &OverrideError{Entry: entry}
		}
		overrides[key] = value
	}
	return overrides, nil
}
