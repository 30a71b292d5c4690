package env

// MergeExamples combines example sources into one override map. Later
// sources win, so callers pass them from lowest to highest precedence.
func MergeExamples(sources ...map[string]string) map[string]string {
	result := make(map[string]string)
	for _, src := range sources {
		for k, v := range src {
			result[k] = v
		}
	}
	return result
}
