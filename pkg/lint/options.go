package lint

// Rule options come from smartgen.yaml (lint.rules.<ID>) and are decoded
// untyped, so lists arrive as []any.

// GetStringOption returns opts[key] when it is a string, else defaultVal.
func GetStringOption(opts map[string]any, key string, defaultVal string) string {
	if s, ok := opts[key].(string); ok {
		return s
	}
	return defaultVal
}

// GetStringSliceOption returns opts[key] as a list of strings. A lone string
// is a one-element list; non-string elements are dropped.
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) []string {
	switch v := opts[key].(type) {
	case []string:
		return v
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return defaultVal
}
