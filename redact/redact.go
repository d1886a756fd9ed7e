package redact

// Redact returns a copy of value with every sensitive field replaced by the
// Redacted sentinel.
//
// The walk preserves structure: maps come back with the same keys, slices
// with the same length, and anything that is neither a map[string]any nor a
// []any passes through unchanged. Within a map, nil values and empty strings
// are left as-is (there is nothing to hide in an empty value), sensitive
// keys are replaced regardless of their value's type, and container values
// under non-sensitive keys are redacted recursively.
//
// The input is never mutated; fresh containers are allocated for every map
// and slice. Redact has no error cases and is safe for concurrent use.
func Redact(value any) any {
	switch v := value.(type) {
	case map[string]any:
		redacted := make(map[string]any, len(v))
		for key, val := range v {
			redacted[key] = redactField(key, val)
		}

		return redacted
	case []any:
		redacted := make([]any, len(v))
		for i, item := range v {
			redacted[i] = Redact(item)
		}

		return redacted
	default:
		return value
	}
}

// redactField applies the per-entry rules for a single map key/value pair.
func redactField(key string, value any) any {
	if value == nil {
		return nil
	}

	if s, ok := value.(string); ok && s == "" {
		return value
	}

	if IsSensitiveField(key) {
		return Redacted
	}

	switch value.(type) {
	case map[string]any, []any:
		return Redact(value)
	}

	return value
}
