package core

// AnyToInt converts common numeric forms to int, returning 0 for anything
// else. Floats are truncated toward zero. Numeric strings are unsupported.
// The uint64 case covers YAML param files, which decode non-negative
// integers that way.
func AnyToInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case uint64:
		return int(t)
	case float64:
		return int(t)
	default:
		return 0
	}
}
