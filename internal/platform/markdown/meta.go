package markdown

import (
	"fmt"
	"time"
)

// Helpers for reading loosely typed frontmatter values.

func AsString(v any) string {
	if v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}

func AsFloat(v any) float64 {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	case float32:
		return float64(x)
	case string:
		var out float64
		_, _ = fmt.Sscanf(x, "%f", &out)
		return out
	default:
		return 0
	}
}

func AsInt(v any) int {
	return int(AsFloat(v))
}

func AsStringSlice(v any) []string {
	if v == nil {
		return nil
	}
	switch x := v.(type) {
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return nil
	}
}

// AsTime accepts RFC3339 strings as well as values yaml.v3 already decoded.
func AsTime(v any) time.Time {
	switch x := v.(type) {
	case time.Time:
		return x.UTC()
	case string:
		t, err := time.Parse(time.RFC3339, x)
		if err != nil {
			return time.Time{}
		}
		return t.UTC()
	default:
		return time.Time{}
	}
}
