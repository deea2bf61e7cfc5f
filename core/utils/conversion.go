package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Clean returns the trimmed text of a registry value.
// Table API values may be reference objects carrying a display_value and a raw
// value; the display value is preferred, then the raw value.
func Clean(val any) string {
	if obj, ok := val.(map[string]any); ok {
		if dv, ok := obj["display_value"]; ok {
			return strings.TrimSpace(ToString(dv))
		}
		if v, ok := obj["value"]; ok {
			return strings.TrimSpace(ToString(v))
		}
		return ""
	}
	return strings.TrimSpace(ToString(val))
}

// NormalizeBool maps the textual booleans "True"/"true" and "False"/"false" to
// "true" and "false". Any other value is returned unchanged.
func NormalizeBool(val string) string {
	switch val {
	case "True", "true":
		return "true"
	case "False", "false":
		return "false"
	default:
		return val
	}
}
