package feishu

import (
	"encoding/json"
	"strconv"
)

// missingFieldValue is the display placeholder for absent or empty fields.
const missingFieldValue = "-"

// fieldString coerces a Bitable field value to a display string, trying
// each key in order. Bitable returns different shapes per field type:
// plain strings, numbers, booleans, option objects, and arrays of text
// segments or option objects. Absent or empty values yield "-".
func fieldString(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		value, ok := fields[key]
		if !ok {
			continue
		}
		if s := coerceValue(value); s != "" {
			return s
		}
	}
	return missingFieldValue
}

func coerceValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case []any:
		return coerceArray(v)
	case map[string]any:
		return coerceObject(v)
	}
	return ""
}

// coerceArray handles multi-segment text and multi-option fields: the
// first element with usable text wins. An array of opaque objects falls
// back to the first element's JSON encoding.
func coerceArray(items []any) string {
	for _, item := range items {
		switch v := item.(type) {
		case map[string]any:
			if s := coerceObject(v); s != "" {
				return s
			}
		case string:
			if v != "" {
				return v
			}
		}
	}

	if len(items) > 0 {
		if obj, ok := items[0].(map[string]any); ok {
			if data, err := json.Marshal(obj); err == nil && string(data) != "{}" {
				return string(data)
			}
		}
	}
	return ""
}

// coerceObject pulls the display text out of option-style objects.
// Bitable uses different property names depending on the field type.
func coerceObject(obj map[string]any) string {
	for _, prop := range []string{"text", "name", "option_name", "label"} {
		if s, ok := obj[prop].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
