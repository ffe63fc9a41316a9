package entity

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Int reads an integer field. Missing or unreadable values are 0. Numeric
// strings are accepted because older snapshots stored ids as strings.
func Int(items map[string]any, key string) int {
	switch v := items[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return int(n)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// String reads a string field. Missing values are "", numbers and booleans
// are formatted.
func String(items map[string]any, key string) string {
	switch v := items[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}
