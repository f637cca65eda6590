package service

import (
	"strconv"
	"strings"
)

// Field coercion for recovered generation objects. The generator is asked
// for exact types but occasionally returns null, strings, or scalars where
// lists belong; a single bad field must not sink the whole document parse,
// so each accessor substitutes a safe default instead of failing.

// intField reads a non-negative amount. Missing, null, or non-numeric
// values become 0. Numeric strings are accepted since the generator
// sometimes quotes amounts.
func intField(obj map[string]any, key string) int64 {
	v, ok := obj[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int64(n)
	case string:
		cleaned := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		parsed, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// stringField reads a string, empty when missing or mistyped.
func stringField(obj map[string]any, key string) string {
	v, ok := obj[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// stringListField reads a list of strings. A missing or null field is an
// empty list; a non-list value is replaced by a single diagnostic element so
// the defect stays visible downstream. Non-string elements are dropped.
func stringListField(obj map[string]any, key, diagnostic string) []string {
	v, ok := obj[key]
	if !ok || v == nil {
		return []string{}
	}
	items, ok := v.([]any)
	if !ok {
		return []string{diagnostic}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
