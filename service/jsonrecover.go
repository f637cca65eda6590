package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/susemi/yearend-why/dto"
)

var (
	blankLineRuns = regexp.MustCompile(`\n\s*\n`)
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// RecoverJSON pulls one JSON object out of generation output. The output is
// usually clean JSON but occasionally arrives wrapped in commentary or with
// trailing-comma noise, so parsing runs in two stages:
//
//  1. strict parse of the whole text;
//  2. slice from the first '{' to the last '}', collapse blank-line runs,
//     strip commas dangling before '}' or ']', and parse again.
//
// The slice is a plain delimiter scan, not a balanced-brace parse; stray
// braces outside the genuine object will mis-extract. The repair pass covers
// only those two defect classes so genuinely malformed output still fails.
// On failure the original text comes back inside *dto.UnparseableError; no
// default object is ever substituted here.
func RecoverJSON(raw string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err == nil {
		return obj, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &dto.UnparseableError{Raw: raw}
	}

	cleaned := raw[start : end+1]
	cleaned = blankLineRuns.ReplaceAllString(cleaned, "\n")
	cleaned = trailingComma.ReplaceAllString(cleaned, "$1")

	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return nil, &dto.UnparseableError{Raw: raw}
	}
	return obj, nil
}
