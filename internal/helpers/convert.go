// Package helpers provides small conversion utilities shared by the HTTP
// layer and the query builder: numeric clamping and parsing of optional
// query parameters.
package helpers

import (
	"fmt"
	"strconv"
	"strings"
)

// clampInt restricts v to the range [minVal, maxVal].
// Used internally for int-based clamping.
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// ClampInt restricts v to the range [lowerLimit, upperLimit].
func ClampInt(v, lowerLimit, upperLimit int) int {
	return clampInt(v, lowerLimit, upperLimit)
}

// ParseOptionalInt parses s as a base-10 int. An empty (or blank) s yields
// nil with no error.
func ParseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return &v, nil
}

// ParseOptionalBool accepts true/false, 1/0 and the other spellings
// understood by strconv.ParseBool. An empty s yields nil.
func ParseOptionalBool(s string) (*bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("invalid boolean %q", s)
	}
	return &v, nil
}

// ParseID parses a positive int64 record identity from a path segment.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// SplitList splits a comma separated parameter, dropping blank items.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
