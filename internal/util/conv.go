package util

import (
	"strconv"
)

// ParseIndex parses a non-negative path index, returning -1 when it is not one.
func ParseIndex(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return -1
	}
	return i
}

// ParsePage parses a 1-based page number, falling back to 1.
func ParsePage(s string) int {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 {
		return 1
	}
	return p
}
