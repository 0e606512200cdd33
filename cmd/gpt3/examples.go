package main

import (
	"fmt"
	"strings"
)

// parseExamples splits each "left|right" flag value into a pair.
func parseExamples(values []string) ([][]string, error) {
	examples := make([][]string, 0, len(values))
	for _, v := range values {
		left, right, ok := strings.Cut(v, "|")
		if !ok {
			return nil, fmt.Errorf("invalid example %q, must be of the form \"left|right\"", v)
		}
		examples = append(examples, []string{strings.TrimSpace(left), strings.TrimSpace(right)})
	}
	return examples, nil
}
