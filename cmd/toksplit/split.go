package main

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/sentences"
)

// SplitSentences breaks text into individual sentences per Unicode UAX #29,
// trimming surrounding whitespace and dropping empties. Each resulting
// sentence is handed to the tokenizer independently, one sentence at a time,
// matching the tokenizer's own scope.
func SplitSentences(text string) []string {
	var out []string
	seg := sentences.FromString(text)
	for seg.Next() {
		s := strings.TrimSpace(seg.Value())
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
