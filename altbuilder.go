package tokenize

import (
	"fmt"
	"strings"
)

// altBuilder accumulates one emission group's alternatives as a column
// matrix, keeping every column the same height (the balancing invariant).
// Every row add accepts is appended whole: any column beyond the row's
// own width is padded with EmptyWordMark, and any column the matrix does
// not yet have is created and backfilled with EmptyWordMark for every row
// added so far. That single rule covers both "expand columns on a wider
// split" and "pad existing positions when a later split is narrower" —
// the same operation viewed from either side.
type altBuilder struct {
	columns [][]string
	seen    map[string]bool
}

func newAltBuilder() *altBuilder {
	return &altBuilder{seen: make(map[string]bool)}
}

// add appends one alternative, whose parts occupy columns 0..len(parts)-1 of
// this emission group. A row identical to one already added is dropped.
func (b *altBuilder) add(parts ...string) {
	for _, p := range parts {
		if p == "" {
			return // no alternative part may be the empty string
		}
	}
	key := strings.Join(parts, "\x00")
	if b.seen[key] {
		return
	}
	b.seen[key] = true

	k := len(parts)
	depth := 0
	if len(b.columns) > 0 {
		depth = len(b.columns[0])
	}
	for len(b.columns) < k {
		col := make([]string, depth)
		for i := range col {
			col[i] = EmptyWordMark
		}
		b.columns = append(b.columns, col)
	}
	for i := range b.columns {
		if i < k {
			b.columns[i] = append(b.columns[i], parts[i])
		} else {
			b.columns[i] = append(b.columns[i], EmptyWordMark)
		}
	}
}

func (b *altBuilder) empty() bool {
	return len(b.columns) == 0 || len(b.columns[0]) == 0
}

func (b *altBuilder) width() int { return len(b.columns) }

// checkBalanced verifies every column holds the same number of rows, the
// invariant add is meant to preserve on every call. issueAlternatives calls
// this before committing a group to the sentence.
func (b *altBuilder) checkBalanced() error {
	if len(b.columns) == 0 {
		return nil
	}
	depth := len(b.columns[0])
	for i, col := range b.columns {
		if len(col) != depth {
			return &AssertionError{
				Invariant: "balancing",
				Detail:    fmt.Sprintf("column %d has %d rows, column 0 has %d", i, len(col), depth),
			}
		}
	}
	return nil
}
