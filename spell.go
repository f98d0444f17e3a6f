package tokenize

import (
	"sort"
	"strings"
)

// Spellchecker is the external spellcheck facade: the optional collaborator
// the word separator's spellcheck-fallback stage consults. The backend
// itself — Hunspell, Aspell, a remote service — is a separate concern; this
// package supplies one small stdlib-based implementation
// (EditDistanceSpellchecker) good enough to drive that fallback end to end.
type Spellchecker interface {
	// Test reports whether word is considered correctly spelled.
	Test(word string) bool
	// Suggest returns candidate corrections. A suggestion containing an
	// internal space is a run-on decomposition.
	Suggest(word string) []string
}

// EditDistanceSpellchecker suggests corrections by Levenshtein distance
// (insertions, deletions, substitutions) against a fixed vocabulary, and additionally proposes run-on
// splits when two adjacent vocabulary words concatenate to the input.
type EditDistanceSpellchecker struct {
	vocab    []string
	maxDist  int
	maxGuess int
}

// NewEditDistanceSpellchecker builds a spellchecker over vocab. maxDist
// bounds how many edits a suggestion may be away from the input; 0 selects
// a default of 2.
func NewEditDistanceSpellchecker(vocab []string, maxDist int) *EditDistanceSpellchecker {
	if maxDist <= 0 {
		maxDist = 2
	}
	return &EditDistanceSpellchecker{vocab: vocab, maxDist: maxDist, maxGuess: DefaultMaxNumSpellGuesses()}
}

// DefaultMaxNumSpellGuesses exposes the DefaultMaxSpellGuesses constant as a
// function; it is the suggestion cap a new EditDistanceSpellchecker uses.
func DefaultMaxNumSpellGuesses() int { return DefaultMaxSpellGuesses }

func (s *EditDistanceSpellchecker) Test(word string) bool {
	for _, v := range s.vocab {
		if v == word {
			return true
		}
	}
	return false
}

type scored struct {
	word string
	dist int
}

func (s *EditDistanceSpellchecker) Suggest(word string) []string {
	if IsNumber(word) {
		return nil
	}
	var candidates []scored
	for _, v := range s.vocab {
		d := levenshtein(word, v)
		if d <= s.maxDist {
			candidates = append(candidates, scored{v, d})
		}
	}
	candidates = append(candidates, s.runOnCandidates(word)...)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	out := make([]string, 0, len(candidates))
	seen := make(map[string]bool)
	for _, c := range candidates {
		if seen[c.word] {
			continue
		}
		seen[c.word] = true
		out = append(out, c.word)
		if len(out) >= s.maxGuess {
			break
		}
	}
	return out
}

// runOnCandidates looks for a split point such that word[:i] and word[i:]
// are both in the vocabulary, proposing "left right" as a zero-distance
// run-on suggestion.
func (s *EditDistanceSpellchecker) runOnCandidates(word string) []scored {
	var out []scored
	runes := []rune(word)
	for i := 1; i < len(runes); i++ {
		left, right := string(runes[:i]), string(runes[i:])
		if s.Test(left) && s.Test(right) {
			out = append(out, scored{left + " " + right, 0})
		}
	}
	return out
}

// levenshtein computes the classic edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// isProperNounHeuristic reports whether word looks like a proper noun by a
// first-letter-upper heuristic, used to skip the spellcheck path for names.
func isProperNounHeuristic(word string) bool {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return false
	}
	r, _, _ := DecodeNextString(trimmed)
	return IsUpper(r)
}
