package tokenize

import (
	"regexp"
	"sort"
)

// Dictionary is the external dictionary facade the word separator and
// sentence driver consult. Loading a dictionary from disk is a separate
// concern; this interface is what a loader must satisfy to drive this
// package.
type Dictionary interface {
	// ExactLookup reports whether s is literally a dictionary entry,
	// ignoring regex entries entirely.
	ExactLookup(s string) bool
	// Find reports ExactLookup(s) OR a named regex matches s and that
	// regex's name is itself a dictionary entry. Where a regex match must
	// not count (the stem of an alphabetic-suffix split, for example),
	// callers, not Find, enforce that by calling ExactLookup instead; the
	// stem of an apostrophe-led contraction such as "1960's" is checked
	// with Find.
	Find(s string) bool
	// MatchRegex returns the name of the first regex entry matching s, and
	// whether any matched at all.
	MatchRegex(s string) (name string, ok bool)
	// WordContains reports whether s carries the given entity marker,
	// whether or not s is itself an exact-lookup entry (used by the audit
	// pass, not by tokenization itself).
	WordContains(s, marker string) bool

	LeftWallDefined() bool
	RightWallDefined() bool
	UnknownWordDefined() bool
	UseUnknownWord() bool

	// Affixes returns the read-only affix table this dictionary was
	// loaded alongside.
	Affixes() *AffixTable
}

// namedRegex pairs a compiled pattern with the dictionary entry name that
// must also exist for a match to count.
type namedRegex struct {
	name string
	re   *regexp.Regexp
}

// MapDictionary is a minimal in-memory Dictionary backed by plain maps. It
// is reference plumbing for driving and testing the tokenizer — not a
// reimplementation of link-grammar's real dictionary format, which is a
// separate concern entirely.
type MapDictionary struct {
	words              map[string]bool
	markers            map[string]map[string]bool
	regexes            []namedRegex
	leftWall           bool
	rightWall          bool
	unknownWordDefined bool
	useUnknownWord     bool
	affixes            *AffixTable
}

// NewMapDictionary builds an empty dictionary over the given affix table.
func NewMapDictionary(at *AffixTable) *MapDictionary {
	return &MapDictionary{
		words:   make(map[string]bool),
		markers: make(map[string]map[string]bool),
		affixes: at,
	}
}

// AddWord inserts an exact-lookup entry.
func (d *MapDictionary) AddWord(word string) {
	d.words[word] = true
}

// AddWords inserts several exact-lookup entries.
func (d *MapDictionary) AddWords(words ...string) {
	for _, w := range words {
		d.AddWord(w)
	}
}

// AddMarker tags word with an entity marker, exposed via WordContains.
func (d *MapDictionary) AddMarker(word, marker string) {
	set, ok := d.markers[word]
	if !ok {
		set = make(map[string]bool)
		d.markers[word] = set
	}
	set[marker] = true
}

// AddRegex registers a named regex entry. name must separately be added via
// AddWord for Find to honor it.
func (d *MapDictionary) AddRegex(name, pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	d.regexes = append(d.regexes, namedRegex{name: name, re: re})
	return nil
}

func (d *MapDictionary) ExactLookup(s string) bool {
	return d.words[s]
}

func (d *MapDictionary) MatchRegex(s string) (string, bool) {
	for _, nr := range d.regexes {
		if nr.re.MatchString(s) {
			return nr.name, true
		}
	}
	return "", false
}

func (d *MapDictionary) Find(s string) bool {
	if d.ExactLookup(s) {
		return true
	}
	name, ok := d.MatchRegex(s)
	if !ok {
		return false
	}
	return d.ExactLookup(name)
}

func (d *MapDictionary) WordContains(s, marker string) bool {
	set, ok := d.markers[s]
	if !ok {
		return false
	}
	return set[marker]
}

func (d *MapDictionary) LeftWallDefined() bool { return d.leftWall }
func (d *MapDictionary) RightWallDefined() bool { return d.rightWall }
func (d *MapDictionary) UnknownWordDefined() bool { return d.unknownWordDefined }
func (d *MapDictionary) UseUnknownWord() bool { return d.useUnknownWord }
func (d *MapDictionary) Affixes() *AffixTable { return d.affixes }

// SetWalls configures whether LEFT-WALL/RIGHT-WALL are defined entries.
// An explicit setter, rather than exposing the fields directly.
func (d *MapDictionary) SetWalls(left, right bool) {
	d.leftWall = left
	d.rightWall = right
	if left {
		d.AddWord(LeftWallWord)
	}
	if right {
		d.AddWord(RightWallWord)
	}
}

// Words returns every exact-lookup entry, sorted lexically since insertion
// order is not preserved (map-backed); callers that need a stable
// vocabulary, such as a spellchecker seed, get one.
func (d *MapDictionary) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// SetUnknownWordPolicy configures the UNKNOWN-WORD fallback flags.
func (d *MapDictionary) SetUnknownWordPolicy(defined, use bool) {
	d.unknownWordDefined = defined
	d.useUnknownWord = use
	if defined {
		d.AddWord(UnknownWord)
	}
}
