package tokenize

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// AffixClass names one of the affix table's lists.
type AffixClass string

const (
	ClassLPunc      AffixClass = "LPUNC"
	ClassRPunc      AffixClass = "RPUNC"
	ClassUnits      AffixClass = "UNITS"
	ClassPre        AffixClass = "PRE"
	ClassSuf        AffixClass = "SUF"
	ClassMPre       AffixClass = "MPRE"
	ClassStemSubscr AffixClass = "STEMSUBSCR"
	ClassQuotes     AffixClass = "QUOTES"
	ClassBullets    AffixClass = "BULLETS"
)

// MultiPrefixPolicy captures language-specific multi-prefix constraints as
// declarative data, rather than as code in the multi-prefix split path.
// Hebrew's "ו may appear only chain-initially, and a doubled leading ו
// collapses" rule is expressed this way: nothing in separator.go names
// Hebrew.
type MultiPrefixPolicy struct {
	// InitialOnly lists subwords that may only occupy the first slot of a
	// prefix chain.
	InitialOnly map[string]bool
	// CollapseLeadingDuplicate lists subwords such that, once a non-
	// InitialOnly prefix has been chosen, a residual beginning with two
	// consecutive copies of the subword has one copy stripped before
	// further MPRE matching resumes.
	CollapseLeadingDuplicate map[string]bool
}

// AffixTable is an immutable, read-only mapping of class tag to ordered
// string list. It is loaded once and shared by every sentence tokenized
// against it.
type AffixTable struct {
	classes map[AffixClass][]string
	mpre    []string // ClassMPre, pre-sorted descending by rune length
	policy  MultiPrefixPolicy
}

// NewAffixTable builds an AffixTable from already-collected class lists.
// Each class is de-duplicated and, for MPRE, re-sorted into descending
// length order so the greedy-longest multi-prefix matcher can walk it
// directly.
func NewAffixTable(classes map[AffixClass][]string, policy MultiPrefixPolicy) *AffixTable {
	at := &AffixTable{
		classes: make(map[AffixClass][]string, len(classes)),
		policy:  policy,
	}
	for class, entries := range classes {
		deduped := lo.Uniq(entries)
		at.classes[class] = deduped
	}
	mpre := append([]string(nil), at.classes[ClassMPre]...)
	if len(mpre) > MaxMultiPrefixTableSize {
		mpre = mpre[:MaxMultiPrefixTableSize]
	}
	sort.SliceStable(mpre, func(i, j int) bool {
		return len([]rune(mpre[i])) > len([]rune(mpre[j]))
	})
	at.mpre = mpre
	return at
}

// Get returns the ordered string list for class, or an empty (possibly nil)
// list if the class is absent or has no entries.
func (at *AffixTable) Get(class AffixClass) []string {
	if at == nil {
		return nil
	}
	if class == ClassMPre {
		return at.mpre
	}
	return at.classes[class]
}

// StemSubscripts returns the STEMSUBSCR class: suffix-subscripts to append
// to a candidate stem before a dictionary lookup.
func (at *AffixTable) StemSubscripts() []string {
	return at.Get(ClassStemSubscr)
}

// Policy returns the multi-prefix chain constraints for this table.
func (at *AffixTable) Policy() MultiPrefixPolicy {
	if at == nil {
		return MultiPrefixPolicy{}
	}
	return at.policy
}

func (at *AffixTable) containsRune(class AffixClass, r rune) bool {
	for _, s := range at.Get(class) {
		if strings.ContainsRune(s, r) && len([]rune(s)) == 1 {
			return true
		}
		// Multi-rune QUOTES/BULLETS entries match on their first rune.
		if rs := []rune(s); len(rs) > 0 && rs[0] == r {
			return true
		}
	}
	return false
}
