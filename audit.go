package tokenize

import "strings"

// NotInDictionaryEntry describes one sentence position whose alternatives
// were not found in the dictionary by SentenceInDictionary.
type NotInDictionaryEntry struct {
	Position     int
	UnsplitWord  string
	EntityMarked bool
}

// DictionaryReport is the result of SentenceInDictionary's read-only audit.
type DictionaryReport struct {
	NotInDictionary []NotInDictionaryEntry
}

// stripDecoration removes the trailing [~]/[!] tags and every InfixMark so
// the audit checks the underlying surface form, not its decoration.
// SubscriptMark is left in place.
func stripDecoration(alt string) string {
	alt = strings.TrimSuffix(alt, SpellGuessTag)
	alt = strings.TrimSuffix(alt, RegexDeferredTag)
	alt = strings.ReplaceAll(alt, string(InfixMark), "")
	return alt
}

// SentenceInDictionary walks a tokenized sentence's committed alternatives
// and reports which positions have no alternative found in dict. It never
// mutates sent: this is a read-only audit, separate from tokenization
// itself.
func SentenceInDictionary(sent *Sentence, dict Dictionary) *DictionaryReport {
	report := &DictionaryReport{}
	for i, p := range sent.Positions {
		if p.UnsplitWord == LeftWallWord || p.UnsplitWord == RightWallWord {
			continue
		}
		found := false
		for _, alt := range p.Alternatives {
			if alt == EmptyWordMark {
				continue
			}
			clean := stripDecoration(alt)
			if clean == "" {
				continue
			}
			if dict.Find(clean) {
				found = true
				break
			}
		}
		if found {
			continue
		}
		marked := dict.WordContains(p.UnsplitWord, "entity")
		report.NotInDictionary = append(report.NotInDictionary, NotInDictionaryEntry{
			Position:     i,
			UnsplitWord:  p.UnsplitWord,
			EntityMarked: marked,
		})
	}
	return report
}
