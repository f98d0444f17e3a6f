package tokenize

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// separateWord is the word separator. It runs a fixed 13-stage pipeline
// over one orthographic chunk (no whitespace, no quotes) and commits
// whatever alternatives it finds onto sent.
func separateWord(sent *Sentence, chunk string, quoteFound bool, dict Dictionary, spell Spellchecker, opts *Options) error {
	at := dict.Affixes()

	// Stage 1 — initial whole-word probe. The flag is informational: if
	// no left-strip consumes anything, Stage 4's exact_lookup on the
	// (unchanged) word reproduces this check exactly, so there is nothing
	// further to do with it here.
	_ = dict.Find(chunk)

	// Stage 2 — left strip.
	word, consumedWord := leftStrip(sent, chunk, at, &quoteFound)
	if consumedWord {
		return nil
	}

	// Stage 3 — right strip (bounded by Stage 8's escape valve).
	chunkStartsDigit := StartsWithDigit(chunk)
	word, pending, stripErr := rightStrip(word, at, dict, opts, chunkStartsDigit)
	var tooManyStrips *TooManyStripsError
	if errors.As(stripErr, &tooManyStrips) {
		// Stage 8 — caught: rightStrip already reconstructed the original
		// chunk from the collected strips before returning this error, so
		// there is nothing further to drop here.
	}

	b := newAltBuilder()

	// Stage 4 — whole-word addition.
	if dict.ExactLookup(word) {
		b.add(word)
	}

	// Stage 5 — suffix split.
	wordCanSplit := suffixSplit(b, word, at, dict, opts)

	// Stage 6 — case-folded retry.
	wordUpper := isWordUpper(word)
	pos := len(sent.Positions)
	capitalizable := sent.isCapitalizable(pos, quoteFound)
	if wordUpper && capitalizable {
		down := Downcase(word)
		if suffixSplit(b, down, at, dict, opts) {
			wordCanSplit = true
		}
	}

	// Stage 7 — multi-prefix split.
	if len(at.Get(ClassMPre)) > 0 {
		if multiPrefixSplit(b, word, at, dict, opts.maxPrefixChain()) {
			wordCanSplit = true
		}
	}

	// Stage 9 — capitalization alternatives.
	if wordUpper {
		if !wordCanSplit {
			if _, ok := dict.MatchRegex(word); ok {
				b.add(word)
			}
		}
		if capitalizable || quoteFound {
			down := Downcase(word)
			if dict.ExactLookup(down) {
				b.add(word)
				b.add(down)
			}
		}
	}

	// Stage 10 — regex fallback.
	if b.empty() || opts.parallelRegex() {
		if _, ok := dict.MatchRegex(word); ok {
			if opts.parallelRegex() {
				b.add(word + RegexDeferredTag)
			} else {
				b.add(word)
			}
		}
	}

	// Stage 11 — spellcheck fallback.
	spellcheckFallback(b, word, dict, spell, opts)

	// Stage 12 — commit.
	if err := sent.issueAlternatives(word, quoteFound, b); err != nil {
		return err
	}

	// Stage 13 — emit trailing r-stripped tokens in reverse of the order
	// they were peeled off, so they come out left to right.
	for i := len(pending) - 1; i >= 0; i-- {
		sent.issueSentenceWord(pending[i], false)
	}
	return nil
}

// isWordUpper reports whether word begins with an upper-case code point —
// the "is upper-case" test Stages 6 and 9 share. A word that is merely
// capitalized (one leading upper-case letter) counts; an all-caps word
// also counts, since only the first rune is examined.
func isWordUpper(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return IsUpper(r)
}

// leftStrip implements Stage 2: repeatedly peel LPUNC entries off the front
// of chunk, each becoming its own emission group. Returns the remaining
// word and whether the whole chunk was consumed (in which case the caller
// must stop).
func leftStrip(sent *Sentence, chunk string, at *AffixTable, quoteFound *bool) (string, bool) {
	word := chunk
	lpunc := at.Get(ClassLPunc)
	for word != "" {
		matched := ""
		for _, p := range lpunc {
			if p != "" && strings.HasPrefix(word, p) {
				matched = p
				break
			}
		}
		if matched == "" {
			break
		}
		sent.issueSentenceWord(matched, *quoteFound)
		*quoteFound = false
		word = word[len(matched):]
	}
	return word, word == ""
}

// rightStrip implements Stage 3 (and Stage 8's escape valve). It returns the
// remaining word and the buffer of stripped suffix tokens in the order they
// were peeled off (rightmost-first consumption order; Stage 13 re-reverses
// them to restore left-to-right sentence order). If the strip loop reaches
// Options.MaxStrip strips, it returns a *TooManyStripsError alongside the
// reconstructed (un-stripped) word and a nil pending buffer; the caller is
// expected to catch it and fall through to Stage 8's escape path.
func rightStrip(word string, at *AffixTable, dict Dictionary, opts *Options, chunkStartsDigit bool) (string, []string, error) {
	rpunc := at.Get(ClassRPunc)
	units := at.Get(ClassUnits)
	maxStrip := opts.maxStrip()

	var pending []string
	prevWasUnit := false
	attempts := 0
	for attempts < maxStrip {
		if word == "" {
			break
		}
		if dict.Find(word) {
			break
		}

		if matched := matchSuffixEntry(word, rpunc); matched != "" {
			pending = append(pending, matched)
			word = word[:len(word)-len(matched)]
			prevWasUnit = false
			attempts++
			continue
		}

		if chunkStartsDigit && !prevWasUnit {
			if matched := matchSuffixEntry(word, units); matched != "" {
				pending = append(pending, matched)
				word = word[:len(word)-len(matched)]
				prevWasUnit = true
				attempts++
				continue
			}
		}

		break
	}
	if attempts >= maxStrip {
		// Stage 8 — long-sequence escape: drop the strips, accept the
		// original (post-left-strip) chunk as an unknown word.
		return reconstructFromPending(word, pending), nil, &TooManyStripsError{Attempts: attempts}
	}
	return word, pending, nil
}

// matchSuffixEntry returns the first entry in class (in declared order) that
// is a suffix of word, or "" if none match.
func matchSuffixEntry(word string, class []string) string {
	for _, s := range class {
		if s != "" && strings.HasSuffix(word, s) {
			return s
		}
	}
	return ""
}

// reconstructFromPending re-assembles the original chunk from a word residue
// and its (encounter-order) stripped suffixes, for Stage 8's escape path.
func reconstructFromPending(word string, pending []string) string {
	var sb strings.Builder
	sb.WriteString(word)
	for i := len(pending) - 1; i >= 0; i-- {
		sb.WriteString(pending[i])
	}
	return sb.String()
}

// suffixSplit implements Stage 5. It reports whether any split succeeded.
func suffixSplit(b *altBuilder, word string, at *AffixTable, dict Dictionary, opts *Options) bool {
	split := false
	sufs := at.Get(ClassSuf)
	pres := at.Get(ClassPre)
	noMark := opts.noSuffixMark()

	// Real SUF entries: stem + suffix, independent of any prefix.
	for _, suf := range sufs {
		if suf == "" || !strings.HasSuffix(word, suf) {
			continue
		}
		stem := word[:len(word)-len(suf)]
		if stem == "" {
			continue
		}
		if stemValidates(stem, suf, dict) {
			if stemSubscriptOK(stem, at, dict) {
				b.add(stem, decorateSuffix(suf, noMark))
				split = true
			}
		}
	}

	// PRE entries, tried against every suffix (including the synthetic
	// empty suffix, for prefix-only splits).
	for _, suf := range append(append([]string{}, sufs...), "") {
		if suf != "" && !strings.HasSuffix(word, suf) {
			continue
		}
		for _, pre := range pres {
			if pre == "" || !strings.HasPrefix(word, pre) {
				continue
			}
			if len(pre)+len(suf) > len(word) {
				continue
			}
			middle := word[len(pre) : len(word)-len(suf)]
			if middle == "" {
				continue
			}
			if dict.ExactLookup(middle) {
				b.add(decoratePrefix(pre), middle, decorateSuffix(suf, noMark))
				split = true
			}
		}
	}

	return split
}

// stemValidates applies a simple discipline: a true lexical (alphabetic)
// suffix validates its stem by exact lookup only; a contraction-like suffix
// (apostrophe-led, e.g. "'s") may validate via the regex-aware Find, which
// is how "1960's" admits "1960" as a stem.
func stemValidates(stem, suf string, dict Dictionary) bool {
	first, _ := utf8.DecodeRuneInString(suf)
	if IsAlpha(first) {
		return dict.ExactLookup(stem)
	}
	return dict.Find(stem)
}

// stemSubscriptOK reports whether stem should be added given STEMSUBSCR:
// with no subscripts configured it always passes; otherwise at least one
// subscripted form must be an exact dictionary entry.
func stemSubscriptOK(stem string, at *AffixTable, dict Dictionary) bool {
	subs := at.StemSubscripts()
	if len(subs) == 0 {
		return true
	}
	for _, sub := range subs {
		if dict.ExactLookup(stem + string(SubscriptMark) + sub) {
			return true
		}
	}
	return false
}

// decoratePrefix applies INFIX_MARK to a stripped prefix.
func decoratePrefix(p string) string {
	return p + string(InfixMark)
}

// decorateSuffix applies the suffix decoration rule: alphabetic suffixes
// get a leading INFIX_MARK, the empty suffix is stored as the bare marker
// so it is never an empty string, and the "no-suffixes" test flag forces
// verbatim storage for non-empty suffixes.
//
// Apostrophe-led contractions split further: "'s" is stored exactly as
// "'s"; every other apostrophe-led suffix ("'ve", "'re", "'ll", …) drops
// the apostrophe and takes the INFIX_MARK instead, so "you've" splits into
// ["you"]["=ve"].
func decorateSuffix(suf string, noMark bool) string {
	if suf == "" {
		return string(InfixMark)
	}
	if noMark {
		return suf
	}
	if suf == "'s" {
		return suf
	}
	if strings.HasPrefix(suf, "'") {
		return string(InfixMark) + suf[len("'"):]
	}
	first, _ := utf8.DecodeRuneInString(suf)
	if !IsAlpha(first) {
		return suf
	}
	return string(InfixMark) + suf
}

// multiPrefixSplit implements Stage 7: greedy-longest multi-prefix chain
// splitting, driven entirely by the affix table's MPRE class and
// MultiPrefixPolicy — language policy as data, so nothing here names a
// specific language.
func multiPrefixSplit(b *altBuilder, word string, at *AffixTable, dict Dictionary, maxChain int) bool {
	mpre := at.Get(ClassMPre)
	policy := at.Policy()
	split := false
	split = mprefixRecurse(b, word, mpre, policy, nil, map[string]bool{}, maxChain, dict) || split
	return split
}

func mprefixRecurse(b *altBuilder, residual string, mpre []string, policy MultiPrefixPolicy, chain []string, seen map[string]bool, remaining int, dict Dictionary) bool {
	if remaining <= 0 {
		return false
	}
	any := false
	for _, sub := range mpre {
		if sub == "" || seen[sub] {
			continue
		}
		if policy.InitialOnly[sub] && len(chain) != 0 {
			continue
		}
		if !strings.HasPrefix(residual, sub) {
			continue
		}
		rest := residual[len(sub):]
		if !policy.InitialOnly[sub] {
			for dup := range policy.CollapseLeadingDuplicate {
				if dup != "" && strings.HasPrefix(rest, dup+dup) {
					rest = rest[len(dup):]
				}
			}
		}

		newChain := append(append([]string{}, chain...), sub)
		newSeen := make(map[string]bool, len(seen)+1)
		for k := range seen {
			newSeen[k] = true
		}
		newSeen[sub] = true

		if rest == "" {
			b.add(decoratedChain(newChain))
			any = true
			continue
		}
		if dict.Find(rest) {
			b.add(decoratedChain(newChain), rest)
			any = true
		}
		if mprefixRecurse(b, rest, mpre, policy, newChain, newSeen, remaining-1, dict) {
			any = true
		}
	}
	return any
}

// decoratedChain joins a prefix chain into the single decorated token the
// alternatives matrix stores in the chain's column.
func decoratedChain(chain []string) string {
	return strings.Join(chain, "") + string(InfixMark)
}

// spellcheckFallback implements Stage 11.
func spellcheckFallback(b *altBuilder, word string, dict Dictionary, spell Spellchecker, opts *Options) {
	if spell == nil || !opts.UseSpellGuess {
		return
	}
	if IsNumber(word) {
		return
	}
	if dict.Find(word) {
		return
	}
	if isProperNounHeuristic(word) {
		return
	}
	suggestions := spell.Suggest(word)
	max := opts.maxSpellGuesses()
	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	for _, sug := range suggestions {
		if strings.Contains(sug, " ") {
			parts := strings.Split(sug, " ")
			clean := parts[:0:0]
			for _, p := range parts {
				if p != "" {
					clean = append(clean, p)
				}
			}
			if len(clean) > 1 {
				b.add(clean...)
			}
			continue
		}
		if dict.ExactLookup(sug) {
			b.add(sug + SpellGuessTag)
		}
	}
}
