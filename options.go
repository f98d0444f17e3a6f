package tokenize

// Options controls the tokenizer's optional behaviors. A zero Options is
// valid: spell-guessing and morphology display are both off, and the
// tunables fall back to their Default* constants via the accessors below —
// a bare value assumes sane defaults for anything not explicitly configured.
type Options struct {
	// UseSpellGuess enables Stage 11 (spellcheck fallback). Requires a
	// non-nil Spellchecker to have any effect.
	UseSpellGuess bool
	// DisplayMorphology is consumed by callers that render alternatives;
	// the tokenizer itself does not change behavior based on it, but it is
	// threaded through so a single Options value configures a whole run.
	DisplayMorphology bool
	// Verbosity is an opaque diagnostic level; 0 means silent. The
	// tokenizer package never logs and does not read it; it is there for
	// callers that do log.
	Verbosity int
	// TestFlags recognizes "no-suffixes", "parallel-regex" and
	// "parallels-regex" — the latter two spellings are treated as one flag.
	TestFlags map[string]bool

	// MaxStrip overrides DefaultMaxStrip when positive.
	MaxStrip int
	// MaxPrefixChain overrides DefaultMaxPrefixChain when positive.
	MaxPrefixChain int
	// MaxNumSpellGuesses overrides DefaultMaxSpellGuesses when positive.
	MaxNumSpellGuesses int
}

func (o *Options) hasFlag(name string) bool {
	if o == nil || o.TestFlags == nil {
		return false
	}
	return o.TestFlags[name]
}

func (o *Options) noSuffixMark() bool {
	return o.hasFlag(TestFlagNoSuffixes)
}

func (o *Options) parallelRegex() bool {
	return o.hasFlag(TestFlagParallelRegex) || o.hasFlag(TestFlagParallelsRegex)
}

func (o *Options) maxStrip() int {
	if o != nil && o.MaxStrip > 0 {
		return o.MaxStrip
	}
	return DefaultMaxStrip
}

func (o *Options) maxPrefixChain() int {
	if o != nil && o.MaxPrefixChain > 0 {
		return o.MaxPrefixChain
	}
	return DefaultMaxPrefixChain
}

func (o *Options) maxSpellGuesses() int {
	if o != nil && o.MaxNumSpellGuesses > 0 {
		return o.MaxNumSpellGuesses
	}
	return DefaultMaxSpellGuesses
}
