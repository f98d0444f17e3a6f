// Package tokenize implements the sentence tokenizer of a Link-Grammar–style
// natural-language parser: it turns a raw UTF-8 sentence into a column-aligned
// matrix of word positions, each carrying one or more alternative
// tokenizations, ready for a downstream grammatical-expression builder.
package tokenize

// Reserved single-character markers used inside interned alternative strings.
const (
	// InfixMark separates a stem from a stripped affix, e.g. "play" + "=ed".
	InfixMark = '='
	// SubscriptMark separates a base word from a dictionary sense subscript,
	// e.g. "run.v".
	SubscriptMark = '.'
	// EmptyWordMark pads a column to keep an emission group rectangular.
	EmptyWordMark = "***EMPTY***"
)

// Trailing decoration tags appended to an alternative's surface form.
const (
	// SpellGuessTag marks an alternative that came from the spellcheck oracle.
	SpellGuessTag = "[~]"
	// RegexDeferredTag marks an alternative that must still be resolved via
	// regex at expression-building time (the "parallel-regex" test flag).
	RegexDeferredTag = "[!]"
)

// Synthetic sentence-boundary and fallback words, named by the dictionary
// facade.
const (
	LeftWallWord  = "LEFT-WALL"
	RightWallWord = "RIGHT-WALL"
	UnknownWord   = "UNKNOWN-WORD"
)

// Tunables. The Default* values are the defaults for the matching Options
// fields; MaxWord and MaxMultiPrefixTableSize are fixed and have no Options
// field.
const (
	// DefaultMaxStrip bounds the number of right-strip iterations.
	DefaultMaxStrip = 10
	// DefaultMaxPrefixChain bounds the length of a multi-prefix chain.
	DefaultMaxPrefixChain = 5
	// DefaultMaxSpellGuesses bounds how many spellcheck suggestions are tried.
	DefaultMaxSpellGuesses = 60
	// MaxWord is the byte-length ceiling for any single alternative.
	MaxWord = 60
	// MaxMultiPrefixTableSize bounds the declared size of the MPRE class.
	MaxMultiPrefixTableSize = 16
)

// TestFlag names recognized in Options.TestFlags.
const (
	TestFlagNoSuffixes     = "no-suffixes"
	TestFlagParallelRegex  = "parallel-regex"
	TestFlagParallelsRegex = "parallels-regex" // accepted alias, same effect
)
