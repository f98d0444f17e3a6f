package tokenize

import "fmt"

// DecodeError reports malformed UTF-8 or a code point unrepresentable in the
// active codeset. It is fatal to the sentence being built.
type DecodeError struct {
	Codeset string
	Offset  int
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error at byte %d (codeset %s): %v", e.Offset, e.Codeset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AssertionError reports a violation of one of the data-model invariants —
// balancing, non-empty alternatives, unsplit_word placement, and so on. It
// indicates a programmer error in the tokenizer itself, never user input.
type AssertionError struct {
	Invariant string
	Detail    string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("tokenizer invariant violated (%s): %s", e.Invariant, e.Detail)
}

// TooManyStripsError is raised internally when Stage 3's right-strip loop
// reaches Options.MaxStrip strips. It is not fatal: rightStrip has already
// dropped the collected strips when it returns this error, and the separator
// catches it and carries on with the whole word (Stage 8's escape path).
type TooManyStripsError struct {
	Attempts int
}

func (e *TooManyStripsError) Error() string {
	return fmt.Sprintf("too many right-strips attempted (%d)", e.Attempts)
}
