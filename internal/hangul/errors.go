package hangul

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariantViolation reports a composition buffer outside its 1..3 bounds.
	// It indicates a defect in the composer, never bad input.
	ErrInvariantViolation = errors.New("hangul: composition buffer invariant violated")
	// ErrEncodingOutOfRange reports a computed syllable outside U+AC00..U+D7A3.
	ErrEncodingOutOfRange = errors.New("hangul: encoded syllable out of range")
	// ErrUnrecognizedJamo reports a buffered rune missing from the role table of
	// its position.
	ErrUnrecognizedJamo = errors.New("hangul: jamo not valid for its position")
)

// BufferError carries the input offset and buffer contents at the point a
// composition failed.
type BufferError struct {
	Offset int
	Buffer []rune
	Err    error
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("compose at offset %d (buffer %q): %v", e.Offset, string(e.Buffer), e.Err)
}

func (e *BufferError) Unwrap() error { return e.Err }
