package hangul

import "fmt"

// Composer fuses runs of compatibility jamo into precomposed syllables. It
// buffers at most one partial syllable; everything that cannot extend the
// buffer is passed through in order.
//
// A Composer is not safe for concurrent use. Independent Composers share
// only the read-only role tables.
type Composer struct {
	buf    [3]rune
	n      int
	offset int
}

func NewComposer() *Composer {
	return &Composer{}
}

// Feed consumes r and appends every rune that became final to dst.
func (c *Composer) Feed(dst []rune, r rune) ([]rune, error) {
	offset := c.offset
	c.offset++

	var err error
	if c.n == len(c.buf) {
		if dst, err = c.closeFull(dst, CanBeMedial(r)); err != nil {
			return dst, c.fail(offset, err)
		}
	}

	accepted, err := acceptable(c.n, r)
	if err != nil {
		return dst, c.fail(offset, err)
	}
	if accepted {
		c.buf[c.n] = r
		c.n++
		return dst, nil
	}

	if dst, err = c.flush(dst); err != nil {
		return dst, c.fail(offset, err)
	}
	return append(dst, r), nil
}

// Flush closes any buffered partial syllable and appends it to dst.
func (c *Composer) Flush(dst []rune) ([]rune, error) {
	dst, err := c.flush(dst)
	if err != nil {
		return dst, c.fail(c.offset, err)
	}
	return dst, nil
}

// Reset discards the buffer and restarts offset counting.
func (c *Composer) Reset() {
	*c = Composer{}
}

// Buffered returns the partial syllable currently held.
func (c *Composer) Buffered() []rune {
	return append([]rune(nil), c.buf[:c.n]...)
}

// closeFull empties a full buffer. When the next rune is a vowel the final
// consonant moves to the next syllable; a final cluster is split so that its
// first half stays behind.
func (c *Composer) closeFull(dst []rune, nextIsVowel bool) ([]rune, error) {
	if !nextIsVowel {
		return c.flush(dst)
	}

	carry := c.buf[2]
	if first, second, ok := SplitCluster(carry); ok {
		c.buf[2] = first
		carry = second
	} else {
		c.n = 2
	}

	dst, err := c.flush(dst)
	if err != nil {
		return dst, err
	}
	c.buf[0] = carry
	c.n = 1
	return dst, nil
}

func (c *Composer) flush(dst []rune) ([]rune, error) {
	if c.n == 0 {
		return dst, nil
	}
	syllable, err := Encode(c.buf[:c.n])
	if err != nil {
		return dst, err
	}
	c.n = 0
	return append(dst, syllable), nil
}

func (c *Composer) fail(offset int, err error) error {
	return &BufferError{Offset: offset, Buffer: c.Buffered(), Err: err}
}

// acceptable reports whether r may occupy buffer position n.
func acceptable(n int, r rune) (bool, error) {
	if !IsKorean(r) {
		return false, nil
	}
	switch n {
	case 0:
		return CanBeInitial(r), nil
	case 1:
		return CanBeMedial(r), nil
	case 2:
		return CanBeFinal(r), nil
	default:
		return false, fmt.Errorf("%w: buffer holds %d runes at acceptance", ErrInvariantViolation, n)
	}
}

// ComposeSyllables fuses jamo runs in input into syllables. Any failure
// aborts the whole call; no partial result is returned.
func ComposeSyllables(input []rune) (string, error) {
	c := NewComposer()
	out := make([]rune, 0, len(input))

	var err error
	for _, r := range input {
		if out, err = c.Feed(out, r); err != nil {
			return "", err
		}
	}
	if out, err = c.Flush(out); err != nil {
		return "", err
	}
	return string(out), nil
}

// Compose is ComposeSyllables over a string.
func Compose(s string) (string, error) {
	return ComposeSyllables([]rune(s))
}
