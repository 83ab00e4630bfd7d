// Package stream adapts rune-at-a-time text stages to x/text transformers so
// they can be chained and read from like any other io.Reader.
package stream

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Stage consumes one rune at a time and appends whatever output became final.
// Flush emits anything still held at end of input.
type Stage interface {
	Feed(dst []rune, r rune) ([]rune, error)
	Flush(dst []rune) ([]rune, error)
	Reset()
}

// Transformer runs a Stage over UTF-8 input. Output that does not fit in dst
// is held and written on the next call.
type Transformer struct {
	stage   Stage
	pending []rune
	flushed bool
}

var _ transform.Transformer = (*Transformer)(nil)

func NewTransformer(stage Stage) *Transformer {
	return &Transformer{stage: stage}
}

func (t *Transformer) Reset() {
	t.stage.Reset()
	t.pending = t.pending[:0]
	t.flushed = false
}

func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if nDst, err = t.drain(dst); err != nil {
		return nDst, 0, err
	}

	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if t.pending, err = t.stage.Feed(t.pending, r); err != nil {
			return nDst, nSrc, err
		}
		nSrc += size

		n, err := t.drain(dst[nDst:])
		nDst += n
		if err != nil {
			return nDst, nSrc, err
		}
	}

	if atEOF && !t.flushed {
		if t.pending, err = t.stage.Flush(t.pending); err != nil {
			return nDst, nSrc, err
		}
		t.flushed = true
		n, err := t.drain(dst[nDst:])
		nDst += n
		if err != nil {
			return nDst, nSrc, err
		}
	}
	return nDst, nSrc, nil
}

// drain writes as much pending output as fits in dst.
func (t *Transformer) drain(dst []byte) (int, error) {
	n := 0
	for i, r := range t.pending {
		size := utf8.RuneLen(r)
		if size < 0 {
			r, size = utf8.RuneError, utf8.RuneLen(utf8.RuneError)
		}
		if size > len(dst)-n {
			t.pending = t.pending[:copy(t.pending, t.pending[i:])]
			return n, transform.ErrShortDst
		}
		n += utf8.EncodeRune(dst[n:], r)
	}
	t.pending = t.pending[:0]
	return n, nil
}
