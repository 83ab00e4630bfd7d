package hangul

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestEncodeSingleRuneIsIdentity(t *testing.T) {
	for _, r := range []rune{'ㄱ', 'ㅏ', 'ㄳ', 'x'} {
		got, err := Encode([]rune{r})
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
}

func TestEncodeBlocks(t *testing.T) {
	tests := []struct {
		input []rune
		want  rune
	}{
		{[]rune{'ㄱ', 'ㅏ'}, '가'},
		{[]rune{'ㅎ', 'ㅏ', 'ㄴ'}, '한'},
		{[]rune{'ㄱ', 'ㅡ', 'ㄹ'}, '글'},
		{[]rune{'ㄱ', 'ㅏ', 'ㅄ'}, '값'},
		{[]rune{'ㅎ', 'ㅣ', 'ㅎ'}, '힣'},
	}
	for _, tt := range tests {
		got, err := Encode(tt.input)
		require.NoError(t, err, "Encode(%q)", string(tt.input))
		assert.Equal(t, tt.want, got, "Encode(%q)", string(tt.input))
	}
}

func TestEncodeRejectsMisplacedJamo(t *testing.T) {
	for _, buf := range [][]rune{
		{'ㅏ', 'ㅏ'},
		{'ㄳ', 'ㅏ'},
		{'ㄱ', 'ㄱ'},
		{'ㄱ', 'ㅏ', 'ㄸ'},
		{'ㄱ', 'ㅏ', 0},
	} {
		_, err := Encode(buf)
		assert.ErrorIs(t, err, ErrUnrecognizedJamo, "Encode(%q)", string(buf))
	}
}

func TestEncodeRejectsBadLength(t *testing.T) {
	_, err := Encode(nil)
	assert.ErrorIs(t, err, ErrInvariantViolation)

	_, err = Encode([]rune{'ㄱ', 'ㅏ', 'ㄱ', 'ㅏ'})
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestEncodeIndicesOutOfRange(t *testing.T) {
	_, err := encodeIndices(19, 0, 0)
	assert.ErrorIs(t, err, ErrEncodingOutOfRange)

	_, err = encodeIndices(0, -1, 0)
	assert.ErrorIs(t, err, ErrEncodingOutOfRange)
}

func TestEncodeIsInjectiveAndInvertible(t *testing.T) {
	seen := make(map[rune][]rune, 11172)
	for _, lead := range Initials() {
		for _, vowel := range Medials() {
			for _, tail := range Finals() {
				buf := []rune{lead, vowel}
				if tail != 0 {
					buf = append(buf, tail)
				}
				got, err := Encode(buf)
				require.NoError(t, err)
				require.True(t, IsSyllable(got), "U+%04X outside syllable range", got)

				prev, dup := seen[got]
				require.False(t, dup, "%q and %q both encode to %q", string(prev), string(buf), got)
				seen[got] = buf

				l, m, f, ok := Decompose(got)
				require.True(t, ok)
				assert.Equal(t, [3]rune{lead, vowel, tail}, [3]rune{l, m, f})
			}
		}
	}
	assert.Len(t, seen, syllableLast-syllableBase+1)
}

// Conjoining jamo composed by NFC must land on the same code point as the
// compatibility-jamo encoder.
func TestEncodeMatchesNFC(t *testing.T) {
	for li, lead := range Initials() {
		for vi, vowel := range Medials() {
			for ti, tail := range Finals() {
				conjoining := []rune{0x1100 + rune(li), 0x1161 + rune(vi)}
				buf := []rune{lead, vowel}
				if ti > 0 {
					conjoining = append(conjoining, 0x11A7+rune(ti))
					buf = append(buf, tail)
				}
				want := []rune(norm.NFC.String(string(conjoining)))
				require.Len(t, want, 1)

				got, err := Encode(buf)
				require.NoError(t, err)
				require.Equal(t, want[0], got, "Encode(%q)", string(buf))
			}
		}
	}
}

func TestDecomposeRejectsNonSyllables(t *testing.T) {
	for _, r := range []rune{'ㄱ', 'A', 0xABFF, 0xD7A4} {
		_, _, _, ok := Decompose(r)
		assert.False(t, ok, "Decompose(%U)", r)
	}
}
