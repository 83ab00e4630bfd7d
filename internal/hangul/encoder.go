package hangul

import "fmt"

// Encode turns a buffer of one to three jamo, in initial/medial/final order,
// into a single rune. A one-rune buffer is returned unchanged. A rune missing
// from the table of its position is an error rather than index 0.
func Encode(buf []rune) (rune, error) {
	switch len(buf) {
	case 1:
		return buf[0], nil
	case 2, 3:
	default:
		return 0, fmt.Errorf("%w: encode called with %d runes", ErrInvariantViolation, len(buf))
	}

	leadIdx, ok := choseongIndex[buf[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not an initial", ErrUnrecognizedJamo, buf[0])
	}
	vowelIdx, ok := jungseongIndex[buf[1]]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a medial", ErrUnrecognizedJamo, buf[1])
	}
	tailIdx := 0
	if len(buf) == 3 {
		if tailIdx, ok = jongseongIndex[buf[2]]; !ok {
			return 0, fmt.Errorf("%w: %q is not a final", ErrUnrecognizedJamo, buf[2])
		}
	}
	return encodeIndices(leadIdx, vowelIdx, tailIdx)
}

func encodeIndices(lead, vowel, tail int) (rune, error) {
	codepoint := rune(syllableBase + lead*blockSize + vowel*finalCount + tail)
	if !IsSyllable(codepoint) {
		return 0, fmt.Errorf("%w: U+%04X from indices (%d, %d, %d)", ErrEncodingOutOfRange, codepoint, lead, vowel, tail)
	}
	return codepoint, nil
}

// Decompose splits a precomposed syllable into its compatibility jamo. final
// is 0 when the syllable has no final consonant. ok is false for any rune
// that is not a precomposed syllable.
func Decompose(r rune) (initial, medial, final rune, ok bool) {
	if !IsSyllable(r) {
		return 0, 0, 0, false
	}
	code := int(r - syllableBase)
	tail := code % finalCount
	vowel := (code / finalCount) % medialCount
	lead := code / blockSize
	return choList[lead], jungList[vowel], jongList[tail], true
}
