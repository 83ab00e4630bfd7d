package hangul

// Decomposer expands precomposed syllables back into compatibility jamo and
// passes every other rune through.
type Decomposer struct{}

func (Decomposer) Feed(dst []rune, r rune) ([]rune, error) {
	initial, medial, final, ok := Decompose(r)
	if !ok {
		return append(dst, r), nil
	}
	dst = append(dst, initial, medial)
	if final != noFinal {
		dst = append(dst, final)
	}
	return dst, nil
}

func (Decomposer) Flush(dst []rune) ([]rune, error) { return dst, nil }

func (Decomposer) Reset() {}

// DecomposeString expands every syllable in s.
func DecomposeString(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out, _ = Decomposer{}.Feed(out, r)
	}
	return string(out)
}
