package layout

import "hanmoa/internal/hangul"

// Translator turns typed keys into compatibility jamo. Adjacent vowel keys are
// joined into compound vowels the way a dubeolsik keyboard does; consonant
// clusters are left to hangul.ClusterMerger.
type Translator struct {
	layout *Layout
	vowel  rune
	held   bool
}

func NewTranslator(layout *Layout) *Translator {
	return &Translator{layout: layout}
}

func (t *Translator) Feed(dst []rune, key rune) ([]rune, error) {
	symbol := t.layout.Translate(key)
	if symbol == nil || symbol.Kind == SymbolPassthrough {
		return append(t.release(dst), key), nil
	}
	if symbol.Kind == SymbolText {
		return append(t.release(dst), []rune(symbol.Text)...), nil
	}

	jamo := symbol.Jamo
	if t.held {
		if merged, ok := hangul.MergeVowelPair(t.vowel, jamo); ok {
			t.held = false
			return append(dst, merged), nil
		}
		dst = t.release(dst)
	}
	if hangul.CanBeMedial(jamo) {
		t.vowel, t.held = jamo, true
		return dst, nil
	}
	return append(dst, jamo), nil
}

func (t *Translator) Flush(dst []rune) ([]rune, error) {
	return t.release(dst), nil
}

func (t *Translator) Reset() {
	t.vowel, t.held = 0, false
}

func (t *Translator) release(dst []rune) []rune {
	if !t.held {
		return dst
	}
	t.held = false
	return append(dst, t.vowel)
}

// TranslateString maps every key in s through layout.
func TranslateString(layout *Layout, s string) string {
	t := NewTranslator(layout)
	out := make([]rune, 0, len(s))
	for _, key := range s {
		out, _ = t.Feed(out, key)
	}
	out, _ = t.Flush(out)
	return string(out)
}
