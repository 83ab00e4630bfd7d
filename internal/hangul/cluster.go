package hangul

// ClusterMerger joins adjacent consonant pairs into final clusters (ㄱ+ㅅ
// becomes ㄳ and so on). It looks one rune ahead and knows nothing about
// syllable structure, so it is meant to run before a Composer.
type ClusterMerger struct {
	pending rune
	held    bool
}

func NewClusterMerger() *ClusterMerger {
	return &ClusterMerger{}
}

func (m *ClusterMerger) Feed(dst []rune, r rune) ([]rune, error) {
	if m.held {
		m.held = false
		if merged, ok := MergeConsonantPair(m.pending, r); ok {
			return append(dst, merged), nil
		}
		dst = append(dst, m.pending)
	}
	if _, ok := clusterLeads[r]; ok {
		m.pending, m.held = r, true
		return dst, nil
	}
	return append(dst, r), nil
}

func (m *ClusterMerger) Flush(dst []rune) ([]rune, error) {
	if m.held {
		m.held = false
		dst = append(dst, m.pending)
	}
	return dst, nil
}

func (m *ClusterMerger) Reset() {
	*m = ClusterMerger{}
}

// MergeDoubleConsonants applies the cluster table to in in a single pass.
func MergeDoubleConsonants(in []rune) []rune {
	m := NewClusterMerger()
	out := make([]rune, 0, len(in))
	for _, r := range in {
		out, _ = m.Feed(out, r)
	}
	out, _ = m.Flush(out)
	return out
}
