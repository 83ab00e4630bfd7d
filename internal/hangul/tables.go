package hangul

import "github.com/samber/lo"

const (
	syllableBase = 0xAC00
	syllableLast = 0xD7A3

	medialCount = 21
	finalCount  = 28
	blockSize   = medialCount * finalCount
)

// noFinal is the placeholder stored at index 0 of the final table.
const noFinal rune = 0

var (
	choList  = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	jungList = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	jongList = []rune{noFinal, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

var (
	// doubleFinal lists the consonant pairs that merge into a final cluster.
	doubleFinal = map[[2]rune]rune{
		{'ㄱ', 'ㅅ'}: 'ㄳ',
		{'ㄴ', 'ㅈ'}: 'ㄵ',
		{'ㄴ', 'ㅎ'}: 'ㄶ',
		{'ㄹ', 'ㄱ'}: 'ㄺ',
		{'ㄹ', 'ㅁ'}: 'ㄻ',
		{'ㄹ', 'ㅂ'}: 'ㄼ',
		{'ㄹ', 'ㅅ'}: 'ㄽ',
		{'ㄹ', 'ㅌ'}: 'ㄾ',
		{'ㄹ', 'ㅍ'}: 'ㄿ',
		{'ㄹ', 'ㅎ'}: 'ㅀ',
		{'ㅂ', 'ㅅ'}: 'ㅄ',
	}
	doubleMedial = map[[2]rune]rune{
		{'ㅗ', 'ㅏ'}: 'ㅘ',
		{'ㅗ', 'ㅐ'}: 'ㅙ',
		{'ㅗ', 'ㅣ'}: 'ㅚ',
		{'ㅜ', 'ㅓ'}: 'ㅝ',
		{'ㅜ', 'ㅔ'}: 'ㅞ',
		{'ㅜ', 'ㅣ'}: 'ㅟ',
		{'ㅡ', 'ㅣ'}: 'ㅢ',
	}
)

var (
	choseongIndex  = buildIndex(choList)
	jungseongIndex = buildIndex(jungList)
	jongseongIndex = lo.OmitByKeys(buildIndex(jongList), []rune{noFinal})

	finalDecompose = invertDouble(doubleFinal)
	clusterLeads   = lo.SliceToMap(lo.Keys(doubleFinal), func(pair [2]rune) (rune, struct{}) {
		return pair[0], struct{}{}
	})
)

func buildIndex(list []rune) map[rune]int {
	idx := make(map[rune]int, len(list))
	for i, ch := range list {
		idx[ch] = i
	}
	return idx
}

func invertDouble(src map[[2]rune]rune) map[rune][2]rune {
	dst := make(map[rune][2]rune, len(src))
	for pair, value := range src {
		dst[value] = pair
	}
	return dst
}

// Initials returns a copy of the 19 initial consonants in table order.
func Initials() []rune { return append([]rune(nil), choList...) }

// Medials returns a copy of the 21 medial vowels in table order.
func Medials() []rune { return append([]rune(nil), jungList...) }

// Finals returns a copy of the 28 final slots in table order. Index 0 is the
// absent-final placeholder and holds 0.
func Finals() []rune { return append([]rune(nil), jongList...) }

// MergeVowelPair joins two medial vowels into a compound vowel.
func MergeVowelPair(first, second rune) (rune, bool) {
	merged, ok := doubleMedial[[2]rune{first, second}]
	return merged, ok
}

// MergeConsonantPair joins two consonants into a final cluster.
func MergeConsonantPair(first, second rune) (rune, bool) {
	merged, ok := doubleFinal[[2]rune{first, second}]
	return merged, ok
}

// SplitCluster returns the two consonants a final cluster is made of.
func SplitCluster(cluster rune) (rune, rune, bool) {
	pair, ok := finalDecompose[cluster]
	return pair[0], pair[1], ok
}
