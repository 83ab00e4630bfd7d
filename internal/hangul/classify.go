package hangul

// Role is the positional role a rune can take inside a syllable block.
type Role int

const (
	RoleOther Role = iota
	RoleInitialOnly
	RoleMedialOnly
	RoleFinalOnly
	RoleInitialOrFinal
	RoleDigit
)

func (r Role) String() string {
	switch r {
	case RoleInitialOnly:
		return "initial"
	case RoleMedialOnly:
		return "medial"
	case RoleFinalOnly:
		return "final"
	case RoleInitialOrFinal:
		return "initial-or-final"
	case RoleDigit:
		return "digit"
	default:
		return "other"
	}
}

// Category is a descriptive grouping of compatibility jamo. It is independent
// of position and is not consulted by the composer.
type Category int

const (
	Unknown Category = iota
	Consonant
	Vowel
	ComplexConsonant
	ComplexVowel
)

func (c Category) String() string {
	switch c {
	case Consonant:
		return "consonant"
	case Vowel:
		return "vowel"
	case ComplexConsonant:
		return "complex-consonant"
	case ComplexVowel:
		return "complex-vowel"
	default:
		return "unknown"
	}
}

var categories = map[rune]Category{
	'ㄱ': Consonant, 'ㄴ': Consonant, 'ㄷ': Consonant, 'ㄹ': Consonant, 'ㅁ': Consonant,
	'ㅂ': Consonant, 'ㅅ': Consonant, 'ㅇ': Consonant, 'ㅈ': Consonant, 'ㅊ': Consonant,
	'ㅋ': Consonant, 'ㅌ': Consonant, 'ㅍ': Consonant, 'ㅎ': Consonant,

	'ㅏ': Vowel, 'ㅑ': Vowel, 'ㅓ': Vowel, 'ㅕ': Vowel, 'ㅗ': Vowel,
	'ㅛ': Vowel, 'ㅜ': Vowel, 'ㅠ': Vowel, 'ㅡ': Vowel, 'ㅣ': Vowel,

	'ㄲ': ComplexConsonant, 'ㄸ': ComplexConsonant, 'ㅃ': ComplexConsonant,
	'ㅆ': ComplexConsonant, 'ㅉ': ComplexConsonant,

	'ㅐ': ComplexVowel, 'ㅒ': ComplexVowel, 'ㅔ': ComplexVowel, 'ㅖ': ComplexVowel,
	'ㅘ': ComplexVowel, 'ㅙ': ComplexVowel, 'ㅚ': ComplexVowel, 'ㅝ': ComplexVowel,
	'ㅞ': ComplexVowel, 'ㅟ': ComplexVowel, 'ㅢ': ComplexVowel,
}

// CanBeInitial reports whether r appears in the initial consonant table.
func CanBeInitial(r rune) bool {
	_, ok := choseongIndex[r]
	return ok
}

// CanBeMedial reports whether r appears in the medial vowel table.
func CanBeMedial(r rune) bool {
	_, ok := jungseongIndex[r]
	return ok
}

// CanBeFinal reports whether r appears in the final consonant table. The
// absent-final placeholder is not a member.
func CanBeFinal(r rune) bool {
	_, ok := jongseongIndex[r]
	return ok
}

// IsSyllable reports whether r is a precomposed syllable.
func IsSyllable(r rune) bool {
	return r >= syllableBase && r <= syllableLast
}

// IsKorean reports whether r is a jamo from any role table or a precomposed
// syllable. Digits are not Korean.
func IsKorean(r rune) bool {
	return CanBeInitial(r) || CanBeMedial(r) || CanBeFinal(r) || IsSyllable(r)
}

// RoleOf derives the positional role of r from the role tables.
func RoleOf(r rune) Role {
	initial, final := CanBeInitial(r), CanBeFinal(r)
	switch {
	case initial && final:
		return RoleInitialOrFinal
	case initial:
		return RoleInitialOnly
	case final:
		return RoleFinalOnly
	case CanBeMedial(r):
		return RoleMedialOnly
	case r >= '0' && r <= '9':
		return RoleDigit
	default:
		return RoleOther
	}
}

// Classify returns the descriptive category of r.
func Classify(r rune) Category {
	return categories[r]
}
