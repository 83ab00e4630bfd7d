package layout

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

type SymbolKind int

const (
	SymbolPassthrough SymbolKind = iota
	SymbolText
	SymbolJamo
)

type LayoutSymbol struct {
	Kind SymbolKind
	Text string
	Jamo rune
}

type LayoutEntry struct {
	Normal  *LayoutSymbol
	Shifted *LayoutSymbol
}

// Layout maps Latin keyboard characters to the symbols a Korean layout
// produces for them. Upper-case characters select the shifted symbol.
type Layout struct {
	name    string
	mapping map[rune]LayoutEntry
}

func NewLayout(name string) *Layout {
	return &Layout{name: name, mapping: make(map[rune]LayoutEntry)}
}

func (l *Layout) Name() string { return l.name }

func (l *Layout) Translate(key rune) *LayoutSymbol {
	if l == nil {
		return nil
	}
	base := unicode.ToLower(key)
	shift := base != key
	entry, ok := l.mapping[base]
	if !ok {
		return nil
	}
	if shift && entry.Shifted != nil {
		return entry.Shifted
	}
	if entry.Normal != nil {
		return entry.Normal
	}
	return entry.Shifted
}

func (l *Layout) ApplyOverride(key rune, shift bool, symbol *LayoutSymbol) {
	if l == nil {
		return
	}
	key = unicode.ToLower(key)
	entry := l.mapping[key]
	if shift {
		entry.Shifted = symbol
	} else {
		entry.Normal = symbol
	}
	l.mapping[key] = entry
}

func NewTextSymbol(value string) *LayoutSymbol {
	return &LayoutSymbol{Kind: SymbolText, Text: value}
}

func NewJamoSymbol(value rune) *LayoutSymbol {
	return &LayoutSymbol{Kind: SymbolJamo, Jamo: value}
}

func NewPassthroughSymbol() *LayoutSymbol {
	return &LayoutSymbol{Kind: SymbolPassthrough}
}

func addEntry(mapping map[rune]LayoutEntry, key rune, normal, shifted rune) {
	entry := LayoutEntry{Normal: NewJamoSymbol(normal)}
	if shifted != 0 {
		entry.Shifted = NewJamoSymbol(shifted)
	}
	mapping[key] = entry
}

func buildDubeolsik() *Layout {
	layout := NewLayout("dubeolsik")
	mapping := layout.mapping
	addEntry(mapping, 'q', 'ㅂ', 'ㅃ')
	addEntry(mapping, 'w', 'ㅈ', 'ㅉ')
	addEntry(mapping, 'e', 'ㄷ', 'ㄸ')
	addEntry(mapping, 'r', 'ㄱ', 'ㄲ')
	addEntry(mapping, 't', 'ㅅ', 'ㅆ')
	addEntry(mapping, 'y', 'ㅛ', 0)
	addEntry(mapping, 'u', 'ㅕ', 0)
	addEntry(mapping, 'i', 'ㅑ', 0)
	addEntry(mapping, 'o', 'ㅐ', 'ㅒ')
	addEntry(mapping, 'p', 'ㅔ', 'ㅖ')
	addEntry(mapping, 'a', 'ㅁ', 0)
	addEntry(mapping, 's', 'ㄴ', 0)
	addEntry(mapping, 'd', 'ㅇ', 0)
	addEntry(mapping, 'f', 'ㄹ', 0)
	addEntry(mapping, 'g', 'ㅎ', 0)
	addEntry(mapping, 'h', 'ㅗ', 0)
	addEntry(mapping, 'j', 'ㅓ', 0)
	addEntry(mapping, 'k', 'ㅏ', 0)
	addEntry(mapping, 'l', 'ㅣ', 0)
	addEntry(mapping, 'z', 'ㅋ', 0)
	addEntry(mapping, 'x', 'ㅌ', 0)
	addEntry(mapping, 'c', 'ㅊ', 0)
	addEntry(mapping, 'v', 'ㅍ', 0)
	addEntry(mapping, 'b', 'ㅠ', 0)
	addEntry(mapping, 'n', 'ㅜ', 0)
	addEntry(mapping, 'm', 'ㅡ', 0)
	return layout
}

func buildNone() *Layout {
	return NewLayout("none")
}

var builders = map[string]func() *Layout{
	"dubeolsik": buildDubeolsik,
	"none":      buildNone,
}

func AvailableLayouts() []string {
	names := lo.Keys(builders)
	slices.Sort(names)
	return names
}

// Load builds a fresh layout by name. The empty name selects "none".
func Load(name string) (*Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "raw", "latin":
		return buildNone(), nil
	case "dubeolsik", "2beolsik", "두벌식":
		return buildDubeolsik(), nil
	default:
		return nil, fmt.Errorf("unknown layout %q (available: %s)", name, strings.Join(AvailableLayouts(), ", "))
	}
}
