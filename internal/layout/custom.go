package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

type CustomPair struct {
	Key     string `json:"key"`
	Kind    string `json:"kind"`
	Normal  string `json:"normal"`
	Shifted string `json:"shifted"`
}

func LoadCustomPairs(path string) ([]CustomPair, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open custom keypair file: %w", err)
	}
	defer file.Close()

	var pairs []CustomPair
	if err := json.NewDecoder(file).Decode(&pairs); err != nil {
		return nil, fmt.Errorf("parse custom keypair file: %w", err)
	}
	return pairs, nil
}

func ApplyCustomPairs(l *Layout, pairs []CustomPair) error {
	for _, pair := range pairs {
		key, err := resolveKey(pair.Key)
		if err != nil {
			return err
		}
		entry := LayoutEntry{}

		switch strings.ToLower(pair.Kind) {
		case "passthrough":
			entry.Normal = NewPassthroughSymbol()
		case "text":
			entry.Normal = NewTextSymbol(pair.Normal)
			if pair.Shifted != "" {
				entry.Shifted = NewTextSymbol(pair.Shifted)
			}
		case "jamo":
			if entry.Normal, err = makeJamoSymbol(pair.Normal); err != nil {
				return err
			}
			if entry.Shifted, err = makeJamoSymbol(pair.Shifted); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported custom keypair kind '%s'", pair.Kind)
		}

		l.mapping[key] = entry
	}
	return nil
}

func makeJamoSymbol(value string) (*LayoutSymbol, error) {
	if value == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return nil, fmt.Errorf("jamo value must be a single rune, got %q", value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return NewJamoSymbol(r), nil
}

func resolveKey(name string) (rune, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return 0, fmt.Errorf("empty key name")
	case "space":
		return ' ', nil
	case "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return 0, fmt.Errorf("unknown key name '%s'", name)
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.ToLower(r), nil
}
