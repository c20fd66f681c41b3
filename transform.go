package i18n

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/CUSTIS-public/CUSTIS.i18n/fallback"
)

// ToLower returns a copy with every stored string lower-cased using its
// own culture's casing rules (e.g. Turkish dotted/dotless i).
func (s MultiCulturalString) ToLower() MultiCulturalString {
	return s.mapValues(func(tag language.Tag, value string) string {
		return cases.Lower(tag).String(value)
	})
}

// ToUpper returns a copy with every stored string upper-cased using its
// own culture's casing rules.
func (s MultiCulturalString) ToUpper() MultiCulturalString {
	return s.mapValues(func(tag language.Tag, value string) string {
		return cases.Upper(tag).String(value)
	})
}

func (s MultiCulturalString) mapValues(transform func(language.Tag, string) string) MultiCulturalString {
	if len(s.values) == 0 {
		return Empty
	}
	m := make(map[string]entry, len(s.values))
	for name, e := range s.values {
		m[name] = entry{tag: e.tag, value: transform(e.tag, e.value)}
	}
	return MultiCulturalString{values: m}
}

// PadLeft pads the resolved string for every resolvable culture to at
// least width runes. Padding operates on resolved values, not raw
// storage: cultures the default resolver's configuration bridges into
// the stored set gain entries of their own in the result.
func (s MultiCulturalString) PadLeft(width int, pad rune) MultiCulturalString {
	return s.padResolved(width, pad, true)
}

// PadRight is the right-hand counterpart of PadLeft.
func (s MultiCulturalString) PadRight(width int, pad rune) MultiCulturalString {
	return s.padResolved(width, pad, false)
}

// cultureLister is satisfied by configuration-backed resolvers that can
// enumerate the cultures they mention.
type cultureLister interface {
	Cultures() []language.Tag
}

func (s MultiCulturalString) padResolved(width int, pad rune, left bool) MultiCulturalString {
	r := fallback.Default()

	candidates := s.Cultures()
	if lister, ok := r.(cultureLister); ok {
		for _, tag := range lister.Cultures() {
			if !s.ContainsCulture(tag) {
				candidates = append(candidates, tag)
			}
		}
	}

	m := make(map[string]entry, len(candidates))
	for _, tag := range candidates {
		value, ok := s.GetStringWith(r, tag)
		if !ok {
			continue
		}
		m[tag.String()] = entry{tag: tag, value: padString(value, width, pad, left)}
	}
	if len(m) == 0 {
		return Empty
	}
	return MultiCulturalString{values: m}
}

func padString(value string, width int, pad rune, left bool) string {
	count := width - utf8.RuneCountInString(value)
	if count <= 0 {
		return value
	}
	padding := strings.Repeat(string(pad), count)
	if left {
		return padding + value
	}
	return value + padding
}
