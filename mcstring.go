// Package i18n attaches culture-specific variants of a string to a single
// logical value.
//
// A MultiCulturalString is an immutable mapping from culture to string.
// Lookups resolve "the best available variant" for a requested culture
// through a fallback.Resolver; by default that is the culture hierarchy
// walk, and hosts may install explicit fallback chains process-wide via
// fallback.SetDefault or pass a resolver per call.
//
// The bridge functions (AsMultiCulturalString, AsString,
// SetLocalizedValue) let a plain *string carry a culture map without
// changing its type, through an identity-keyed weak cache.
package i18n

import (
	"hash/fnv"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/CUSTIS-public/CUSTIS.i18n/culture"
	"github.com/CUSTIS-public/CUSTIS.i18n/fallback"
)

type entry struct {
	tag   language.Tag
	value string
}

// MultiCulturalString is an immutable mapping from culture to string.
// The zero value is the empty mapping; all mutators return a new value
// and never touch the receiver, so values are safe for unsynchronized
// concurrent use.
type MultiCulturalString struct {
	values map[string]entry // keyed by canonical culture name
}

// Empty is the multicultural string with no culture entries.
var Empty = MultiCulturalString{}

// New returns a multicultural string with a single culture entry.
func New(tag language.Tag, value string) MultiCulturalString {
	return MultiCulturalString{values: map[string]entry{
		tag.String(): {tag: tag, value: value},
	}}
}

// FromMap returns a multicultural string with an entry per map key.
func FromMap(values map[language.Tag]string) MultiCulturalString {
	if len(values) == 0 {
		return Empty
	}
	m := make(map[string]entry, len(values))
	for tag, value := range values {
		m[tag.String()] = entry{tag: tag, value: value}
	}
	return MultiCulturalString{values: m}
}

// SetLocalized returns a copy with value associated to the given culture,
// overwriting any existing entry for it.
func (s MultiCulturalString) SetLocalized(tag language.Tag, value string) MultiCulturalString {
	m := make(map[string]entry, len(s.values)+1)
	maps.Copy(m, s.values)
	m[tag.String()] = entry{tag: tag, value: value}
	return MultiCulturalString{values: m}
}

// Remove returns a copy without an entry for the given culture.
func (s MultiCulturalString) Remove(tag language.Tag) MultiCulturalString {
	if _, ok := s.values[tag.String()]; !ok {
		return s
	}
	if len(s.values) == 1 {
		return Empty
	}
	m := make(map[string]entry, len(s.values)-1)
	maps.Copy(m, s.values)
	delete(m, tag.String())
	return MultiCulturalString{values: m}
}

// Merge returns the union of both values' entries. On culture collisions
// the receiver's entry wins.
func (s MultiCulturalString) Merge(other MultiCulturalString) MultiCulturalString {
	if len(other.values) == 0 {
		return s
	}
	if len(s.values) == 0 {
		return other
	}
	m := make(map[string]entry, len(s.values)+len(other.values))
	maps.Copy(m, other.values)
	maps.Copy(m, s.values)
	return MultiCulturalString{values: m}
}

// ContainsCulture reports whether an entry exists for exactly this
// culture. No fallback is consulted.
func (s MultiCulturalString) ContainsCulture(tag language.Tag) bool {
	_, ok := s.values[tag.String()]
	return ok
}

// Cultures returns the cultures with an entry, sorted by canonical name.
func (s MultiCulturalString) Cultures() []language.Tag {
	names := slices.Sorted(maps.Keys(s.values))
	tags := make([]language.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, s.values[name].tag)
	}
	return tags
}

// Len returns the number of culture entries.
func (s MultiCulturalString) Len() int {
	return len(s.values)
}

// IsEmpty reports whether every stored string is empty. Vacuously true
// when there are no entries.
func (s MultiCulturalString) IsEmpty() bool {
	for _, e := range s.values {
		if e.value != "" {
			return false
		}
	}
	return true
}

// IsWhiteSpace reports whether every stored string is empty or all
// whitespace. Vacuously true when there are no entries.
func (s MultiCulturalString) IsWhiteSpace() bool {
	for _, e := range s.values {
		if strings.TrimSpace(e.value) != "" {
			return false
		}
	}
	return true
}

// GetString resolves the best string for the requested culture using the
// process-wide default resolver. The second result is false when no
// culture in the fallback chain has an entry; an empty stored string is
// still a found result.
func (s MultiCulturalString) GetString(tag language.Tag) (string, bool) {
	return s.GetStringWith(fallback.Default(), tag)
}

// GetCurrentString resolves for the current display culture, keeping the
// not-found indicator that String() coerces to "".
func (s MultiCulturalString) GetCurrentString() (string, bool) {
	return s.GetString(culture.Current())
}

// GetStringWith resolves the best string for the requested culture using
// an explicit resolver. A nil resolver degrades to an exact lookup.
func (s MultiCulturalString) GetStringWith(r fallback.Resolver, tag language.Tag) (string, bool) {
	if len(s.values) == 0 {
		return "", false
	}
	if r == nil {
		return s.GetStringExact(tag)
	}
	for _, candidate := range r.GetFallbackChain(tag) {
		if e, ok := s.values[candidate.String()]; ok {
			return e.value, true
		}
	}
	return "", false
}

// GetStringExact looks up the requested culture without any fallback.
func (s MultiCulturalString) GetStringExact(tag language.Tag) (string, bool) {
	e, ok := s.values[tag.String()]
	return e.value, ok
}

// String resolves for the current display culture with fallback,
// returning "" when nothing resolves. Implements fmt.Stringer.
func (s MultiCulturalString) String() string {
	return s.StringFor(culture.Current())
}

// StringFor is like GetString but coerces not-found to "".
func (s MultiCulturalString) StringFor(tag language.Tag) string {
	value, _ := s.GetString(tag)
	return value
}

// StringWith is like GetStringWith but coerces not-found to "".
func (s MultiCulturalString) StringWith(r fallback.Resolver, tag language.Tag) string {
	value, _ := s.GetStringWith(r, tag)
	return value
}

// CultureString implements CultureStringer, letting a multicultural
// string render itself inside Format and Join arguments.
func (s MultiCulturalString) CultureString(tag language.Tag) string {
	return s.StringFor(tag)
}

// Equal reports whether both values hold identical culture entries. Only
// raw storage is compared; fallback expansion plays no part.
func (s MultiCulturalString) Equal(other MultiCulturalString) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for name, e := range s.values {
		theirs, ok := other.values[name]
		if !ok || theirs.value != e.value {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal: per-entry FNV-1a hashes
// combined commutatively, so entry order cannot matter.
func (s MultiCulturalString) Hash() uint64 {
	var sum uint64
	for name, e := range s.values {
		h := fnv.New64a()
		h.Write([]byte(name))
		h.Write([]byte{0})
		h.Write([]byte(e.value))
		sum ^= h.Sum64()
	}
	return sum
}
