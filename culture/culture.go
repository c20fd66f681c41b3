// Package culture exposes the culture hierarchy that fallback resolution
// walks: every culture has a parent that is progressively more general
// (en-US -> en -> the invariant root), and the invariant root is its own
// parent. Cultures are BCP-47 language tags; equality is by canonical name.
package culture

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrInvalidCulture is returned when a culture name cannot be parsed as a
// BCP-47 language tag, even after normalization.
var ErrInvalidCulture = errors.New("invalid culture name")

// Invariant is the root of the culture hierarchy, used as a last resort
// during fallback. It has no parent (Parent returns it unchanged).
var Invariant = language.Und

// Parent returns the next-more-general culture per CLDR inheritance.
// The invariant root is its own parent.
func Parent(tag language.Tag) language.Tag {
	return tag.Parent()
}

// IsInvariant reports whether tag is the invariant root.
func IsInvariant(tag language.Tag) bool {
	return tag == language.Und
}

// Name returns the canonical name of a culture. Two cultures are the same
// culture iff their names are equal.
func Name(tag language.Tag) string {
	return tag.String()
}

// Normalize converts locale spellings commonly found in environment
// variables into a well-formed BCP-47 tag name, e.g. "en_US.UTF-8" becomes
// "en-US". Unparseable input is returned cleaned up but otherwise as-is.
func Normalize(name string) string {
	// Strip encoding and modifier suffixes ("en_US.UTF-8", "de_DE@euro")
	// before anything else, so "C.UTF-8" still matches the C case below.
	clean := name
	if idx := strings.Index(clean, "."); idx != -1 {
		clean = clean[:idx]
	}
	if idx := strings.Index(clean, "@"); idx != -1 {
		clean = clean[:idx]
	}

	// "C" and "POSIX" are language-agnostic; map them to a sensible default.
	switch clean {
	case "C", "POSIX":
		return "en-US"
	}

	clean = strings.ReplaceAll(clean, "_", "-")

	tag, err := language.Parse(clean)
	if err != nil {
		return clean
	}

	return tag.String()
}

// Parse parses a culture name, accepting both canonical BCP-47 spellings
// and the Unix environment-variable forms handled by Normalize.
func Parse(name string) (language.Tag, error) {
	tag, err := language.Parse(Normalize(name))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrInvalidCulture, name, err)
	}
	return tag, nil
}

// MustParse is like Parse but panics on invalid input. Intended for
// package-level declarations and tests.
func MustParse(name string) language.Tag {
	tag, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return tag
}
