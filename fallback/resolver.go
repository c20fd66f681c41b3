// Package fallback decides which cultures to probe, and in which order,
// when a multicultural value has no entry for the culture a caller asked
// for. The built-in behavior walks the culture hierarchy (en-US -> en ->
// invariant root); a Config adds explicit per-anchor chains on top of the
// walk, plus one wildcard chain for everything else.
package fallback

import (
	"sync"

	"golang.org/x/text/language"

	"github.com/CUSTIS-public/CUSTIS.i18n/culture"
)

// Resolver produces the ordered, finite sequence of cultures to probe for
// a value. The sequence always starts with the requested culture and is
// recomputed per call; implementations must be safe for concurrent use.
type Resolver interface {
	GetFallbackChain(requested language.Tag) []language.Tag
}

// Hierarchy is the built-in resolver: the requested culture, its parents
// in order, and finally the invariant root. No chain overrides.
type Hierarchy struct{}

// GetFallbackChain implements Resolver.
func (Hierarchy) GetFallbackChain(requested language.Tag) []language.Tag {
	chain := []language.Tag{requested}
	for tag := requested; !culture.IsInvariant(tag); {
		tag = culture.Parent(tag)
		chain = append(chain, tag)
	}
	return chain
}

var (
	defaultMu       sync.RWMutex
	defaultResolver Resolver
)

// Default returns the process-wide resolver used when callers do not
// supply one explicitly. It never returns nil: absent a SetDefault call
// it returns the built-in Hierarchy resolver. Safe under concurrent
// first access.
func Default() Resolver {
	defaultMu.RLock()
	r := defaultResolver
	defaultMu.RUnlock()

	if r != nil {
		return r
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultResolver == nil {
		defaultResolver = Hierarchy{}
	}
	return defaultResolver
}

// SetDefault installs a custom process-wide resolver. Intended for host
// application start-up code. Passing nil restores the built-in resolver.
func SetDefault(r Resolver) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if r == nil {
		defaultResolver = Hierarchy{}
		return
	}
	defaultResolver = r
}
