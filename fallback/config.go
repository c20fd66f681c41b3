package fallback

import (
	"errors"
	"fmt"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/CUSTIS-public/CUSTIS.i18n/culture"
)

// Wildcard is the anchor name of the chain applied to any culture not
// matched by a more specific anchor. Exactly one chain must use it.
const Wildcard = "*"

var (
	ErrEmptyChain             = errors.New("fallback chain is empty")
	ErrDuplicateAnchor        = errors.New("duplicate fallback chain anchor")
	ErrNoWildcardChain        = errors.New("no wildcard fallback chain")
	ErrMultipleWildcardChains = errors.New("multiple wildcard fallback chains")
)

type anchorChain struct {
	anchor language.Tag
	rest   []language.Tag
}

// Config is an immutable set of named fallback chains. Each chain starts
// at a unique anchor culture followed by the cultures to try after it;
// the single wildcard chain covers every culture no explicit anchor
// matches. Config implements Resolver.
type Config struct {
	chains      *orderedmap.OrderedMap[string, anchorChain]
	wildcard    []language.Tag
	hasWildcard bool
}

// NewConfig builds a Config from chain definitions. Every chain is a list
// of culture names whose first element is the anchor; the anchor "*"
// marks the wildcard chain. Construction fails on an empty chain, an
// unparseable culture name, a duplicate anchor, or unless exactly one
// wildcard chain is present.
func NewConfig(chains ...[]string) (*Config, error) {
	cfg := &Config{
		chains: orderedmap.New[string, anchorChain](),
	}

	for _, names := range chains {
		if len(names) == 0 {
			return nil, ErrEmptyChain
		}

		if names[0] == Wildcard {
			if cfg.hasWildcard {
				return nil, ErrMultipleWildcardChains
			}
			rest, err := parseCultures(names[1:])
			if err != nil {
				return nil, err
			}
			cfg.wildcard = rest
			cfg.hasWildcard = true
			continue
		}

		anchor, err := culture.Parse(names[0])
		if err != nil {
			return nil, err
		}
		if _, exists := cfg.chains.Get(anchor.String()); exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAnchor, anchor)
		}
		rest, err := parseCultures(names[1:])
		if err != nil {
			return nil, err
		}
		cfg.chains.Set(anchor.String(), anchorChain{anchor: anchor, rest: rest})
	}

	if !cfg.hasWildcard {
		return nil, ErrNoWildcardChain
	}

	return cfg, nil
}

// ParseConfig builds a Config from YAML chain definitions: a list of
// lists of culture names, e.g.
//
//	- [fr, fr-CA]
//	- ["*", en]
func ParseConfig(data []byte) (*Config, error) {
	var chains [][]string
	if err := yaml.Unmarshal(data, &chains); err != nil {
		return nil, fmt.Errorf("failed to parse fallback chains: %w", err)
	}
	return NewConfig(chains...)
}

// LoadConfig reads YAML chain definitions from a file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// GetFallbackChain implements Resolver.
//
// The requested culture's hierarchy is walked until it hits an explicit
// anchor or the invariant root. A matching anchor contributes its chain;
// otherwise the wildcard chain applies. Walk cultures always precede
// chain cultures and duplicates keep their earliest position. An empty
// wildcard chain means no fallback is configured for unmatched cultures:
// the result is the requested culture alone.
func (c *Config) GetFallbackChain(requested language.Tag) []language.Tag {
	walk := []language.Tag{requested}
	tag := requested
	for !c.isAnchor(tag) && !culture.IsInvariant(tag) {
		tag = culture.Parent(tag)
		walk = append(walk, tag)
	}

	var tail []language.Tag
	if chain, ok := c.chains.Get(tag.String()); ok {
		tail = chain.rest
	} else if len(c.wildcard) > 0 {
		tail = c.wildcard
	} else {
		return []language.Tag{requested}
	}

	return dedupCultures(walk, tail)
}

// Cultures returns every culture mentioned in the configuration (anchors,
// their chains, the wildcard chain), deduplicated in definition order.
func (c *Config) Cultures() []language.Tag {
	var groups [][]language.Tag
	for pair := c.chains.Oldest(); pair != nil; pair = pair.Next() {
		groups = append(groups, []language.Tag{pair.Value.anchor}, pair.Value.rest)
	}
	groups = append(groups, c.wildcard)
	return dedupCultures(groups...)
}

// Equal reports whether two configurations define the same chains: the
// same wildcard chain and the same anchor-to-chain mapping, order-
// sensitive within each chain.
func (c *Config) Equal(other *Config) bool {
	if other == nil {
		return false
	}
	if !equalCultures(c.wildcard, other.wildcard) {
		return false
	}
	if c.chains.Len() != other.chains.Len() {
		return false
	}
	for pair := c.chains.Oldest(); pair != nil; pair = pair.Next() {
		theirs, ok := other.chains.Get(pair.Key)
		if !ok || !equalCultures(pair.Value.rest, theirs.rest) {
			return false
		}
	}
	return true
}

func (c *Config) isAnchor(tag language.Tag) bool {
	_, ok := c.chains.Get(tag.String())
	return ok
}

func parseCultures(names []string) ([]language.Tag, error) {
	tags := make([]language.Tag, 0, len(names))
	for _, name := range names {
		tag, err := culture.Parse(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func dedupCultures(groups ...[]language.Tag) []language.Tag {
	seen := make(map[string]struct{})
	var out []language.Tag
	for _, group := range groups {
		for _, tag := range group {
			name := tag.String()
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

func equalCultures(a, b []language.Tag) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].String() != b[i].String() {
			return false
		}
	}
	return true
}
