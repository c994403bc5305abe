package types

import (
	"sort"
	"strings"
)

const (
	// EmptyFeature stands for "no applicable feature"; it never appears
	// alongside other features in a serialized bundle.
	EmptyFeature Feature = "_"

	FEATURE_SEPARATOR     = ";"
	ALTERNATION_SEPARATOR = "/"
)

// A Feature is a single UniMorph feature such as V, PST or SG.
type Feature string

func (f Feature) String() string {
	return string(f)
}

func (f Feature) IsEmpty() bool {
	return f == EmptyFeature || len(f) == 0
}

// AlternationGroup renders the "one of these" feature {A/B/...}.
func AlternationGroup(values []Feature) Feature {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = string(v)
	}
	return Feature("{" + strings.Join(strs, ALTERNATION_SEPARATOR) + "}")
}

// A Bundle is an unordered set of features describing one morphological
// reading. Two bundles are equal iff their sets are equal.
type Bundle map[Feature]struct{}

func NewBundle(features ...Feature) Bundle {
	b := make(Bundle, len(features))
	for _, f := range features {
		b[f] = struct{}{}
	}
	return b
}

// ParseBundle splits a ;-joined UniMorph tag. The placeholder tag yields
// the bundle holding only the placeholder.
func ParseBundle(tag string) Bundle {
	parts := strings.Split(tag, FEATURE_SEPARATOR)
	b := make(Bundle, len(parts))
	for _, p := range parts {
		b[Feature(p)] = struct{}{}
	}
	return b
}

func (b Bundle) Has(f Feature) bool {
	_, exists := b[f]
	return exists
}

func (b Bundle) Add(features ...Feature) {
	for _, f := range features {
		b[f] = struct{}{}
	}
}

// Discard removes features if present.
func (b Bundle) Discard(features ...Feature) {
	for _, f := range features {
		delete(b, f)
	}
}

// Replace swaps old for new when old is present and reports whether it did.
func (b Bundle) Replace(old, new Feature) bool {
	if !b.Has(old) {
		return false
	}
	delete(b, old)
	b[new] = struct{}{}
	return true
}

func (b Bundle) Len() int {
	return len(b)
}

func (b Bundle) Clone() Bundle {
	c := make(Bundle, len(b))
	for f := range b {
		c[f] = struct{}{}
	}
	return c
}

func (b Bundle) Equal(other Bundle) bool {
	if len(b) != len(other) {
		return false
	}
	for f := range b {
		if !other.Has(f) {
			return false
		}
	}
	return true
}

// Is reports whether the bundle is exactly the given set.
func (b Bundle) Is(features ...Feature) bool {
	return b.Equal(NewBundle(features...))
}

// Contains reports whether every given feature is in the bundle.
func (b Bundle) Contains(features ...Feature) bool {
	for _, f := range features {
		if !b.Has(f) {
			return false
		}
	}
	return true
}

// ContainsStrictly is Contains plus at least one feature beyond the given
// ones.
func (b Bundle) ContainsStrictly(features ...Feature) bool {
	other := NewBundle(features...)
	return b.Contains(features...) && len(b) > len(other)
}

// Features returns the members sorted.
func (b Bundle) Features() []Feature {
	retval := make([]Feature, 0, len(b))
	for f := range b {
		retval = append(retval, f)
	}
	sort.Slice(retval, func(i, j int) bool { return retval[i] < retval[j] })
	return retval
}

// Key is the canonical string of the set, usable as a map key.
func (b Bundle) Key() string {
	return b.String()
}

func (b Bundle) String() string {
	if len(b) == 0 {
		return string(EmptyFeature)
	}
	features := b.Features()
	strs := make([]string, len(features))
	for i, f := range features {
		strs[i] = string(f)
	}
	return strings.Join(strs, FEATURE_SEPARATOR)
}
