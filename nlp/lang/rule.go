package lang

import (
	"fmt"

	"yu-val-weiss/udum/nlp/format/conllu"
	nlp "yu-val-weiss/udum/nlp/types"
)

// CheckFunc rejects translations known to be unreliable for a language.
type CheckFunc func(row conllu.Row, tags nlp.Bundle) error

// AdjustFunc rewrites a base translation in place and returns it.
type AdjustFunc func(row conllu.Row, tags nlp.Bundle) nlp.Bundle

// A Rule repairs systematic mismatches between UD and UniMorph for one
// language. Rules hold no state and may be shared freely.
type Rule struct {
	Name   string
	Check  CheckFunc
	Adjust AdjustFunc
}

// Identity is used for languages without a specific rule.
var Identity = Rule{Name: "identity"}

func (r Rule) IsIdentity() bool {
	return r.Check == nil && r.Adjust == nil
}

// SanityCheck returns a *CheckError when tags violate the rule's
// precondition; such tokens are excluded from scoring.
func (r Rule) SanityCheck(row conllu.Row, tags nlp.Bundle) error {
	if r.Check == nil {
		return nil
	}
	return r.Check(row, tags)
}

// Apply returns the adjusted copy of tags; tags itself is not modified.
func (r Rule) Apply(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
	adjusted := tags.Clone()
	if r.Adjust == nil {
		return adjusted
	}
	return r.Adjust(row, adjusted)
}

type CheckError struct {
	Rule   string
	Tags   nlp.Bundle
	Reason string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s check failed for %v: %s", e.Rule, e.Tags, e.Reason)
}

// Rules maps a language name to its rule.
var Rules = map[string]Rule{}

func register(rules ...Rule) {
	for _, r := range rules {
		if _, exists := Rules[r.Name]; exists {
			panic("duplicate language rule " + r.Name)
		}
		Rules[r.Name] = r
	}
}

// Lookup returns the rule of l, or Identity.
func Lookup(l Language) Rule {
	if r, exists := Rules[l.Name]; exists {
		return r
	}
	return Identity
}

// check helpers

func requireAny(name string, features ...nlp.Feature) CheckFunc {
	return func(row conllu.Row, tags nlp.Bundle) error {
		for _, f := range features {
			if tags.Has(f) {
				return nil
			}
		}
		return &CheckError{name, tags, fmt.Sprintf("none of %v present", features)}
	}
}

func requireVerb(name string) CheckFunc {
	return requireAny(name, "V", "V.PTCP", "V.CVB", "V.MSDR")
}

func forbid(name string, features ...nlp.Feature) CheckFunc {
	return func(row conllu.Row, tags nlp.Bundle) error {
		for _, f := range features {
			if tags.Has(f) {
				return &CheckError{name, tags, fmt.Sprintf("%v present", f)}
			}
		}
		return nil
	}
}

// forbidExactly rejects bundles equal to any of the given ;-joined tags.
func forbidExactly(name string, bundles ...string) CheckFunc {
	parsed := make([]nlp.Bundle, len(bundles))
	for i, b := range bundles {
		parsed[i] = nlp.ParseBundle(b)
	}
	return func(row conllu.Row, tags nlp.Bundle) error {
		for _, b := range parsed {
			if tags.Equal(b) {
				return &CheckError{name, tags, "impossible combination " + b.String()}
			}
		}
		return nil
	}
}

func checkAll(checks ...CheckFunc) CheckFunc {
	return func(row conllu.Row, tags nlp.Bundle) error {
		for _, check := range checks {
			if err := check(row, tags); err != nil {
				return err
			}
		}
		return nil
	}
}

// adjust helpers

var genders = []nlp.Feature{"MASC", "FEM", "NEUT", "{MASC/NEUT}"}

func discardGenders(tags nlp.Bundle) {
	tags.Discard(genders...)
}

// reset replaces the contents of tags by features.
func reset(tags nlp.Bundle, features ...nlp.Feature) nlp.Bundle {
	for f := range tags {
		delete(tags, f)
	}
	tags.Add(features...)
	return tags
}
