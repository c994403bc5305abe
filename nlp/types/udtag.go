package types

import (
	"strings"
)

const (
	UD_SEPARATOR       = "|"
	UD_VALUE_SEPARATOR = "="
	UD_LIST_SEPARATOR  = ","
	UD_NONE            = "_"
)

// UdFeature is a raw UD token: a POS such as VERB or a key=value pair such
// as Number[psor]=Sing.
type UdFeature string

// Key returns the part before '=', or the whole token if there is none.
func (u UdFeature) Key() string {
	if i := strings.Index(string(u), UD_VALUE_SEPARATOR); i >= 0 {
		return string(u[:i])
	}
	return string(u)
}

// Value returns the part after the first '='.
func (u UdFeature) Value() string {
	if i := strings.Index(string(u), UD_VALUE_SEPARATOR); i >= 0 {
		return string(u[i+1:])
	}
	return ""
}

func (u UdFeature) IsList() bool {
	return strings.Contains(string(u), UD_LIST_SEPARATOR)
}

// Relation returns the bracketed marker name (psor, erg, ...) if any.
func (u UdFeature) Relation() (string, bool) {
	s := string(u)
	open := strings.Index(s, "[")
	if open < 0 {
		return "", false
	}
	end := strings.Index(s[open:], "]")
	if end < 0 {
		return "", false
	}
	return s[open+1 : open+end], true
}

// UdTag is a UD POS plus features viewed as a set of raw tokens.
type UdTag struct {
	tokens []UdFeature
	set    map[UdFeature]struct{}
}

// NewUdTag splits a POS|k=v|... string. Repeated tokens are collapsed.
func NewUdTag(raw string) *UdTag {
	parts := strings.Split(raw, UD_SEPARATOR)
	tag := &UdTag{
		tokens: make([]UdFeature, 0, len(parts)),
		set:    make(map[UdFeature]struct{}, len(parts)),
	}
	for _, p := range parts {
		token := UdFeature(p)
		if _, exists := tag.set[token]; exists {
			continue
		}
		tag.set[token] = struct{}{}
		tag.tokens = append(tag.tokens, token)
	}
	return tag
}

// ParseUdTag joins the POS and FEATS columns of a row the way the tag is
// looked up in the mapping table.
func ParseUdTag(pos, feats string) *UdTag {
	return NewUdTag(pos + UD_SEPARATOR + feats)
}

func (t *UdTag) Has(token UdFeature) bool {
	_, exists := t.set[token]
	return exists
}

func (t *UdTag) Len() int {
	return len(t.tokens)
}

// Tokens returns the distinct tokens in first-seen order.
func (t *UdTag) Tokens() []UdFeature {
	return t.tokens
}

func (t *UdTag) String() string {
	strs := make([]string, len(t.tokens))
	for i, token := range t.tokens {
		strs[i] = string(token)
	}
	return strings.Join(strs, UD_SEPARATOR)
}
