package translate

import (
	"fmt"
	"sort"
	"strings"

	"yu-val-weiss/udum/nlp/format/featmap"
	nlp "yu-val-weiss/udum/nlp/types"
)

const (
	PSOR_RELATION = "psor"

	POSSESSION_PREFIX = "PSS"
	ARGUMENT_PREFIX   = "ARG"

	// a possessor value of None marks "possessed by none"
	POSSESSOR_NONE = "None"
	POSSESSED      nlp.Feature = "PSSD"

	MAX_PSOR_TOKENS = 2
)

var (
	ArgumentRoles = map[string]string{
		"erg": "ER",
		"dat": "DA",
		"abs": "AB",
	}
	// relations which mark a grammatical function or pseudo-argument
	// rather than an agreeing argument
	SkippedRelations = map[string]bool{
		"psed": true,
		"gram": true,
	}
	NumberCodes = map[string]string{
		"Sing": "S",
		"Plur": "P",
		"Dual": "D",
	}
	PersonCodes = map[string]string{
		"1": "1",
		"2": "2",
		"3": "3",
	}
)

// ConsistencyError signals a UD convention the mapping does not account
// for. It is never recovered from.
type ConsistencyError struct {
	Synthesis string
	Tokens    []nlp.UdFeature
	Reason    string
}

func (e *ConsistencyError) Error() string {
	strs := make([]string, len(e.Tokens))
	for i, t := range e.Tokens {
		strs[i] = string(t)
	}
	return fmt.Sprintf("%s synthesis: %s in [%s]", e.Synthesis, e.Reason, strings.Join(strs, " "))
}

// Base is the language independent UD -> UniMorph translation.
type Base struct {
	Table *featmap.Table
}

var _ TagTranslator = &Base{}

func NewBase(table *featmap.Table) *Base {
	return &Base{Table: table}
}

func (b *Base) Translate(tag *nlp.UdTag) (nlp.Bundle, error) {
	possession, err := Possession(tag)
	if err != nil {
		return nil, err
	}
	arguments, err := Arguments(tag)
	if err != nil {
		return nil, err
	}
	features := make([]nlp.Feature, 0, tag.Len()+len(arguments)+1)
	features = append(features, possession)
	features = append(features, arguments...)

	for _, token := range tag.Tokens() {
		if _, marked := token.Relation(); marked {
			continue
		}
		if token.IsList() {
			features = append(features, b.translateList(token))
		} else {
			features = append(features, b.Table.Lookup(token))
		}
	}

	bundle := nlp.NewBundle()
	for _, f := range features {
		if !f.IsEmpty() {
			bundle.Add(f)
		}
	}
	if bundle.Len() == 0 {
		bundle.Add(nlp.EmptyFeature)
	}
	return bundle, nil
}

// translateList maps key=v1,v2 value by value; several distinct results
// become an alternation group.
func (b *Base) translateList(token nlp.UdFeature) nlp.Feature {
	key := token.Key()
	values := strings.Split(token.Value(), nlp.UD_LIST_SEPARATOR)
	mapped := make([]nlp.Feature, 0, len(values))
	seen := make(map[nlp.Feature]bool, len(values))
	for _, value := range values {
		um := b.Table.Lookup(nlp.UdFeature(key + nlp.UD_VALUE_SEPARATOR + value))
		if um.IsEmpty() || seen[um] {
			continue
		}
		seen[um] = true
		mapped = append(mapped, um)
	}
	switch len(mapped) {
	case 0:
		return nlp.EmptyFeature
	case 1:
		return mapped[0]
	default:
		return nlp.AlternationGroup(mapped)
	}
}

// personNumber reads at most one person digit and one number letter from
// tokens; a Person or Number key without a known value is an error.
func personNumber(synthesis string, tokens []nlp.UdFeature) (string, string, error) {
	var person, number string
	for _, token := range tokens {
		key := token.Key()
		switch {
		case strings.HasPrefix(key, "Number"):
			code, known := NumberCodes[token.Value()]
			if !known || len(number) > 0 {
				return "", "", &ConsistencyError{synthesis, tokens, "unrecognized number " + string(token)}
			}
			number = code
		case strings.HasPrefix(key, "Person"):
			code, known := PersonCodes[token.Value()]
			if !known || len(person) > 0 {
				return "", "", &ConsistencyError{synthesis, tokens, "unrecognized person " + string(token)}
			}
			person = code
		}
	}
	return person, number, nil
}

// Possession synthesizes a single PSS<person><number> feature from the
// [psor] tokens of tag.
func Possession(tag *nlp.UdTag) (nlp.Feature, error) {
	var psor []nlp.UdFeature
	for _, token := range tag.Tokens() {
		if rel, marked := token.Relation(); marked && rel == PSOR_RELATION {
			psor = append(psor, token)
		}
	}
	if len(psor) == 0 {
		return nlp.EmptyFeature, nil
	}
	for _, token := range psor {
		if token.Value() == POSSESSOR_NONE {
			return POSSESSED, nil
		}
	}
	if len(psor) > MAX_PSOR_TOKENS {
		return nlp.EmptyFeature, &ConsistencyError{"possession", psor, fmt.Sprintf("%d possessor tokens", len(psor))}
	}
	person, number, err := personNumber("possession", psor)
	if err != nil {
		return nlp.EmptyFeature, err
	}
	return nlp.Feature(POSSESSION_PREFIX + person + number), nil
}

// Arguments synthesizes one ARG<role><person><number> feature per
// bracketed relation other than [psor].
func Arguments(tag *nlp.UdTag) ([]nlp.Feature, error) {
	groups := make(map[string][]nlp.UdFeature)
	for _, token := range tag.Tokens() {
		rel, marked := token.Relation()
		if !marked || rel == PSOR_RELATION {
			continue
		}
		groups[rel] = append(groups[rel], token)
	}
	if len(groups) == 0 {
		return []nlp.Feature{nlp.EmptyFeature}, nil
	}

	relations := make([]string, 0, len(groups))
	for rel := range groups {
		relations = append(relations, rel)
	}
	sort.Strings(relations)

	contributions := make([]nlp.Feature, 0, len(groups))
	for _, rel := range relations {
		tokens := groups[rel]
		if SkippedRelations[rel] {
			contributions = append(contributions, nlp.EmptyFeature)
			continue
		}
		role, known := ArgumentRoles[rel]
		if !known {
			return nil, &ConsistencyError{"argument", tokens, "unknown relation [" + rel + "]"}
		}
		person, number, err := personNumber("argument", tokens)
		if err != nil {
			return nil, err
		}
		contributions = append(contributions, nlp.Feature(ARGUMENT_PREFIX+role+person+number))
	}
	return contributions, nil
}
