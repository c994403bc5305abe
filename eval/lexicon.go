package eval

import (
	"io"
	"os"

	"yu-val-weiss/udum/nlp/format/unimorph"
	nlp "yu-val-weiss/udum/nlp/types"
)

type entry struct {
	bundles []nlp.Bundle
	keys    map[string]bool
	lemmas  map[string]bool
}

// Lexicon is the gold UniMorph inventory of a language: for each inflected
// form, the set of feature bundles and the set of lemmas attested for it.
// It is read-only once built.
type Lexicon struct {
	forms map[string]*entry
}

func NewLexicon() *Lexicon {
	return &Lexicon{forms: make(map[string]*entry)}
}

func BuildLexicon(triples []unimorph.Triple) *Lexicon {
	lex := NewLexicon()
	for _, t := range triples {
		lex.add(t)
	}
	return lex
}

func (l *Lexicon) add(t unimorph.Triple) {
	e, exists := l.forms[t.Form]
	if !exists {
		e = &entry{keys: make(map[string]bool), lemmas: make(map[string]bool)}
		l.forms[t.Form] = e
	}
	e.lemmas[t.Lemma] = true
	key := t.Features.Key()
	if !e.keys[key] {
		e.keys[key] = true
		e.bundles = append(e.bundles, t.Features)
	}
}

// ReadLexicon streams a UniMorph file into a Lexicon.
func ReadLexicon(reader io.Reader) (*Lexicon, error) {
	lex := NewLexicon()
	err := unimorph.Each(reader, func(t unimorph.Triple) error {
		lex.add(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lex, nil
}

func ReadLexiconFile(filename string) (*Lexicon, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadLexicon(file)
}

// Known reports whether form is in the lexicon.
func (l *Lexicon) Known(form string) bool {
	_, exists := l.forms[form]
	return exists
}

// Bundles returns the distinct bundles attested for form, in file order.
func (l *Lexicon) Bundles(form string) []nlp.Bundle {
	if e, exists := l.forms[form]; exists {
		return e.bundles
	}
	return nil
}

func (l *Lexicon) HasLemma(form, lemma string) bool {
	if e, exists := l.forms[form]; exists {
		return e.lemmas[lemma]
	}
	return false
}

// Lemmas returns the lemmas attested for form, in no particular order.
func (l *Lexicon) Lemmas(form string) []string {
	e, exists := l.forms[form]
	if !exists {
		return nil
	}
	lemmas := make([]string, 0, len(e.lemmas))
	for lemma := range e.lemmas {
		lemmas = append(lemmas, lemma)
	}
	return lemmas
}

// Attested reports whether bundle, compared as a set, is one of form's
// gold bundles.
func (l *Lexicon) Attested(form string, bundle nlp.Bundle) bool {
	if e, exists := l.forms[form]; exists {
		return e.keys[bundle.Key()]
	}
	return false
}

// Len is the number of distinct forms.
func (l *Lexicon) Len() int {
	return len(l.forms)
}
