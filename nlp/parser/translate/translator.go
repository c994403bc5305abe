package translate

import (
	"fmt"

	"yu-val-weiss/udum/nlp/format/conllu"
	"yu-val-weiss/udum/nlp/lang"
	nlp "yu-val-weiss/udum/nlp/types"
)

type Mode int

const (
	// Basic uses the base translation only
	Basic Mode = iota
	// Refined applies the language rule's adjustments on top
	Refined
)

func (m Mode) String() string {
	if m == Refined {
		return "refined"
	}
	return "basic"
}

// Column is the CoNLL-U column receiving the UniMorph tag.
type Column int

const (
	// Feats replaces the UD features, for conversion
	Feats Column = iota
	// Misc keeps the UD features comparable, for evaluation
	Misc
)

func (c Column) String() string {
	if c == Misc {
		return "MISC"
	}
	return "FEATS"
}

type Translator struct {
	Base   TagTranslator
	Rule   lang.Rule
	Mode   Mode
	Column Column
}

var _ RowTranslator = &Translator{}

func NewTranslator(base TagTranslator, rule lang.Rule, mode Mode, column Column) *Translator {
	return &Translator{
		Base:   base,
		Rule:   rule,
		Mode:   mode,
		Column: column,
	}
}

// Bundle computes the UniMorph reading of row without writing it back.
func (t *Translator) Bundle(row conllu.Row) (nlp.Bundle, error) {
	tag := nlp.ParseUdTag(row.UPosTag, row.Feats)
	bundle, err := t.Base.Translate(tag)
	if err != nil {
		return nil, fmt.Errorf("translating %s (%s): %w", row.Form, tag, err)
	}
	if t.Mode == Refined {
		bundle = t.Rule.Apply(row, bundle)
	}
	if bundle.Len() == 0 {
		bundle.Add(nlp.EmptyFeature)
	}
	return bundle, nil
}

// Translate returns row with its FEATS or MISC column, depending on
// t.Column, replaced by the UniMorph tag.
func (t *Translator) Translate(row conllu.Row) (conllu.Row, error) {
	bundle, err := t.Bundle(row)
	if err != nil {
		return row, err
	}
	switch t.Column {
	case Misc:
		row.Misc = bundle.String()
	default:
		row.Feats = bundle.String()
	}
	return row, nil
}
