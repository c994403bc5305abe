package eval

import (
	"fmt"

	"yu-val-weiss/udum/nlp/format/conllu"
	"yu-val-weiss/udum/nlp/lang"
	nlp "yu-val-weiss/udum/nlp/types"
)

// Result is the outcome of scoring one translated row: Scored or Skipped.
type Result interface {
	fmt.Stringer
	isResult()
}

type Scored struct {
	Match  bool
	Bundle nlp.Bundle
}

func (Scored) isResult() {}

func (s Scored) String() string {
	if s.Match {
		return "match"
	}
	return "mismatch"
}

type SkipReason int

const (
	UnknownForm SkipReason = iota
	LemmaMismatch
	FailedCheck
)

var skipReasons = [...]string{
	UnknownForm:   "unknown form",
	LemmaMismatch: "lemma mismatch",
	FailedCheck:   "sanity check",
}

func (r SkipReason) String() string {
	return skipReasons[r]
}

type Skipped struct {
	Reason SkipReason
	Err    error
}

func (Skipped) isResult() {}

func (s Skipped) String() string {
	if s.Err != nil {
		return fmt.Sprintf("skipped (%v): %v", s.Reason, s.Err)
	}
	return fmt.Sprintf("skipped (%v)", s.Reason)
}

// Scorer compares a translated row, whose UniMorph tag is in the MISC
// column, with the gold lexicon.
type Scorer struct {
	Lexicon *Lexicon
	Rule    lang.Rule
}

func NewScorer(lexicon *Lexicon, rule lang.Rule) *Scorer {
	return &Scorer{Lexicon: lexicon, Rule: rule}
}

// Score never fails: tokens that cannot be compared are Skipped and do not
// count towards recall.
func (s *Scorer) Score(row conllu.Row) Result {
	if !s.Lexicon.Known(row.Form) {
		return Skipped{Reason: UnknownForm}
	}
	bundle := nlp.ParseBundle(row.Misc)
	if !s.Lexicon.HasLemma(row.Form, row.Lemma) {
		return Skipped{Reason: LemmaMismatch}
	}
	if err := s.Rule.SanityCheck(row, bundle); err != nil {
		return Skipped{Reason: FailedCheck, Err: err}
	}
	return Scored{
		Match:  s.Lexicon.Attested(row.Form, bundle),
		Bundle: bundle,
	}
}
