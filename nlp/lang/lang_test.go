package lang

import (
	"errors"
	"testing"

	"yu-val-weiss/udum/nlp/format/conllu"
	nlp "yu-val-weiss/udum/nlp/types"
)

func row(form string) conllu.Row {
	return conllu.Row{ID: "1", Form: form, Lemma: form, Feats: "_", Misc: "_"}
}

// readings typical of base translations across the supported languages
var fixtures = []string{
	"V;SG;3;PRS;FIN",
	"V;SG;3;PRS;IND;FIN",
	"V;PL;3;PST;IND;FIN",
	"V;PL;3;IND;FIN",
	"V;SG;1;IPFV;IND;FIN",
	"V;SG;3;IPFV;SBJV;FIN",
	"V;SG;3;PST;SBJV;FIN",
	"V;SG;2;IMP;PRS;FIN",
	"V;COND;SG;1;FIN",
	"V;PRS",
	"V;PRS;PASS",
	"V;V.MSDR",
	"V;V.MSDR;FIN",
	"V;NFIN",
	"V;NFIN;IPFV",
	"V;NFIN;PFV;ACT",
	"V;V.PTCP;PST;PASS",
	"V;V.PTCP;PST;MASC;SG",
	"V;V.PTCP;PRS;IPFV",
	"V;V.PTCP;PFV;ADJ",
	"V;V.PTCP",
	"V;V.CVB;PRS",
	"V;SUP;ACT",
	"V;PST+PRF;IND;3;SG;FIN",
	"V;ACT;NOM;SG;V.PTCP",
	"V;ACT;FIN;POS;IND;PRS;3;SG",
	"V;COND;FH;REFL",
	"AUX;IND;PRS;3;SG;FIN",
	"AUX;V.PTCP;PST;SG;FEM",
	"N;SG",
	"N;PL;MASC",
	"N;SG;NOM;{MASC/NEUT};INAN",
	"N;SG;{ACC/NOM};FEM",
	"N;PL;GEN;MASC+FEM",
	"N;SG;3;PSS3S",
	"ADJ;GEN;SG",
	"ADJ;PL",
	"ADJ;DEF;SG",
	"ADJ;PL;V.PTCP;PST;NOM",
	"ADJ;POS;PL;MASC;HUM",
	"PROPN;SG;3;MASC",
	"RL;N;SG",
	"_",
}

var forms = []string{"walked", "hablara", "falado", "falaram", "dogs"}

func TestAdjustIsIdempotent(t *testing.T) {
	for name, rule := range Rules {
		for _, fixture := range fixtures {
			for _, form := range forms {
				r := row(form)
				once := rule.Apply(r, nlp.ParseBundle(fixture))
				twice := rule.Apply(r, once)
				if !once.Equal(twice) {
					t.Errorf("%s: %s (%s) adjusted to %v then %v", name, fixture, form, once, twice)
				}
			}
		}
	}
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	tags := nlp.ParseBundle("V;SG;3;PRS;FIN")
	adjusted := English.Apply(row("walks"), tags)
	if !tags.Has("FIN") {
		t.Error("Expected input bundle to keep FIN")
	}
	if adjusted.Has("FIN") {
		t.Error("Expected adjusted bundle to drop FIN")
	}
}

func TestAdjust(t *testing.T) {
	var tests = []struct {
		rule    Rule
		form    string
		in, out string
	}{
		{Danish, "går", "V;SG;3;PRS;FIN", "V;SG;3;PRS"},
		{English, "walk", "V;PRS;FIN", "V;NFIN"},
		{English, "walking", "V;V.MSDR", "PRS;V;V.PTCP"},
		{German, "gegangen", "V;V.PTCP;FIN", "PST;V.PTCP"},
		{German, "Hund", "N;SG;NOM;MASC", "N;SG;NOM"},
		{Bulgarian, "писал", "V.PTCP;PFV;ADJ", "V.PTCP;PST;ACT"},
		{Bulgarian, "писал", "V;V.PTCP;PFV;ADJ", "V.PTCP;ACT"},
		{Bulgarian, "който", "RL;PRO", "SPRL;PRO"},
		{Catalan, "cantava", "V;SG;3;IPFV;IND;FIN", "V;SG;3;IPFV;PST;IND"},
		{Catalan, "cantà", "V;SG;3;PST;IND;FIN", "V;SG;3;PST;PFV;IND"},
		{Catalan, "cantés", "V;SG;3;IPFV;SBJV;FIN", "V;SG;3;PST;SBJV"},
		{French, "chante", "V;SG;2;IMP;PRS;FIN", "V;SG;2;IMP;POS"},
		{French, "chantant", "V;V.MSDR", "PRS;V.CVB"},
		{French, "chantât", "V;PST;SBJV;3;SG;FIN", "V;PST;PFV;SBJV;3;SG"},
		{French, "chantée", "V;V.PTCP;PST;FEM;SG", "V.PTCP;PST"},
		{Italian, "cantasse", "V;PST;SBJV;3;SG;FIN", "V;PST;PFV;SBJV;3;SG"},
		{Italian, "canterebbe", "V;COND;PRS;SG;3;FIN", "V;COND;SG;3"},
		{Finnish, "sanottu", "V;V.PTCP;NOM;PASS;SG", "PASS;PST;V.PTCP"},
		{Finnish, "sanoo", "V;FIN;SG;3;PRS", "V;POS;SG;3;PRS"},
		{Hebrew, "כלב", "N;SG;MASC", "N;SG;NDEF"},
		{Latvian, "būtu", "V;COND;FIN", "V;COND;PRS"},
		{Polish, "zrobić", "V;NFIN;PFV;ACT", "V;NFIN"},
		{Polish, "robić", "V;NFIN;IPFV", "V;NFIN"},
		{Portuguese, "falado", "V;V.PTCP;PST;PASS", "V.PTCP;PST;MASC;SG"},
		{Portuguese, "falaram", "V;3;IND;PL;FIN", "V;3;IND;PL;PFV;PST"},
		{Portuguese, "falara", "V;PST+PRF;IND;3;SG;FIN", "V;PST;PRF;IND;3;SG"},
		{Romanian, "casa", "N;SG;{ACC/NOM};FEM", "N;SG;NOM/ACC"},
		{Spanish, "hablara", "V;SG;3;IPFV;SBJV;FIN", "V;SG;3;PST;SBJV;LGSPEC1"},
		{Spanish, "hablase", "V;SG;3;IPFV;SBJV;FIN", "V;SG;3;PST;SBJV"},
		{Spanish, "habló", "V;SG;3;PST;IND;FIN", "V;SG;3;PST;PFV;IND"},
		{Spanish, "ha", "AUX;SG;3;PRS;IND;FIN", "V;SG;3;PRS;IND"},
		{Swedish, "skrivit", "V;SUP;ACT", "ACT;V.CVB"},
		{Swedish, "skriver", "V;IND;PRS;FIN", "V;IND;PRS;ACT"},
		{Turkish, "ev", "N;SG;3", "N;SG"},
		{Ukrainian, "читаючи", "V;V.CVB;IPFV", "V.CVB"},
		{Urdu, "Ali", "PROPN;SG;3;MASC", "PROPN;SG"},
	}
	for _, test := range tests {
		got := test.rule.Apply(row(test.form), nlp.ParseBundle(test.in))
		if !got.Equal(nlp.ParseBundle(test.out)) {
			t.Errorf("%s %s: expected %s, got %v", test.rule.Name, test.in, test.out, got)
		}
	}
}

func TestSanityCheck(t *testing.T) {
	var tests = []struct {
		rule Rule
		tags string
		ok   bool
	}{
		{Basque, "V;PRS;3;SG", true},
		{Basque, "N;SG", false},
		{Basque, "V.PTCP;PST", true},
		{Bulgarian, "N;SG", false},
		{Bulgarian, "ADJ;SG", true},
		{German, "N;SG", true},
		{German, "ADJ", false},
		{Finnish, "ADJ;GEN;SG", false},
		{Finnish, "ADJ;GEN;SG;POS", true},
		{Finnish, "N;0", false},
		{Latvian, "3;IND;PRS;V", false},
		{Latvian, "3;IND;PRS;V;SG", true},
		{Latvian, "N;ESS", false},
		{Italian, "N;SG", true},
		{Identity, "anything", true},
	}
	for _, test := range tests {
		err := test.rule.SanityCheck(row("x"), nlp.ParseBundle(test.tags))
		if (err == nil) != test.ok {
			t.Errorf("%s %s: expected ok=%v, got %v", test.rule.Name, test.tags, test.ok, err)
		}
		var checkErr *CheckError
		if err != nil && !errors.As(err, &checkErr) {
			t.Errorf("%s %s: expected *CheckError, got %T", test.rule.Name, test.tags, err)
		}
	}
}

func TestLookup(t *testing.T) {
	l, err := LookupLanguage("es")
	if err != nil {
		t.Fatal(err.Error())
	}
	if Lookup(l).Name != "Spanish" {
		t.Errorf("Expected Spanish rule, got %s", Lookup(l).Name)
	}
	ru, err := LookupLanguage("rus")
	if err != nil {
		t.Fatal(err.Error())
	}
	if !Lookup(ru).IsIdentity() {
		t.Errorf("Expected identity rule for Russian")
	}
	if !Lookup(Language{}).IsIdentity() {
		t.Errorf("Expected identity rule for the anonymous language")
	}
	if _, err := LookupLanguage("xx"); err == nil {
		t.Errorf("Expected error for unknown language")
	}
	if l, _ := LookupLanguage("norwegian-bokmaal"); l.UD != "no_bokmaal" {
		t.Errorf("Expected lookup by name to ignore case, got %v", l)
	}
}

func TestEveryRuleNamesALanguage(t *testing.T) {
	if len(Rules) != 27 {
		t.Errorf("Expected 27 rules, got %d", len(Rules))
	}
	for name := range Rules {
		if _, err := LookupLanguage(name); err != nil {
			t.Errorf("Rule %s has no language: %v", name, err)
		}
	}
}
