package translate

import (
	"errors"
	"testing"

	"yu-val-weiss/udum/nlp/format/conllu"
	"yu-val-weiss/udum/nlp/format/featmap"
	"yu-val-weiss/udum/nlp/lang"
	nlp "yu-val-weiss/udum/nlp/types"
)

var table = featmap.New(map[nlp.UdFeature]nlp.Feature{
	"VERB":         "V",
	"NOUN":         "N",
	"Number=Sing":  "SG",
	"Number=Plur":  "PL",
	"Person=3":     "3",
	"Tense=Pres":   "PRS",
	"Tense=Past":   "PST",
	"VerbForm=Fin": "FIN",
	"Case=Nom":     "NOM",
	"Case=Acc":     "ACC",
	"Gender=Masc":  "MASC",
	"Definite=Def": "",
	"Mood=Ind":     "IND",
	"Mood=Cnd":     "COND",
})

func translate(t *testing.T, raw string) nlp.Bundle {
	bundle, err := NewBase(table).Translate(nlp.NewUdTag(raw))
	if err != nil {
		t.Fatalf("%s: %v", raw, err)
	}
	return bundle
}

func TestBaseTranslate(t *testing.T) {
	var tests = []struct {
		ud string
		um string
	}{
		{"VERB|Number=Sing|Person=3|Tense=Pres|VerbForm=Fin", "V;SG;3;PRS;FIN"},
		{"NOUN|Case=Nom,Acc|Number=Plur", "N;{NOM/ACC};PL"},
		{"NOUN|Case=Nom,Dat|Number=Plur", "N;NOM;PL"},
		{"NOUN|Case=Gen,Dat", "N"},
		{"NOUN|Definite=Def|Number=Sing", "N;SG"},
		{"X|Foo=Bar", "_"},
		{"_", "_"},
		{"NOUN|Number[psor]=Sing|Person[psor]=1|Number=Plur", "N;PL;PSS1S"},
		{"VERB|Number[erg]=Sing|Person[erg]=3|Number[abs]=Plur|Person[abs]=1", "V;ARGAB1P;ARGER3S"},
		{"VERB|Person[gram]=3|Tense=Past", "V;PST"},
		{"VERB|Mood=Ind,Cnd", "V;{IND/COND}"},
	}
	for _, test := range tests {
		got := translate(t, test.ud)
		if !got.Equal(nlp.ParseBundle(test.um)) {
			t.Errorf("%s: expected %s, got %v", test.ud, test.um, got)
		}
	}
}

func TestBaseNeverMixesPlaceholder(t *testing.T) {
	for _, raw := range []string{"VERB|Foo=Bar", "NOUN|Case=Gen,Dat|Number=Sing", "VERB|Person[psed]=3|Tense=Past"} {
		got := translate(t, raw)
		if got.Len() > 1 && got.Has(nlp.EmptyFeature) {
			t.Errorf("%s: placeholder left among features in %v", raw, got)
		}
	}
}

func TestPossession(t *testing.T) {
	var tests = []struct {
		ud  string
		pss nlp.Feature
	}{
		{"NOUN|Number=Sing", nlp.EmptyFeature},
		{"NOUN|Number[psor]=Plur|Person[psor]=2", "PSS2P"},
		{"NOUN|Person[psor]=3", "PSS3"},
		{"NOUN|Number[psor]=Dual", "PSSD"},
		{"NOUN|Number[psor]=Sing", "PSSS"},
		{"NOUN|Person[psor]=None", POSSESSED},
	}
	for _, test := range tests {
		pss, err := Possession(nlp.NewUdTag(test.ud))
		if err != nil {
			t.Errorf("%s: %v", test.ud, err)
			continue
		}
		if pss != test.pss {
			t.Errorf("%s: expected %s, got %s", test.ud, test.pss, pss)
		}
	}
}

func TestPossessionInconsistent(t *testing.T) {
	for _, raw := range []string{
		"NOUN|Number[psor]=Sing|Person[psor]=1|Gender[psor]=Masc",
		"NOUN|Number[psor]=Paucal",
		"NOUN|Person[psor]=4",
	} {
		_, err := Possession(nlp.NewUdTag(raw))
		var consistency *ConsistencyError
		if !errors.As(err, &consistency) {
			t.Errorf("%s: expected *ConsistencyError, got %v", raw, err)
		}
	}
}

func TestArguments(t *testing.T) {
	args, err := Arguments(nlp.NewUdTag("VERB|Number=Sing"))
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(args) != 1 || args[0] != nlp.EmptyFeature {
		t.Errorf("Expected only the placeholder, got %v", args)
	}

	args, err = Arguments(nlp.NewUdTag("VERB|Person[dat]=2|Number[dat]=Sing|Person[erg]=1|Person[psor]=3"))
	if err != nil {
		t.Fatal(err.Error())
	}
	got := nlp.NewBundle(args...)
	if !got.Is("ARGDA2S", "ARGER1") {
		t.Errorf("Expected ARGDA2S and ARGER1, got %v", got)
	}

	args, err = Arguments(nlp.NewUdTag("VERB|Person[psed]=3"))
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(args) != 1 || args[0] != nlp.EmptyFeature {
		t.Errorf("Expected [psed] to drop, got %v", args)
	}
}

func TestArgumentsInconsistent(t *testing.T) {
	for _, raw := range []string{
		"VERB|Person[obj]=3",
		"VERB|Number[abs]=Many",
	} {
		_, err := Arguments(nlp.NewUdTag(raw))
		var consistency *ConsistencyError
		if !errors.As(err, &consistency) {
			t.Errorf("%s: expected *ConsistencyError, got %v", raw, err)
		}
	}
}

func dropFinite(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
	if tags.Has("V") {
		tags.Discard("FIN")
	}
	return tags
}

func TestTranslatorModes(t *testing.T) {
	rule := lang.Rule{Name: "test", Adjust: dropFinite}
	row := conllu.Row{ID: "1", Form: "walks", Lemma: "walk", UPosTag: "VERB", XPosTag: "VBZ", Feats: "Number=Sing|Person=3|Tense=Pres|VerbForm=Fin", Head: "0", DepRel: "root", Deps: "_", Misc: "_"}

	basic := NewTranslator(NewBase(table), rule, Basic, Feats)
	out, err := basic.Translate(row)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !nlp.ParseBundle(out.Feats).Is("V", "SG", "3", "PRS", "FIN") {
		t.Errorf("Expected basic V;SG;3;PRS;FIN, got %s", out.Feats)
	}
	if out.Misc != "_" {
		t.Errorf("Expected MISC untouched, got %s", out.Misc)
	}

	refined := NewTranslator(NewBase(table), rule, Refined, Misc)
	out, err = refined.Translate(row)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !nlp.ParseBundle(out.Misc).Is("V", "SG", "3", "PRS") {
		t.Errorf("Expected refined V;SG;3;PRS, got %s", out.Misc)
	}
	if out.Feats != row.Feats {
		t.Errorf("Expected FEATS untouched, got %s", out.Feats)
	}
	out.Misc = row.Misc
	if out != row {
		t.Errorf("Expected only MISC to change, got %v", out)
	}
}

func TestTranslatorPropagatesInconsistency(t *testing.T) {
	tr := NewTranslator(NewBase(table), lang.Identity, Refined, Feats)
	row := conllu.Row{ID: "1", Form: "x", Lemma: "x", UPosTag: "NOUN", XPosTag: "_", Feats: "Number[psor]=Many", Head: "0", DepRel: "root", Deps: "_", Misc: "_"}
	if _, err := tr.Translate(row); err == nil {
		t.Error("Expected consistency error to propagate")
	}
}
