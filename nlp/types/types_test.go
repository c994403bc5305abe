package types

import (
	"testing"
)

func TestBundleEqualityIsSetEquality(t *testing.T) {
	a := ParseBundle("V;PST;3")
	b := ParseBundle("3;V;PST")
	if !a.Equal(b) {
		t.Errorf("Expected %v to equal %v", a, b)
	}
	if a.Equal(ParseBundle("V;PST")) {
		t.Errorf("Expected %v not to equal V;PST", a)
	}
	if !a.Is("PST", "3", "V") {
		t.Errorf("Expected Is to match regardless of order")
	}
}

func TestBundleStringIsNeverEmpty(t *testing.T) {
	if s := NewBundle().String(); s != "_" {
		t.Errorf("Expected placeholder for empty bundle, got %s", s)
	}
	if s := NewBundle("V", "PST").String(); s != "PST;V" {
		t.Errorf("Expected sorted serialization PST;V, got %s", s)
	}
}

func TestBundleSubsets(t *testing.T) {
	b := NewBundle("V", "PST", "IND")
	if !b.Contains("V", "PST") {
		t.Error("Expected V;PST to be contained")
	}
	if !b.ContainsStrictly("V", "PST") {
		t.Error("Expected V;PST to be strictly contained")
	}
	if b.ContainsStrictly("V", "PST", "IND") {
		t.Error("Expected equal set not to be strictly contained")
	}
	if b.Contains("V", "FUT") {
		t.Error("Expected V;FUT not to be contained")
	}
}

func TestBundleReplace(t *testing.T) {
	b := NewBundle("RL", "N")
	if !b.Replace("RL", "SPRL") {
		t.Fatal("Expected replace to report success")
	}
	if !b.Is("SPRL", "N") {
		t.Errorf("Expected SPRL;N, got %v", b)
	}
	if b.Replace("RL", "SPRL") {
		t.Error("Expected replace of absent feature to report failure")
	}
}

func TestAlternationGroup(t *testing.T) {
	if g := AlternationGroup([]Feature{"NOM", "ACC"}); g != "{NOM/ACC}" {
		t.Errorf("Expected {NOM/ACC}, got %s", g)
	}
}

func TestUdTagCollapsesDuplicates(t *testing.T) {
	tag := NewUdTag("NOUN|Number=Sing|Number=Sing|Case=Nom")
	if tag.Len() != 3 {
		t.Errorf("Expected 3 tokens, got %d", tag.Len())
	}
	if !tag.Has("Case=Nom") || !tag.Has("NOUN") {
		t.Errorf("Expected NOUN and Case=Nom in %v", tag)
	}
	if tag.String() != "NOUN|Number=Sing|Case=Nom" {
		t.Errorf("Expected first-seen order, got %s", tag)
	}
}

func TestUdTagDegenerateInput(t *testing.T) {
	tag := NewUdTag("VERB Number=Sing")
	if tag.Len() != 1 {
		t.Errorf("Expected a single degenerate token, got %d", tag.Len())
	}
}

func TestUdFeatureParts(t *testing.T) {
	var tests = []struct {
		token    UdFeature
		key      string
		value    string
		relation string
		list     bool
	}{
		{"Number=Sing", "Number", "Sing", "", false},
		{"Person[psor]=3", "Person[psor]", "3", "psor", false},
		{"Case=Nom,Acc", "Case", "Nom,Acc", "", true},
		{"VERB", "VERB", "", "", false},
	}
	for _, test := range tests {
		if k := test.token.Key(); k != test.key {
			t.Errorf("%s: expected key %s, got %s", test.token, test.key, k)
		}
		if v := test.token.Value(); v != test.value {
			t.Errorf("%s: expected value %s, got %s", test.token, test.value, v)
		}
		rel, found := test.token.Relation()
		if rel != test.relation || found != (test.relation != "") {
			t.Errorf("%s: expected relation %q, got %q (%v)", test.token, test.relation, rel, found)
		}
		if test.token.IsList() != test.list {
			t.Errorf("%s: expected list %v", test.token, test.list)
		}
	}
}
