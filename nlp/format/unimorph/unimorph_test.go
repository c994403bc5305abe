package unimorph

import (
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	input := "walk\twalked\tV;PST\n\n" +
		"walk\twalks\tV;PRS;3;SG\n"
	triples, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(triples) != 2 {
		t.Fatalf("Expected 2 triples, got %d", len(triples))
	}
	if triples[0].Lemma != "walk" || triples[0].Form != "walked" {
		t.Errorf("Expected walk/walked, got %s/%s", triples[0].Lemma, triples[0].Form)
	}
	if !triples[1].Features.Is("V", "PRS", "3", "SG") {
		t.Errorf("Expected V;PRS;3;SG, got %v", triples[1].Features)
	}
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(strings.NewReader("walk\twalked\tV;PST\nwalk walks V\n"))
	if err == nil {
		t.Fatal("Expected error on malformed line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected error to name line 2, got %v", err)
	}
}
