// Package unimorph reads UniMorph lexicon files: one
// lemma<TAB>form<TAB>feat;feat;... triple per line, no header.
package unimorph

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	nlp "yu-val-weiss/udum/nlp/types"
)

const (
	FIELD_SEPARATOR = "\t"
	NUM_FIELDS      = 3
)

type Triple struct {
	Lemma    string
	Form     string
	Features nlp.Bundle
}

func ParseLine(line string) (Triple, error) {
	fields := strings.Split(strings.TrimSpace(line), FIELD_SEPARATOR)
	if len(fields) != NUM_FIELDS {
		return Triple{}, fmt.Errorf("wrong number of fields (%d) in %q, expected %d", len(fields), line, NUM_FIELDS)
	}
	return Triple{
		Lemma:    fields[0],
		Form:     fields[1],
		Features: nlp.ParseBundle(fields[2]),
	}, nil
}

// Each streams the triples of reader to f, skipping blank lines. It stops
// at the first malformed line or error returned by f.
func Each(reader io.Reader, f func(Triple) error) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if len(strings.TrimSpace(text)) == 0 {
			continue
		}
		triple, err := ParseLine(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := f(triple); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func Read(reader io.Reader) ([]Triple, error) {
	var triples []Triple
	err := Each(reader, func(t Triple) error {
		triples = append(triples, t)
		return nil
	})
	return triples, err
}
