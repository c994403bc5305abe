// Package featmap loads the static UD -> UniMorph feature table.
package featmap

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	nlp "yu-val-weiss/udum/nlp/types"
)

const (
	UD_COLUMN       = "UD"
	UNIMORPH_COLUMN = "UniMorph"
	FIELD_SEPARATOR = '\t'
)

// Table maps UD tokens (POS or key=value) to UniMorph features. Entries
// with an empty UniMorph column map to the placeholder.
type Table struct {
	mapping map[nlp.UdFeature]nlp.Feature
}

func New(mapping map[nlp.UdFeature]nlp.Feature) *Table {
	t := &Table{make(map[nlp.UdFeature]nlp.Feature, len(mapping))}
	for ud, um := range mapping {
		if len(um) == 0 {
			um = nlp.EmptyFeature
		}
		t.mapping[ud] = um
	}
	return t
}

// Lookup never fails: features without a UniMorph counterpart resolve to
// the placeholder.
func (t *Table) Lookup(ud nlp.UdFeature) nlp.Feature {
	if um, exists := t.mapping[ud]; exists {
		return um
	}
	return nlp.EmptyFeature
}

func (t *Table) Len() int {
	return len(t.mapping)
}

func Read(reader io.Reader) (*Table, error) {
	records := csv.NewReader(reader)
	records.Comma = FIELD_SEPARATOR
	records.LazyQuotes = true
	records.FieldsPerRecord = -1

	header, err := records.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	udIdx, umIdx := -1, -1
	for i, name := range header {
		switch name {
		case UD_COLUMN:
			udIdx = i
		case UNIMORPH_COLUMN:
			umIdx = i
		}
	}
	if udIdx < 0 || umIdx < 0 {
		return nil, fmt.Errorf("header %v lacks %s and %s columns", header, UD_COLUMN, UNIMORPH_COLUMN)
	}

	mapping := make(map[nlp.UdFeature]nlp.Feature)
	for line := 2; ; line++ {
		record, err := records.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if udIdx >= len(record) {
			continue
		}
		var um string
		if umIdx < len(record) {
			um = record[umIdx]
		}
		mapping[nlp.UdFeature(record[udIdx])] = nlp.Feature(um)
	}
	return New(mapping), nil
}

func ReadFile(filename string) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}
