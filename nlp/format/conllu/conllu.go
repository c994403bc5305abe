// Package conllu reads and writes single CoNLL-U rows.
// For a description of the format see
// https://universaldependencies.org/format.html
package conllu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	FIELD_SEPARATOR = "\t"
	NUM_FIELDS      = 10
	COMMENT_PREFIX  = "#"

	// lines of treebanks with long MISC columns exceed bufio's default
	MAX_LINE_SIZE = 1 << 20
)

// A Row is a single CoNLL-U word line. Fields are kept verbatim so that a
// rewritten row differs from its source in one column only.
type Row struct {
	ID      string
	Form    string
	Lemma   string
	UPosTag string
	XPosTag string
	Feats   string
	Head    string
	DepRel  string
	Deps    string
	Misc    string
}

// IsUseless reports whether a line carries no word: blank lines and
// comments pass through conversion untouched.
func IsUseless(line string) bool {
	return len(line) == 0 || strings.HasPrefix(line, COMMENT_PREFIX)
}

func ParseRow(line string) (Row, error) {
	var row Row
	record := strings.Split(line, FIELD_SEPARATOR)
	if len(record) != NUM_FIELDS {
		return row, fmt.Errorf("wrong number of fields (%d) in row %q, expected %d", len(record), line, NUM_FIELDS)
	}
	row = Row{
		ID:      record[0],
		Form:    record[1],
		Lemma:   record[2],
		UPosTag: record[3],
		XPosTag: record[4],
		Feats:   record[5],
		Head:    record[6],
		DepRel:  record[7],
		Deps:    record[8],
		Misc:    record[9],
	}
	return row, nil
}

func (r Row) Fields() []string {
	return []string{
		r.ID,
		r.Form,
		r.Lemma,
		r.UPosTag,
		r.XPosTag,
		r.Feats,
		r.Head,
		r.DepRel,
		r.Deps,
		r.Misc,
	}
}

func (r Row) String() string {
	return strings.Join(r.Fields(), FIELD_SEPARATOR)
}

// Read drains reader into memory as trimmed lines.
func Read(reader io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), MAX_LINE_SIZE)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func ReadFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}
