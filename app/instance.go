package app

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"yu-val-weiss/udum/eval"
	"yu-val-weiss/udum/nlp/format/conllu"
	"yu-val-weiss/udum/nlp/format/featmap"
	"yu-val-weiss/udum/nlp/lang"
	"yu-val-weiss/udum/nlp/parser/translate"
)

// Instance evaluates or converts the treebanks of one language with a
// fixed rule and mode.
type Instance struct {
	Language   lang.Language
	Rule       lang.Rule
	Translator *translate.Translator
	Scorer     *eval.Scorer
	Report     *Reporter

	UMFile  string
	UDFiles []string
}

// NewEvaluator prepares the evaluation of l, reading its gold lexicon.
func NewEvaluator(l lang.Language, table *featmap.Table, files FileGetter, mode translate.Mode, report *Reporter) (*Instance, error) {
	umFile, udFiles, err := files.Get(l, false)
	if err != nil {
		return nil, err
	}
	rule := lang.Lookup(l)
	lexicon, err := eval.ReadLexiconFile(umFile)
	if err != nil {
		return nil, fmt.Errorf("reading UniMorph %s: %w", umFile, err)
	}
	log.Println("Read", lexicon.Len(), "gold forms from", umFile)
	return &Instance{
		Language:   l,
		Rule:       rule,
		Translator: translate.NewTranslator(translate.NewBase(table), rule, mode, translate.Misc),
		Scorer:     eval.NewScorer(lexicon, rule),
		Report:     report,
		UMFile:     umFile,
		UDFiles:    udFiles,
	}, nil
}

// NewConverter prepares the conversion of the UD files of l.
func NewConverter(l lang.Language, table *featmap.Table, files FileGetter, mode translate.Mode) (*Instance, error) {
	_, udFiles, err := files.Get(l, true)
	if err != nil {
		return nil, err
	}
	return NewFileConverter(udFiles, l, table, mode), nil
}

// NewFileConverter converts the given files; l may be the zero Language,
// in which case the identity rule applies.
func NewFileConverter(udFiles []string, l lang.Language, table *featmap.Table, mode translate.Mode) *Instance {
	rule := lang.Lookup(l)
	return &Instance{
		Language:   l,
		Rule:       rule,
		Translator: translate.NewTranslator(translate.NewBase(table), rule, mode, translate.Feats),
		UDFiles:    udFiles,
	}
}

// Evaluate scores every UD file, reports each file's tally and the
// language average, and returns the summed tally.
func (i *Instance) Evaluate() (eval.Tally, error) {
	var total eval.Tally
	for _, file := range i.UDFiles {
		tally, err := i.EvaluateFile(file)
		if err != nil {
			return total, err
		}
		i.Report.File(filepath.Base(file), tally)
		total.Merge(tally)
	}
	i.Report.Average(i.Language.Name, total)
	return total, nil
}

func (i *Instance) EvaluateFile(filename string) (eval.Tally, error) {
	lines, err := conllu.ReadFile(filename)
	if err != nil {
		return eval.Tally{}, err
	}
	tally, err := i.evaluateLines(lines)
	if err != nil {
		return tally, fmt.Errorf("%s: %w", filename, err)
	}
	return tally, nil
}

func (i *Instance) EvaluateStream(reader io.Reader) (eval.Tally, error) {
	lines, err := conllu.Read(reader)
	if err != nil {
		return eval.Tally{}, err
	}
	return i.evaluateLines(lines)
}

func (i *Instance) evaluateLines(lines []string) (eval.Tally, error) {
	var tally eval.Tally
	for _, line := range lines {
		if conllu.IsUseless(line) {
			continue
		}
		translated, err := i.translate(line)
		if err != nil {
			return tally, err
		}
		result := i.Scorer.Score(translated)
		if scored, ok := result.(eval.Scored); ok {
			i.Report.Token(translated, scored, i.Scorer.Lexicon.Bundles(translated.Form))
		}
		tally.Add(result)
	}
	return tally, nil
}

func (i *Instance) translate(line string) (conllu.Row, error) {
	row, err := conllu.ParseRow(line)
	if err != nil {
		return row, err
	}
	translated, err := i.Translator.Translate(row)
	if err != nil {
		log.Println("Inconsistent row:", line)
		return translated, err
	}
	return translated, nil
}

// Convert writes each UD file's translation next to it, see OutputPath.
func (i *Instance) Convert() error {
	for _, file := range i.UDFiles {
		if err := i.ConvertFile(file, OutputPath(file)); err != nil {
			return err
		}
	}
	return nil
}

func (i *Instance) ConvertFile(input, output string) error {
	log.Println("Converting", input, "to", output)
	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := i.ConvertStream(in, out); err != nil {
		out.Close()
		os.Remove(output)
		return fmt.Errorf("%s: %w", input, err)
	}
	return out.Close()
}

// ConvertStream rewrites the word lines of reader to writer; comments and
// blank lines are copied unchanged.
func (i *Instance) ConvertStream(reader io.Reader, writer io.Writer) error {
	lines, err := conllu.Read(reader)
	if err != nil {
		return err
	}
	buf := bufio.NewWriter(writer)
	for _, line := range lines {
		if conllu.IsUseless(line) {
			buf.WriteString(line)
			buf.WriteByte('\n')
			continue
		}
		translated, err := i.translate(line)
		if err != nil {
			return err
		}
		buf.WriteString(translated.String())
		buf.WriteByte('\n')
	}
	return buf.Flush()
}
