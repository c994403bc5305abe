package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"yu-val-weiss/udum/eval"
	"yu-val-weiss/udum/nlp/format/conllu"
	nlp "yu-val-weiss/udum/nlp/types"

	"github.com/fatih/color"
)

var (
	boldOut = color.New(color.Bold)
	goodOut = color.New(color.FgGreen)
	badOut  = color.New(color.FgRed)
	warnOut = color.New(color.FgCyan)
)

// Reporter prints evaluation results to the console. Mismatches are always
// printed, matches only with PrintGood. A nil Reporter prints nothing.
type Reporter struct {
	Out       io.Writer
	PrintGood bool
}

func NewReporter(printGood bool) *Reporter {
	return &Reporter{Out: os.Stdout, PrintGood: printGood}
}

func (r *Reporter) Token(row conllu.Row, scored eval.Scored, gold []nlp.Bundle) {
	if r == nil || scored.Match && !r.PrintGood {
		return
	}
	golds := make([]string, len(gold))
	for i, b := range gold {
		golds[i] = b.String()
	}
	line := fmt.Sprintf("%-20s\t%-20s\t%-40s\n", row.Form, scored.Bundle, "["+strings.Join(golds, ", ")+"]")
	if scored.Match {
		goodOut.Fprint(r.Out, line)
	} else {
		badOut.Fprint(r.Out, line)
	}
}

func (r *Reporter) Language(name string) {
	if r == nil {
		return
	}
	boldOut.Fprintln(r.Out, name)
}

func (r *Reporter) File(name string, tally eval.Tally) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.Out, "%s (%d, %d)\n", name, tally.Matched, tally.Scored)
}

func (r *Reporter) Average(name string, tally eval.Tally) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.Out, "Average for %s: %.2f\n", name, eval.Percent(tally.Recall()))
}

func (r *Reporter) Warn(format string, args ...interface{}) {
	if r == nil {
		return
	}
	warnOut.Fprintf(r.Out, "Warning: "+format+"\n", args...)
}
