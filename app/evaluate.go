package app

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"yu-val-weiss/udum/eval"
	"yu-val-weiss/udum/nlp/format/featmap"
	"yu-val-weiss/udum/nlp/lang"
	"yu-val-weiss/udum/nlp/parser/translate"

	"github.com/gonuts/commander"
)

func currentMode() translate.Mode {
	if basic {
		return translate.Basic
	}
	return translate.Refined
}

func EvaluateConfigOut(conf Config, languages []lang.Language) {
	ConfigOut(conf)
	names := make([]string, len(languages))
	for i, l := range languages {
		names[i] = l.Name
	}
	log.Printf("Languages:\t\t%s", strings.Join(names, ", "))
	log.Printf("Mode:\t\t\t%v", currentMode())
	log.Printf("Print Good:\t\t%v", printGood)
	log.Println()
}

func lookupLanguages(codes []string) ([]lang.Language, error) {
	languages := make([]lang.Language, 0, len(codes))
	for _, code := range codes {
		l, err := lang.LookupLanguage(code)
		if err != nil {
			return nil, err
		}
		languages = append(languages, l)
	}
	return languages, nil
}

// evaluateLanguages runs one evaluation per language. A language whose
// data is missing is reported and skipped; an inconsistent row aborts the
// whole run.
func evaluateLanguages(languages []lang.Language, table *featmap.Table, files FileGetter, mode translate.Mode, report *Reporter) (eval.Tally, error) {
	var total eval.Tally
	for _, l := range languages {
		report.Language(l.Name)
		instance, err := NewEvaluator(l, table, files, mode, report)
		if err != nil {
			report.Warn("skipping %s: %v", l.Name, err)
			continue
		}
		tally, err := instance.Evaluate()
		if err != nil {
			return total, fmt.Errorf("evaluating %s: %w", l.Name, err)
		}
		total.Merge(tally)
	}
	return total, nil
}

func Evaluate(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"l"})
	languages, err := lookupLanguages(SplitLanguages(langCodes))
	if err != nil {
		return err
	}
	conf, err := setupConfig()
	if err != nil {
		return err
	}
	EvaluateConfigOut(conf, languages)

	table, err := conf.ReadMapping()
	if err != nil {
		return err
	}
	_, err = evaluateLanguages(languages, table, FileGetter{conf}, currentMode(), NewReporter(printGood))
	return err
}

func EvaluateCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Evaluate,
		UsageLine: "evaluate -l <languages> [options]",
		Short:     "measure recall of the UD to UniMorph conversion against UniMorph",
		Long: `
measure recall of the UD to UniMorph conversion against the UniMorph gold data

	$ ./udum evaluate -l "da eu es" [-basic] [-good] [-conf <yaml>]

Each UD token whose form and lemma are in the UniMorph data is translated
and counted as a match when its bundle is attested for the form.
`,
		Flag: *flag.NewFlagSet("evaluate", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&langCodes, "l", "", "Languages to evaluate (e.g. \"da eu es\")")
	cmd.Flag.BoolVar(&printGood, "good", false, "Print matching tokens too")
	ModeFlags(&cmd.Flag)
	ConfigFlags(&cmd.Flag)
	return cmd
}
