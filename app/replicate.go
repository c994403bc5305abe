package app

import (
	"flag"
	"fmt"
	"log"

	"yu-val-weiss/udum/eval"
	"yu-val-weiss/udum/nlp/lang"
	"yu-val-weiss/udum/nlp/parser/translate"

	"github.com/gonuts/commander"
)

var replicateModes = []translate.Mode{translate.Basic, translate.Refined}

func Replicate(cmd *commander.Command, args []string) error {
	conf, err := setupConfig()
	if err != nil {
		return err
	}
	ConfigOut(conf)

	table, err := conf.ReadMapping()
	if err != nil {
		return err
	}
	report := NewReporter(printGood)
	files := FileGetter{conf}
	totals := make(map[translate.Mode]eval.Tally, len(replicateModes))
	for _, l := range lang.Languages {
		for _, mode := range replicateModes {
			log.Println("Mode:", mode)
			tally, err := evaluateLanguages([]lang.Language{l}, table, files, mode, report)
			if err != nil {
				return err
			}
			totals[mode] = eval.Sum(totals[mode], tally)
		}
	}
	for _, mode := range replicateModes {
		total := totals[mode]
		report.Average(fmt.Sprintf("all languages (%v)", mode), total)
	}
	return nil
}

func ReplicateCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Replicate,
		UsageLine: "replicate [options]",
		Short:     "evaluate every known language in basic and refined mode",
		Long: `
evaluate every known language, first with the language independent
translation and then with the language specific rules

	$ ./udum replicate [-good] [-conf <yaml>]

`,
		Flag: *flag.NewFlagSet("replicate", flag.ExitOnError),
	}
	cmd.Flag.BoolVar(&printGood, "good", false, "Print matching tokens too")
	ConfigFlags(&cmd.Flag)
	return cmd
}
