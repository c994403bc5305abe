package app

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"yu-val-weiss/udum/nlp/format/featmap"
	"yu-val-weiss/udum/nlp/lang"

	"github.com/gonuts/commander"
)

func ConvertConfigOut(conf Config) {
	ConfigOut(conf)
	log.Printf("Mode:\t\t\t%v", currentMode())
	if len(udFile) > 0 {
		log.Printf("UD Input:\t\t%s", udFile)
		log.Printf("Output:\t\t%s", outFile)
	} else {
		log.Printf("Languages:\t\t%s", langCodes)
	}
	log.Println()
}

// fileLanguage resolves the optional language of a single file
// conversion; anything but one known language is the zero Language, which
// converts with the identity rule.
func fileLanguage(codes []string) lang.Language {
	if len(codes) == 1 {
		if l, err := lang.LookupLanguage(codes[0]); err == nil {
			return l
		}
	}
	return lang.Language{}
}

func convertFile(table *featmap.Table, report *Reporter) error {
	codes := SplitLanguages(langCodes)
	if len(codes) > 1 {
		return errors.New("at most one language with -ud")
	}
	l := fileLanguage(codes)
	if l.IsZero() {
		report.Warn("no language specific rule used for %s", udFile)
		report.Language(lang.Identity.Name)
	} else {
		report.Language(l.Name)
	}
	if !VerifyExists(udFile) {
		return errors.New("missing UD file " + udFile)
	}
	instance := NewFileConverter([]string{udFile}, l, table, currentMode())
	if outFile == "-" {
		in, err := os.Open(udFile)
		if err != nil {
			return err
		}
		defer in.Close()
		return instance.ConvertStream(in, os.Stdout)
	}
	return instance.ConvertFile(udFile, outFile)
}

// checkOutput rejects writing a conversion over its own input, which
// would truncate the input before it is read.
func checkOutput(input, output string) error {
	if output == "-" {
		return nil
	}
	in, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return err
	}
	if in == out {
		return fmt.Errorf("output %s is the input file", output)
	}
	return nil
}

func Convert(cmd *commander.Command, args []string) error {
	if len(udFile) == 0 {
		VerifyFlags(cmd, []string{"l"})
	} else {
		if len(outFile) == 0 {
			outFile = OutputPath(udFile)
		}
		if err := checkOutput(udFile, outFile); err != nil {
			return err
		}
	}
	conf, err := setupConfig()
	if err != nil {
		return err
	}
	ConvertConfigOut(conf)

	table, err := conf.ReadMapping()
	if err != nil {
		return err
	}
	report := NewReporter(false)
	if len(udFile) > 0 {
		return convertFile(table, report)
	}

	languages, err := lookupLanguages(SplitLanguages(langCodes))
	if err != nil {
		return err
	}
	files := FileGetter{conf}
	for _, l := range languages {
		report.Language(l.Name)
		instance, err := NewConverter(l, table, files, currentMode())
		if err != nil {
			report.Warn("skipping %s: %v", l.Name, err)
			continue
		}
		if err := instance.Convert(); err != nil {
			return err
		}
	}
	return nil
}

func ConvertCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Convert,
		UsageLine: "convert -l <languages> | -ud <file> [options]",
		Short:     "convert UD treebanks to UniMorph annotation",
		Long: `
convert UD treebanks to UniMorph annotation, replacing the FEATS column

	$ ./udum convert -l "da eu" [-basic] [-conf <yaml>]
	$ ./udum convert -ud <conllu file> [-l <language>] [-out <file>|-]

Outputs are written next to their input with -ud- replaced by -um-.
`,
		Flag: *flag.NewFlagSet("convert", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&langCodes, "l", "", "Languages to convert (e.g. \"da eu es\")")
	cmd.Flag.StringVar(&udFile, "ud", "", "Single UD file to convert")
	cmd.Flag.StringVar(&outFile, "out", "", "Output of -ud conversion (default: -um- sibling, - for stdout)")
	ModeFlags(&cmd.Flag)
	ConfigFlags(&cmd.Flag)
	return cmd
}
