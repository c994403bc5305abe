package app

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"yu-val-weiss/udum/nlp/lang"

	"github.com/gonuts/commander"
)

func WriteLanguages(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "UD\tUniMorph\tName\tRule")
	for _, l := range lang.Languages {
		rule := lang.Lookup(l)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.UD, l.UM, l.Name, rule.Name)
	}
	return tw.Flush()
}

func Langs(cmd *commander.Command, args []string) error {
	return WriteLanguages(os.Stdout)
}

func LangsCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Langs,
		UsageLine: "langs",
		Short:     "list known languages and their rules",
		Flag:      *flag.NewFlagSet("langs", flag.ExitOnError),
	}
	return cmd
}
