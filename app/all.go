package app

import (
	"flag"
	"os"

	"github.com/gonuts/commander"
)

var AppCommands = []*commander.Command{
	EvaluateCmd(),
	ConvertCmd(),
	ReplicateCmd(),
	LangsCmd(),
}

func AllCommands() *commander.Command {
	return &commander.Command{
		UsageLine:   os.Args[0] + " <command>",
		Short:       "UD to UniMorph conversion and evaluation",
		Subcommands: AppCommands,
		Flag:        *flag.NewFlagSet("app", flag.ExitOnError),
	}
}
