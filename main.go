package main

import (
	"context"
	"fmt"
	"os"

	"yu-val-weiss/udum/app"

	"github.com/gonuts/commander"
)

var cmd = &commander.Command{
	UsageLine: os.Args[0] + " evaluate|convert|replicate|langs",
	Short:     "convert UD morphology to UniMorph and evaluate the conversion",
}

func init() {
	cmd.Subcommands = app.AllCommands().Subcommands
}

func exit(err error) {
	fmt.Printf("**error**: %v\n", err)
	os.Exit(1)
}

func main() {
	if err := cmd.Dispatch(context.Background(), os.Args[1:]); err != nil {
		exit(err)
	}
}
