package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/planner/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion, a no-op outside of a completion request.
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"contribute": {},
			"withdraw":   {},
			"reallocate": {},
			"check":      {},
			"assets":     {},
			"topic":      {},
			"suggest":    {},
		},
	}
	completer.Complete("pcp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
