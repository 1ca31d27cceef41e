package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// --- Assets Command ---

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the portfolio assets known to the service" }
func (*assetsCmd) Usage() string {
	return `pcp assets

  Lists the assets a reallocation can target, with the ids the other
  commands accept.
`
}

func (*assetsCmd) SetFlags(f *flag.FlagSet) {}

func (c *assetsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	assets, err := client().Assets(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var md strings.Builder
	md.WriteString("# Assets\n\n")
	md.WriteString("| Id | Name |\n|---|---|\n")
	for _, a := range assets {
		fmt.Fprintf(&md, "| %s | %s |\n", a.ID, a.Name)
	}
	printMarkdown(md.String())
	return subcommands.ExitSuccess
}
