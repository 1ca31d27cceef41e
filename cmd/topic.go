package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/planner/docs"
	"github.com/google/subcommands"
)

// --- Topic Command ---

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "display a documentation topic" }
func (*topicCmd) Usage() string {
	return `pcp topic [<name> ...]

  Displays one or more documentation topics. Without a name it shows the
  list of topics. The special name "*" expands to all topics.
`
}

func (*topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	content, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(content)
	return subcommands.ExitSuccess
}
