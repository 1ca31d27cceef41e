package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/planner"
	"github.com/etnz/planner/docs"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// --- Suggest Command ---

type suggestCmd struct {
	model string
	file  string
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "ask the AI assistant about a planned change" }
func (*suggestCmd) Usage() string {
	return `pcp suggest [-f <file>] <question>

  Asks the AI assistant a free-form question about planning portfolio
  changes. With -f the planned change in that file is given to the
  assistant as context. Requires Gemini credentials in the environment.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to use")
	f.StringVar(&c.file, "f", "", "File holding a planned change JSON to discuss")
}

func (c *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	question := strings.Join(f.Args(), " ")

	var b strings.Builder
	if topics, err := docs.GetTopics("recurrence", "payload"); err == nil {
		b.WriteString("Reference documentation:\n\n")
		b.WriteString(topics)
		b.WriteString("\n")
	}
	if c.file != "" {
		data, err := os.ReadFile(c.file)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		if _, err := planner.DecodePlannedChange(data); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(&b, "The planned change under discussion:\n\n```json\n%s\n```\n\n", data)
	}
	b.WriteString(question)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
		You help an investor plan contributions, withdrawals and reallocations
		on their portfolio. Answer concisely, in markdown, and when relevant
		show the exact pcp command that would create the change.`}}},
	}
	chat, err := client.Chats.Create(ctx, c.model, config, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	resp, err := chat.Send(ctx, &genai.Part{Text: b.String()})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no response from the assistant")
		return subcommands.ExitFailure
	}
	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}
