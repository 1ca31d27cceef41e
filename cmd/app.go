// Package cmd implements the CLI application to plan portfolio changes.
package cmd

import (
	"flag"

	"github.com/etnz/planner"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&contributeCmd{}, "changes")
	c.Register(&withdrawCmd{}, "changes")
	c.Register(&reallocateCmd{}, "changes")
	c.Register(&checkCmd{}, "changes")

	c.Register(&assetsCmd{}, "portfolio")

	c.Register(&topicCmd{}, "help")
	c.Register(&suggestCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var apiURL = flag.String("api", "http://localhost:8080/api", "Base URL of the planned-change service")
var displayCurrency = flag.String("currency", "USD", "Currency used to display amounts (display only, never sent)")

// client returns the planned-change API client for the configured service.
func client() *planner.Client {
	return planner.NewClient(*apiURL)
}
