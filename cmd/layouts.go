package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/notas/renderer"
	"github.com/google/subcommands"
)

type layoutsCmd struct{}

func (*layoutsCmd) Name() string     { return "layouts" }
func (*layoutsCmd) Synopsis() string { return "list the trade row layouts" }
func (*layoutsCmd) Usage() string {
	return `notas layouts

  Lists the built-in layouts and the ones declared with -layouts.
  The selected one is marked with a star.
`
}

func (c *layoutsCmd) SetFlags(f *flag.FlagSet) {}

func (c *layoutsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	layouts, err := DecodeLayouts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading layouts: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderLayouts(layouts.All(), config.Layout))
	return subcommands.ExitSuccess
}
