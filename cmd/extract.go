package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/notas"
	"github.com/etnz/notas/pdftext"
	"github.com/google/subcommands"
)

// extractCmd prints the raw trade records of some documents.
type extractCmd struct {
	layout string
	jsonl  bool

	// reader overrides the PDF reader in tests.
	reader notas.PageReader
}

func (*extractCmd) Name() string     { return "extract" }
func (*extractCmd) Synopsis() string { return "print the trade rows of notas, without grouping" }
func (*extractCmd) Usage() string {
	return `notas extract [-layout <name>] [-jsonl] <file.pdf>...

  Prints every trade row found in the given documents, without grouping, with
  the page and line it comes from.
`
}

func (c *extractCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.layout, "layout", config.Layout, "Layout of the trade rows, see 'notas layouts'")
	f.BoolVar(&c.jsonl, "jsonl", false, "Print the records as JSONL, one record per line")
}

func (c *extractCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one PDF file is required")
		return subcommands.ExitUsageError
	}
	layout, err := DecodeLayout(c.layout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading layout: %v\n", err)
		return subcommands.ExitUsageError
	}

	logger := newLogger()
	defer logger.Sync()

	reader := c.reader
	if reader == nil {
		reader = pdftext.Reader{}
	}
	p := &notas.Processor{Layout: layout, Reader: reader, Logger: logger}
	res, err := p.Files(ctx, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting: %v\n", err)
		return subcommands.ExitFailure
	}
	printDiagnostics(res.Diagnostics)

	if c.jsonl {
		if err := notas.EncodeRecords(os.Stdout, res.Records); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding records: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	for _, r := range res.Records {
		fmt.Printf("%s\t%s\t%s\t%s\t%s\n", r.Source, r.Ticker, r.Quantity, r.AveragePrice, r.PriceFormula)
	}
	return subcommands.ExitSuccess
}
