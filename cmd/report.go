package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/notas"
	"github.com/etnz/notas/pdftext"
	"github.com/etnz/notas/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	inputDir     string
	markdownFile string
	csvFile      string
	xlsxFile     string
	jsonlFile    string
	layout       string
	evaluate     bool
	pretty       bool
	quiet        bool

	// reader overrides the PDF reader in tests.
	reader notas.PageReader
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "extract and group the trades of every nota in a folder" }
func (*reportCmd) Usage() string {
	return `notas report [-i <dir>] [-md <file>] [-csv <file>] [-xlsx <file>] [-jsonl <file>] [-layout <name>] [-evaluate] [-pretty] [-quiet]

  Reads every PDF in the input folder, extracts the trade rows and groups them
  by ticker. The report is saved as Markdown and printed to the console.
  An empty file flag disables that output.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputDir, "i", config.InputDir, "Folder containing the notas de corretagem (PDF)")
	f.StringVar(&c.markdownFile, "md", config.MarkdownFile, "Markdown report file")
	f.StringVar(&c.csvFile, "csv", config.CSVFile, "CSV report file, e.g. ./src/csv/stocks.csv")
	f.StringVar(&c.xlsxFile, "xlsx", "", "Excel report file")
	f.StringVar(&c.jsonlFile, "jsonl", "", "JSONL file of the grouped trades")
	f.StringVar(&c.layout, "layout", config.Layout, "Layout of the trade rows, see 'notas layouts'")
	f.BoolVar(&c.evaluate, "evaluate", false, "Compute the total quantity, amount and average price of each ticker")
	f.BoolVar(&c.pretty, "pretty", false, "Print the Markdown report to the console instead of plain text")
	f.BoolVar(&c.quiet, "quiet", false, "Do not print the report to the console")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Unexpected arguments: %v\n", f.Args())
		return subcommands.ExitUsageError
	}
	if c.quiet && c.pretty {
		fmt.Fprintln(os.Stderr, "-quiet and -pretty flags cannot be used together")
		return subcommands.ExitUsageError
	}

	layout, err := DecodeLayout(c.layout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading layout: %v\n", err)
		return subcommands.ExitUsageError
	}

	logger := newLogger()
	defer logger.Sync()

	p := &notas.Processor{Layout: layout, Reader: c.pageReader(), Logger: logger}
	res, err := p.Dir(ctx, c.inputDir)
	if errors.Is(err, notas.ErrNoInputDir) || errors.Is(err, notas.ErrNoPDFFiles) {
		// nothing to report, this is not a failure.
		printDiagnostics(res.Diagnostics)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", c.inputDir, err)
		return subcommands.ExitFailure
	}
	printDiagnostics(res.Diagnostics)
	logger.Info("report ready",
		zap.Int("documents", res.Documents),
		zap.Int("records", len(res.Records)),
		zap.Int("groups", len(res.Groups)))

	report, err := renderer.NewReport(res.Groups, c.evaluate)
	if err != nil {
		// totals are best effort, the report is still complete.
		logger.Warn("cannot evaluate every ticker", zap.Error(err))
	}

	outputs := []struct {
		path  string
		write func(io.Writer) error
	}{
		{c.markdownFile, func(w io.Writer) error {
			_, err := io.WriteString(w, renderer.RenderMarkdown(report))
			return err
		}},
		{c.csvFile, func(w io.Writer) error { return renderer.WriteCSV(w, report) }},
		{c.xlsxFile, func(w io.Writer) error { return renderer.WriteXLSX(w, report) }},
		{c.jsonlFile, func(w io.Writer) error { return notas.EncodeGroups(w, res.Groups) }},
	}
	status := subcommands.ExitSuccess
	for _, o := range outputs {
		if o.path == "" {
			continue
		}
		if err := writeFile(o.path, o.write); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving report: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		printSaved(o.path)
	}

	switch {
	case c.quiet:
	case c.pretty:
		printMarkdown(renderer.RenderMarkdown(report))
	default:
		if err := renderer.RenderConsole(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error printing report: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return status
}

func (c *reportCmd) pageReader() notas.PageReader {
	if c.reader != nil {
		return c.reader
	}
	return pdftext.Reader{}
}
