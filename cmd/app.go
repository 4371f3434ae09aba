// Package cmd implements the CLI application to extract notas de corretagem.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/notas"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Commands lists the subcommands, a main package registers them all.
var Commands = []subcommands.Command{
	&reportCmd{},
	&extractCmd{},
	&layoutsCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var Verbose = flag.Bool("v", false, "Enable verbose logging")
var layoutsFile = flag.String("layouts", "", "Path to a YAML file declaring extra layouts")

// Config holds the defaults of the command line flags.
// Each field can be set with a NOTAS_ prefixed environment variable or a .env file.
// Unset variables keep the value of DefaultConfig.
type Config struct {
	InputDir     string `envconfig:"INPUT_DIR"`
	MarkdownFile string `envconfig:"MARKDOWN_FILE"`
	CSVFile      string `envconfig:"CSV_FILE"`
	Layout       string `envconfig:"LAYOUT"`
	LayoutsFile  string `envconfig:"LAYOUTS_FILE"`
	Verbose      bool   `envconfig:"VERBOSE"`
}

// EnvPrefix prefixes every environment variable read by the application.
const EnvPrefix = "NOTAS"

// DefaultConfig returns the configuration used when the environment is empty.
// CSV output is disabled by default.
func DefaultConfig() Config {
	return Config{
		InputDir:     "./src/notas",
		MarkdownFile: "./src/md/stocks.md",
		Layout:       notas.DefaultLayout,
	}
}

var config = DefaultConfig()

// LoadConfig reads the configuration from the environment, after loading the
// .env file of the working directory if there is one.
func LoadConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("invalid .env file: %w", err)
	}

	c := DefaultConfig()
	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	config = c
	return nil
}

// verbose reports whether verbose logging was requested, by flag or by environment.
func verbose() bool { return *Verbose || config.Verbose }

// layoutsPath returns the extra layouts file, the flag has precedence.
func layoutsPath() string {
	if *layoutsFile != "" {
		return *layoutsFile
	}
	return config.LayoutsFile
}

// newLogger returns the application logger. It only reports warnings unless
// verbose is enabled.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose() {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger, logging disabled: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

// DecodeLayouts returns the built-in layouts and the ones of the extra layouts file.
func DecodeLayouts() (*notas.Layouts, error) {
	layouts := notas.NewLayouts()
	path := layoutsPath()
	if path == "" {
		return layouts, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open layouts file: %w", err)
	}
	defer f.Close()

	custom, err := notas.DecodeLayouts(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load layouts from %q: %w", path, err)
	}
	layouts.Add(custom...)
	return layouts, nil
}

// DecodeLayout returns the layout called name.
func DecodeLayout(name string) (*notas.Layout, error) {
	layouts, err := DecodeLayouts()
	if err != nil {
		return nil, err
	}
	l, ok := layouts.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown layout %q, run 'notas layouts' to list them", name)
	}
	return l, nil
}

// printDiagnostics prints diagnostics to stdout, one per line.
// Page level diagnostics are only printed in verbose mode: most pages of a
// nota hold no trade.
func printDiagnostics(diags notas.Diagnostics) {
	for _, d := range diags {
		if (d.Kind == notas.EmptyPage || d.Kind == notas.NoMatchOnPage) && !verbose() {
			continue
		}
		fmt.Println(d.String())
	}
}
