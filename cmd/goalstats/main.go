// Command goalstats analyses the goals scored per team in a championship
// season and writes the frequency table, charts, exports and slide deck
// into an output directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/akamensky/argparse"

	"github.com/vdobler/goalstats/internal/config"
	"github.com/vdobler/goalstats/internal/logging"
	"github.com/vdobler/goalstats/internal/report"
)

// notGiven is the default of the integer flags.
const notGiven = -1

// flags holds the command line overrides. Empty strings and notGiven
// mean the flag was not given.
type flags struct {
	output     string
	dataset    string
	width      int
	dpi        int
	noWorkbook bool
}

// apply overrides the values in cfg with the given flags and validates
// the result.
func (f flags) apply(cfg *config.Config) error {
	if f.output != "" {
		cfg.Output.Dir = f.output
	}
	if f.dataset != "" {
		cfg.Analysis.Dataset = f.dataset
	}
	if f.width != notGiven {
		cfg.Analysis.ClassWidth = f.width
	}
	if f.dpi != notGiven {
		cfg.Output.DPI = f.dpi
	}
	if f.noWorkbook {
		cfg.Output.Workbook = false
	}
	return cfg.Validate()
}

func main() {
	parser := argparse.NewParser("goalstats", "Descriptive statistics of the goals scored per team")
	configFile := parser.String("c", "config", &argparse.Options{Help: "YAML configuration file", Default: ""})
	output := parser.String("o", "output", &argparse.Options{Help: "Output directory", Default: ""})
	dataset := parser.String("d", "dataset", &argparse.Options{Help: "YAML dataset file (default: built-in 2011 season)", Default: ""})
	width := parser.Int("w", "width", &argparse.Options{Help: "Class width of the frequency table", Default: notGiven})
	dpi := parser.Int("", "dpi", &argparse.Options{Help: "Resolution of the PNG charts", Default: notGiven})
	noWorkbook := parser.Flag("", "no-workbook", &argparse.Options{Help: "Do not write the xlsx workbook", Default: false})
	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fl := flags{output: *output, dataset: *dataset, width: *width, dpi: *dpi, noWorkbook: *noWorkbook}
	if err := fl.apply(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// run executes the pipeline, logging to logw and printing the summary
// lines to out.
func run(ctx context.Context, cfg *config.Config, out, logw io.Writer) error {
	logger := logging.New(cfg.Logging, logw)
	res, err := report.Run(ctx, cfg, logger)
	if err != nil {
		logger.Error("Analysis failed", "error", err)
		return err
	}
	for _, line := range res.Lines() {
		fmt.Fprintln(out, line)
	}
	return nil
}
