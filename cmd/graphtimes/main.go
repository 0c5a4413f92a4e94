// graphtimes renders benchmark timing output as per-label line charts.
//
// Two modes:
//  1. File mode: `graphtimes bench.txt` parses the file and writes bench.png
//     into the current working directory.
//  2. Stdin mode: `graphtimes < bench.txt` parses standard input and opens
//     the charts in an interactive window instead.
//
// Input lines look like `forward 3: 1200 ms`: label, speed level, elapsed
// milliseconds, anything after the third field ignored. One chart is drawn
// per distinct label, side by side, colored along a rainbow ramp.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/graphtimes/graphtimes/src/logging"
	"github.com/graphtimes/graphtimes/src/render"
	"github.com/graphtimes/graphtimes/src/timings"
	"github.com/graphtimes/graphtimes/src/viewer"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: graphtimes [flags] [input_file] [< input_file]")
	fmt.Fprintln(os.Stderr, "  With a file argument, a <stem>.png chart is written to the working directory")
	fmt.Fprintln(os.Stderr, "  When reading from stdin, the charts open in an interactive window")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

type config struct {
	inputPath   string // empty means stdin
	outOverride string
	opts        render.Options
	summary     bool
	summaryJSON string
}

func main() {
	outFile := flag.String("out", "", "Override the derived output PNG path (file mode only)")
	subW := flag.Int("subplot-width", render.DefaultSubplotWidth, "Per-chart width in pixels")
	subH := flag.Int("subplot-height", render.DefaultSubplotHeight, "Per-chart height in pixels")
	summary := flag.Bool("summary", false, "Log a per-label aggregate summary after parsing")
	summaryJSON := flag.String("summary-json", "", "Write the per-label summary as JSON to this path (optional)")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	help := flag.Bool("help", false, "Show usage")
	flag.Usage = usage
	flag.Parse()

	logging.SetLevel(*logLevel)

	if *help || flag.NArg() > 1 {
		usage()
		os.Exit(2)
	}

	cfg := config{
		outOverride: *outFile,
		opts:        render.Options{SubplotWidth: *subW, SubplotHeight: *subH},
		summary:     *summary,
		summaryJSON: *summaryJSON,
	}
	if flag.NArg() == 1 {
		cfg.inputPath = flag.Arg(0)
	}

	if err := run(cfg); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	in, outPath, err := resolveInput(cfg.inputPath)
	if err != nil {
		return err
	}
	ds, err := parseInput(in)
	if err != nil {
		return err
	}
	if ds.Len() == 0 {
		return fmt.Errorf("no samples found in input")
	}

	if cfg.summary || cfg.summaryJSON != "" {
		sums := timings.Summarize(ds)
		if cfg.summary {
			for _, s := range sums {
				logging.Infof("%s: samples=%d speed=%d..%d time_ms min=%d avg=%.1f median=%.1f max=%d",
					s.Label, s.Samples, s.SpeedMin, s.SpeedMax, s.TimeMinMs, s.TimeAvgMs, s.TimeMedianMs, s.TimeMaxMs)
			}
		}
		if cfg.summaryJSON != "" {
			if err := writeSummaryJSON(cfg.summaryJSON, sums); err != nil {
				return fmt.Errorf("write summary: %w", err)
			}
			logging.Infof("wrote summary %s", cfg.summaryJSON)
		}
	}

	if outPath == "" {
		img, err := render.Render(ds, cfg.opts)
		if err != nil {
			return err
		}
		viewer.Show(img)
		return nil
	}
	if cfg.outOverride != "" {
		outPath = cfg.outOverride
	}
	if err := render.WritePNG(ds, cfg.opts, outPath); err != nil {
		return err
	}
	logging.Infof("wrote %s", outPath)
	return nil
}

// resolveInput picks the input source and derives the output target. An empty
// path selects stdin, which pairs with interactive display (empty out path).
func resolveInput(path string) (io.ReadCloser, string, error) {
	if path == "" {
		return os.Stdin, "", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return f, outputName(path), nil
}

// outputName derives the PNG name from the input path: basename with its
// extension replaced, landing in the current working directory.
func outputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

// parseInput consumes and closes the source. The close happens on every
// path, parse failure included.
func parseInput(in io.ReadCloser) (*timings.Dataset, error) {
	defer in.Close()
	start := time.Now()
	ds, err := timings.Parse(in)
	if err != nil {
		return nil, err
	}
	logging.TimeTrack(start, "parse")
	logging.Debugf("parsed %d labels", ds.Len())
	return ds, nil
}

func writeSummaryJSON(path string, sums []timings.LabelSummary) error {
	b, err := json.MarshalIndent(sums, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
