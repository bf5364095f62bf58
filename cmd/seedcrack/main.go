// Command seedcrack recovers Minecraft structure seeds from a small set
// of observed structures.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dshills/mcstructureseed/pkg/constraint"
	"github.com/dshills/mcstructureseed/pkg/export"
	"github.com/dshills/mcstructureseed/pkg/inputfile"
	"github.com/dshills/mcstructureseed/pkg/placement"
	"github.com/dshills/mcstructureseed/pkg/prefilter"
	"github.com/dshills/mcstructureseed/pkg/search"
)

const version = "1.0.0"

// CLI flags
var (
	workers      = flag.Int("workers", 0, "Worker goroutine count (0 = runtime.NumCPU())")
	configPath   = flag.String("config", "", "Path to a YAML search options file (optional)")
	debugSVGPath = flag.String("debug-svg", "", "Write a pre-filter survivor-density heatmap SVG to this path")
	verbose      = flag.Bool("verbose", false, "Enable verbose progress output")
	versionF     = flag.Bool("version", false, "Print version and exit")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("seedcrack version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printUsage()
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one argument required: path to a constraints file")
		printUsage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: seedcrack [flags] <constraints-file>")
	flag.PrintDefaults()
}

func run(path string) error {
	start := time.Now()

	opts, err := loadOptions()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening constraints file: %w", err)
	}
	defer f.Close()

	parsed, warnings, err := inputfile.Parse(f)
	if err != nil {
		return fmt.Errorf("reading constraints file: %w", err)
	}
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}

	if *verbose {
		fmt.Printf("Parsed %d constraint(s), pillar seed present: %v\n", len(parsed.Constraints), parsed.PillarSeed != nil)
	}

	svgPath := opts.DebugSVGPath
	if *debugSVGPath != "" {
		svgPath = *debugSVGPath
	}
	if svgPath != "" {
		if err := writeDebugHeatmap(svgPath, parsed.Constraints); err != nil {
			return err
		}
	}

	result, err := search.Run(search.Request{Constraints: parsed.Constraints, PillarSeed: parsed.PillarSeed}, opts)
	if err != nil {
		return err
	}
	if result.Truncated {
		fmt.Printf("warning: result count exceeded buffer capacity (%d); output truncated\n", opts.BufferCapacity)
	}

	if err := export.WriteSeeds(opts.OutputPath, result.Seeds); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Found %d matching seed(s), written to %s\n", len(result.Seeds), opts.OutputPath)
	fmt.Printf("Elapsed: %v\n", time.Since(start))
	return nil
}

func loadOptions() (search.Options, error) {
	var opts search.Options
	var err error

	if *configPath != "" {
		opts, err = search.LoadOptions(*configPath)
		if err != nil {
			return search.Options{}, fmt.Errorf("loading search options: %w", err)
		}
	} else {
		opts = search.DefaultOptions()
	}

	if *workers > 0 {
		opts.Workers = *workers
	}
	return opts, nil
}

func writeDebugHeatmap(path string, cs []constraint.Constraint) error {
	var checks []prefilter.Check
	for _, c := range cs {
		if _, ok := c.(constraint.Shipwreck); !ok {
			continue
		}
		chunkX, chunkZ := c.Chunk()
		checks = append(checks, prefilter.NewCheck(placement.Shipwreck, chunkX, chunkZ))
	}
	if err := export.WriteHeatmap(path, checks); err != nil {
		return fmt.Errorf("writing debug heatmap: %w", err)
	}
	return nil
}
