package search

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Options tunes how a search runs: worker count, output-buffer capacity,
// and where results and the optional debug heatmap are written. The CLI's
// positional-argument contract (the constraints-file path) is separate
// from, and unaffected by, these options.
type Options struct {
	// Workers is how many goroutines share solver work. 0 means
	// runtime.NumCPU().
	Workers int `yaml:"workers"`

	// BufferCapacity caps how many found seeds a search keeps before
	// further hits are reported as a truncation warning rather than
	// collected. Defaults to a fixed 20,000,000-slot buffer, exposed
	// here as a tunable rather than a hard constant.
	BufferCapacity int `yaml:"bufferCapacity"`

	// OutputPath is where the sorted found seeds are written.
	OutputPath string `yaml:"outputPath"`

	// DebugSVGPath, if non-empty, renders the pre-filter survivor density
	// as a heatmap PNG-free SVG at this path. Never affects exit codes or
	// the OutputPath contract.
	DebugSVGPath string `yaml:"debugSvgPath,omitempty"`
}

// DefaultOptions returns the options a CLI run uses with no -config flag.
func DefaultOptions() Options {
	return Options{
		Workers:        runtime.NumCPU(),
		BufferCapacity: 20_000_000,
		OutputPath:     "found_seeds.txt",
	}
}

// LoadOptions reads a YAML file and overlays it on DefaultOptions: fields
// absent from the file keep their default value.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading search options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing search options YAML: %w", err)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("validating search options: %w", err)
	}
	return opts, nil
}

// Validate reports the first invalid field, if any.
func (o Options) Validate() error {
	if o.Workers <= 0 {
		return errors.New("workers must be positive")
	}
	if o.BufferCapacity <= 0 {
		return errors.New("bufferCapacity must be positive")
	}
	if o.OutputPath == "" {
		return errors.New("outputPath must not be empty")
	}
	return nil
}
