// Package tablerepair reconstructs clean tables from partially structured
// extraction output.
package tablerepair

import (
	"fmt"
	"os"

	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/parser"
	"gopkg.in/yaml.v3"
)

// Format represents the output shape.
type Format string

const (
	// FormatDetailed emits the flat cell-list shape.
	FormatDetailed Format = "detailed"
	// FormatStructured emits row dictionaries keyed by column name.
	FormatStructured Format = "structured"
	// FormatBoth emits both shapes.
	FormatBoth Format = "both"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatDetailed, FormatStructured, FormatBoth:
		return f, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be detailed, structured, or both)", s)
}

// Options configures table repair.
type Options struct {
	// Format selects the output shapes attached to batch results.
	Format Format `yaml:"format"`
	// Concurrency bounds the number of tables parsed in parallel.
	// Zero or less means one.
	Concurrency int `yaml:"concurrency"`
	// Heuristics are the parser parameters. Left unset, the defaults apply.
	Heuristics parser.Params `yaml:"heuristics"`
}

// DefaultOptions returns default repair options.
func DefaultOptions() Options {
	return Options{
		Format:      FormatStructured,
		Concurrency: 4,
		Heuristics:  parser.DefaultParams(),
	}
}

// LoadOptions reads a YAML file over the defaults. Keys missing from the file
// keep their default value.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return opts, err
	}
	return opts, nil
}

// ShouldIncludeDetailed returns whether to attach the detailed shape.
func (o Options) ShouldIncludeDetailed() bool {
	return o.Format == FormatDetailed || o.Format == FormatBoth
}

// ShouldIncludeStructured returns whether to attach the structured shape.
func (o Options) ShouldIncludeStructured() bool {
	return o.Format == FormatStructured || o.Format == FormatBoth || o.Format == ""
}

func (o Options) workers() int {
	if o.Concurrency < 1 {
		return 1
	}
	return o.Concurrency
}

// params returns the heuristics, falling back to parser.DefaultParams when
// none were set.
func (o Options) params() parser.Params {
	if !o.Heuristics.IsZero() {
		return o.Heuristics
	}
	p := parser.DefaultParams()
	p.DisableLiteralEval = o.Heuristics.DisableLiteralEval
	return p
}
