package tablerepair

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    Format
		wantErr bool
	}{
		"detailed":   {in: "detailed", want: FormatDetailed},
		"structured": {in: "structured", want: FormatStructured},
		"both":       {in: "both", want: FormatBoth},
		"unknown":    {in: "csv", wantErr: true},
		"empty":      {in: "", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			got, err := ParseFormat(tc.in)
			if tc.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tc.want, got)
		})
	}
}

func TestOptions_ShouldInclude(t *testing.T) {
	tests := map[string]struct {
		format     Format
		detailed   bool
		structured bool
	}{
		"detailed":   {format: FormatDetailed, detailed: true},
		"structured": {format: FormatStructured, structured: true},
		"both":       {format: FormatBoth, detailed: true, structured: true},
		"unset":      {format: "", structured: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			opts := Options{Format: tc.format}
			require.Equal(t, tc.detailed, opts.ShouldIncludeDetailed())
			require.Equal(t, tc.structured, opts.ShouldIncludeStructured())
		})
	}
}

func TestLoadOptions(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "tablerepair.yaml")
	config := `format: both
concurrency: 2
heuristics:
  header_keywords: [analyte, result]
  position_rows: 2
`
	req.NoError(os.WriteFile(path, []byte(config), 0644))

	opts, err := LoadOptions(path)
	req.NoError(err)

	defaults := DefaultOptions()
	req.Equal(FormatBoth, opts.Format)
	req.Equal(2, opts.Concurrency)
	req.Equal([]string{"analyte", "result"}, opts.Heuristics.HeaderKeywords)
	req.Equal(2, opts.Heuristics.PositionRows)
	req.Equal(defaults.Heuristics.TextRatio, opts.Heuristics.TextRatio)
	req.Equal(defaults.Heuristics.Qualifiers, opts.Heuristics.Qualifiers)
	req.Equal(defaults.Heuristics.GroupRules, opts.Heuristics.GroupRules)
}

func TestLoadOptions_Errors(t *testing.T) {
	dir := t.TempDir()

	badFormat := filepath.Join(dir, "format.yaml")
	require.NoError(t, os.WriteFile(badFormat, []byte("format: csv\n"), 0644))

	badYAML := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("format: [\n"), 0644))

	for name, path := range map[string]string{
		"missing file":   filepath.Join(dir, "missing.yaml"),
		"invalid format": badFormat,
		"invalid yaml":   badYAML,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadOptions(path)
			require.Error(t, err)
		})
	}
}

func TestLoadOptions_Example(t *testing.T) {
	req := require.New(t)

	opts, err := LoadOptions(filepath.Join("..", "..", "tablerepair.example.yaml"))
	req.NoError(err)
	req.Equal(DefaultOptions(), opts)
}
