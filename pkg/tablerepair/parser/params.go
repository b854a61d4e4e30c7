// Package parser repairs raw table grids: cell parsing, header detection,
// column reconstruction and row cleaning.
package parser

// GroupRule assigns a column to a semantic group by its header label.
// Exact labels are compared case-insensitively before substring matching.
type GroupRule struct {
	Group    string   `yaml:"group"`
	Exact    []string `yaml:"exact,omitempty"`
	Contains []string `yaml:"contains,omitempty"`
}

// Params holds the tunable heuristics of the repair pipeline.
type Params struct {
	// HeaderKeywords are matched case-insensitively as substrings of cell text.
	HeaderKeywords []string `yaml:"header_keywords"`
	// HeaderFlagRatio is the share of flagged cells a row must exceed.
	HeaderFlagRatio float64 `yaml:"header_flag_ratio"`
	// KeywordRatio is the share of keyword cells a row must reach.
	KeywordRatio float64 `yaml:"keyword_ratio"`
	// PositionRows is the number of leading rows eligible for the text-density signal.
	PositionRows int `yaml:"position_rows"`
	// TextRatio is the share of non-numeric cells a leading row must exceed.
	TextRatio float64 `yaml:"text_ratio"`
	// Qualifiers are the letters stripped before testing a cell for numeric content.
	Qualifiers []string `yaml:"qualifiers"`
	// GroupRules drive semantic column grouping; first match wins.
	GroupRules []GroupRule `yaml:"group_rules"`
	// DisableLiteralEval skips the strict array-literal reader and uses the
	// manual split only.
	DisableLiteralEval bool `yaml:"disable_literal_eval"`
}

// DefaultParams returns the default heuristics.
func DefaultParams() Params {
	return Params{
		HeaderKeywords: []string{
			"sample", "date", "concentration", "method", "limit", "qualifier",
			"analyte", "result", "units", "parameter", "location", "depth",
			"matrix", "mdl", "dilution", "cas",
		},
		HeaderFlagRatio: 0.5,
		KeywordRatio:    0.3,
		PositionRows:    3,
		TextRatio:       0.6,
		Qualifiers:      []string{"U", "J", "B", "E", "R", "D", "H", "P", "X"},
		GroupRules: []GroupRule{
			{Group: "qualifiers", Exact: []string{"q", "qual", "qualifier"}},
			{Group: "concentrations", Contains: []string{"conc"}},
			{Group: "detection_limits", Contains: []string{"mdl"}},
			{Group: "reporting_limits", Contains: []string{"rl", "limit"}},
		},
	}
}

// IsZero reports whether none of the thresholds or vocabularies is set.
// DisableLiteralEval is a switch, not a threshold, and is ignored.
func (p Params) IsZero() bool {
	return len(p.HeaderKeywords) == 0 &&
		p.HeaderFlagRatio == 0 &&
		p.KeywordRatio == 0 &&
		p.PositionRows == 0 &&
		p.TextRatio == 0 &&
		len(p.Qualifiers) == 0 &&
		len(p.GroupRules) == 0
}
