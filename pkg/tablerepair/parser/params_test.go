package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParams_IsZero(t *testing.T) {
	tests := map[string]struct {
		params Params
		want   bool
	}{
		"zero value":           {params: Params{}, want: true},
		"only literal switch":  {params: Params{DisableLiteralEval: true}, want: true},
		"defaults":             {params: DefaultParams(), want: false},
		"single keyword":       {params: Params{HeaderKeywords: []string{"analyte"}}, want: false},
		"single ratio":         {params: Params{KeywordRatio: 0.5}, want: false},
		"single position rows": {params: Params{PositionRows: 2}, want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.params.IsZero())
		})
	}
}
