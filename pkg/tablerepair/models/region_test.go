package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegion_Intersect(t *testing.T) {
	tests := map[string]struct {
		a, b   Region
		want   Region
		wantOK bool
	}{
		"contained": {
			a:      Region{R1: 1, C1: 1, R2: 1048576, C2: 16384},
			b:      Region{R1: 2, C1: 2, R2: 4, C2: 3},
			want:   Region{R1: 2, C1: 2, R2: 4, C2: 3},
			wantOK: true,
		},
		"overlapping": {
			a:      Region{R1: 1, C1: 1, R2: 5, C2: 5},
			b:      Region{R1: 4, C1: 3, R2: 8, C2: 9},
			want:   Region{R1: 4, C1: 3, R2: 5, C2: 5},
			wantOK: true,
		},
		"disjoint": {
			a: Region{R1: 1, C1: 1, R2: 2, C2: 2},
			b: Region{R1: 10, C1: 8, R2: 12, C2: 10},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			got, ok := tc.a.Intersect(tc.b)
			req.Equal(tc.wantOK, ok)
			req.Equal(tc.want, got)
		})
	}
}

func TestRegion_Area(t *testing.T) {
	require.Equal(t, 6, Region{R1: 2, C1: 2, R2: 4, C2: 3}.Area())
	require.Equal(t, 1, Region{R1: 1, C1: 1, R2: 1, C2: 1}.Area())
}
