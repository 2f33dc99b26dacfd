package storage

import "testing"

func TestFitWithin(t *testing.T) {
	cases := []struct {
		name         string
		w, h, max    int
		wantW, wantH int
	}{
		{"already inside", 800, 600, 1600, 800, 600},
		{"exact bound", 1600, 1600, 1600, 1600, 1600},
		{"wide landscape", 3200, 1600, 1600, 1600, 800},
		{"tall portrait", 1000, 4000, 1600, 400, 1600},
		{"square oversize", 2000, 2000, 1600, 1600, 1600},
		{"extreme ratio never hits zero", 10000, 2, 1600, 1600, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotW, gotH := FitWithin(tc.w, tc.h, tc.max)
			if gotW != tc.wantW || gotH != tc.wantH {
				t.Fatalf("FitWithin(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tc.w, tc.h, tc.max, gotW, gotH, tc.wantW, tc.wantH)
			}
		})
	}
}
