package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestMerge checks only settings absent from the command line are filled.
func TestMerge(t *testing.T) {
	cli := settings{Jump: 3, MaxNorm: 100, Mode: modeOrigin}
	file := settings{
		Jump: 5, RealPart: 40, Mode: modeVertical, Verbose: true, MaxNorm: 900,
		Width: 24, Height: 64, MaxImag: 500, MetricsFile: "m.prom", hasRealPart: true,
	}
	explicit := map[string]bool{"jump": true, "max_norm": true, "mode": true}
	got := merge(cli, file, func(key string) bool { return explicit[key] })

	want := settings{
		Jump: 3, RealPart: 40, Mode: modeOrigin, Verbose: true, MaxNorm: 100,
		Width: 24, Height: 64, MaxImag: 500, MetricsFile: "m.prom", hasRealPart: true,
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(settings{})); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

// TestValidate covers the mode rules.
func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		in   settings
		ok   bool
	}{
		{"DefaultMode", settings{Jump: 2}, true},
		{"Segmented", settings{Jump: 2, Mode: modeSegmented}, true},
		{"VerticalWithRealPart", settings{Jump: 2, Mode: modeVertical, hasRealPart: true}, true},
		{"VerticalWithoutRealPart", settings{Jump: 2, Mode: modeVertical}, false},
		{"UnknownMode", settings{Jump: 2, Mode: "diagonal"}, false},
		{"NoJump", settings{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.in
			err := s.validate()
			if tc.ok && err != nil {
				t.Fatalf("validate: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("validate accepted %+v", tc.in)
			}
			if tc.ok && s.Mode == "" {
				t.Errorf("mode left empty")
			}
		})
	}
}
