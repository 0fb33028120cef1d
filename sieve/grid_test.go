package sieve

import (
	"errors"
	"testing"
)

// TestGrid_Index verifies column offsets and bounds.
func TestGrid_Index(t *testing.T) {
	// Columns: a=2 → b∈[0,1], a=3 → empty, a=4 → b∈[5,7].
	col := func(a int64) (int64, int64) {
		switch a {
		case 2:
			return 0, 1
		case 4:
			return 5, 7
		default:
			return 0, -1
		}
	}
	gr, err := newGrid(2, 4, col, 100)
	if err != nil {
		t.Fatalf("newGrid: %v", err)
	}
	if gr.size() != 5 {
		t.Fatalf("size = %d; want 5", gr.size())
	}
	cases := []struct {
		a, b int64
		idx  int64
		ok   bool
	}{
		{2, 0, 0, true}, {2, 1, 1, true}, {2, 2, 0, false},
		{3, 0, 0, false}, {4, 5, 2, true}, {4, 7, 4, true},
		{4, 4, 0, false}, {1, 0, 0, false}, {5, 5, 0, false},
	}
	for _, tc := range cases {
		idx, ok := gr.index(tc.a, tc.b)
		if ok != tc.ok || (ok && idx != tc.idx) {
			t.Errorf("index(%d,%d) = %d,%v; want %d,%v", tc.a, tc.b, idx, ok, tc.idx, tc.ok)
		}
	}

	gr.clear(4, 6)
	gr.clear(9, 9) // outside: ignored
	var got [][2]int64
	gr.each(func(a, b int64) { got = append(got, [2]int64{a, b}) })
	want := [][2]int64{{2, 0}, {2, 1}, {4, 5}, {4, 7}}
	if len(got) != len(want) {
		t.Fatalf("each = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("each[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// TestGrid_Limit ensures oversized regions fail before allocation.
func TestGrid_Limit(t *testing.T) {
	// 10 columns of 10 cells: 100 cells + 10·columnCost.
	col := func(int64) (int64, int64) { return 0, 9 }
	if _, err := newGrid(0, 9, col, 259); !errors.Is(err, ErrRegionTooLarge) {
		t.Errorf("260 units under limit 259: got %v; want ErrRegionTooLarge", err)
	}
	if _, err := newGrid(0, 9, col, 260); err != nil {
		t.Errorf("260 units under limit 260: %v", err)
	}
}

// TestGrid_ColumnsChargedFirst rejects a huge column count without sizing
// a single column.
func TestGrid_ColumnsChargedFirst(t *testing.T) {
	called := false
	col := func(int64) (int64, int64) { called = true; return 0, -1 }
	if _, err := newGrid(0, 1<<31, col, DefaultMaxCells); !errors.Is(err, ErrRegionTooLarge) {
		t.Errorf("2^31 columns: got %v; want ErrRegionTooLarge", err)
	}
	if called {
		t.Errorf("column function called before the column charge was checked")
	}
}

// TestAnnulusGrid_DiagonalCut checks the octant column shape.
func TestAnnulusGrid_DiagonalCut(t *testing.T) {
	gr, err := annulusGrid(0, 50, DefaultMaxCells)
	if err != nil {
		t.Fatalf("annulusGrid: %v", err)
	}
	// isqrt(25) = 5: columns 0..5 are full triangles, 6 and 7 are cut.
	// The annulus (0, 50] excludes the origin.
	for a := int64(0); a <= 7; a++ {
		for b := int64(0); b <= 7; b++ {
			want := b <= a && a*a+b*b > 0 && a*a+b*b <= 50
			if got := gr.has(a, b); got != want {
				t.Errorf("has(%d,%d) = %v; want %v", a, b, got, want)
			}
		}
	}
}

// TestFoldAndDivision covers the small arithmetic helpers.
func TestFoldAndDivision(t *testing.T) {
	if a, b := fold(-2, 7); a != 7 || b != 2 {
		t.Errorf("fold(-2,7) = %d,%d; want 7,2", a, b)
	}
	if got := floorDiv(-7, 2); got != -4 {
		t.Errorf("floorDiv(-7,2) = %d; want -4", got)
	}
	if got := ceilDiv(7, 2); got != 4 {
		t.Errorf("ceilDiv(7,2) = %d; want 4", got)
	}
	if got := ceilDiv(-7, 2); got != -3 {
		t.Errorf("ceilDiv(-7,2) = %d; want -3", got)
	}
}
