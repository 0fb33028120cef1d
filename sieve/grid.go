package sieve

import "fmt"

// grid stores one candidate flag per lattice cell of a columnar region:
// for each real part a in [aMin, aMin+len(lo)) the cells
// lo[i] ≤ b < lo[i] + (start[i+1] - start[i]).
// A true flag means "still a primality candidate".
type grid struct {
	aMin  int64
	lo    []int64
	start []int64
	cells []bool
}

// columnFunc returns the inclusive imaginary range of column a.
// hi < lo denotes an empty column.
type columnFunc func(a int64) (lo, hi int64)

// columnCost is the limit charge for one column's bookkeeping (lo and
// start offsets), in units of one-byte cells.
const columnCost = 16

// newGrid sizes every column first and refuses regions above maxCells
// before allocating anything. The charge is one unit per cell plus
// columnCost per column.
func newGrid(aMin, aMax int64, col columnFunc, maxCells int64) (*grid, error) {
	if aMax < aMin {
		return &grid{aMin: aMin, start: []int64{0}}, nil
	}
	n := aMax - aMin + 1
	if n > maxCells/columnCost {
		return nil, fmt.Errorf("%w: %d columns exceed limit %d", ErrRegionTooLarge, n, maxCells)
	}
	var total int64
	budget := maxCells - n*columnCost
	for i := int64(0); i < n; i++ {
		if l, h := col(aMin + i); h >= l {
			total += h - l + 1
		}
		if total > budget {
			return nil, fmt.Errorf("%w: more than %d cells", ErrRegionTooLarge, budget)
		}
	}

	lo := make([]int64, n)
	start := make([]int64, n+1)
	var off int64
	for i := int64(0); i < n; i++ {
		l, h := col(aMin + i)
		lo[i] = l
		start[i] = off
		if h >= l {
			off += h - l + 1
		}
	}
	start[n] = off

	cells := make([]bool, total)
	for i := range cells {
		cells[i] = true
	}
	return &grid{aMin: aMin, lo: lo, start: start, cells: cells}, nil
}

// index maps (a, b) to its cell offset; ok is false outside the region.
// Complexity: O(1).
func (gr *grid) index(a, b int64) (idx int64, ok bool) {
	i := a - gr.aMin
	if i < 0 || i >= int64(len(gr.lo)) {
		return 0, false
	}
	off := b - gr.lo[i]
	if off < 0 || off >= gr.start[i+1]-gr.start[i] {
		return 0, false
	}
	return gr.start[i] + off, true
}

// has reports whether (a, b) is a cell of the region.
func (gr *grid) has(a, b int64) bool {
	_, ok := gr.index(a, b)
	return ok
}

// get returns the flag of (a, b); cells outside the region read false.
func (gr *grid) get(a, b int64) bool {
	idx, ok := gr.index(a, b)
	return ok && gr.cells[idx]
}

// clear marks (a, b) composite. Points outside the region are ignored.
func (gr *grid) clear(a, b int64) {
	if idx, ok := gr.index(a, b); ok {
		gr.cells[idx] = false
	}
}

// size returns the number of cells.
func (gr *grid) size() int64 {
	return int64(len(gr.cells))
}

// each calls fn for every true cell in scan order (ascending a, then b).
func (gr *grid) each(fn func(a, b int64)) {
	for i := range gr.lo {
		a := gr.aMin + int64(i)
		base := gr.start[i]
		for off := int64(0); off < gr.start[i+1]-base; off++ {
			if gr.cells[base+off] {
				fn(a, gr.lo[i]+off)
			}
		}
	}
}

// clearUnits forces 0 and the units ±1, ±i to false.
func (gr *grid) clearUnits() {
	gr.clear(0, 0)
	gr.clear(1, 0)
	gr.clear(-1, 0)
	gr.clear(0, 1)
	gr.clear(0, -1)
}
