// Package moat explores Gaussian moats: connected components of Gaussian
// primes in which two primes are adjacent when their Euclidean distance is
// at most a jump threshold j. A component is finite exactly when it is
// surrounded by a moat of width greater than j.
//
// What
//
//   - Explore: breadth-first growth of the component of a start prime
//     (1+i by default) over octant representatives, sieving lazily with a
//     sieve.Donut. Reports size, the farthest member and every member.
//   - Segmented: the same component computed ring by ring with a
//     union-find over a sliding window, so memory tracks the width of the
//     active ring rather than the size of the component.
//   - Strip: searches a vertical strip [r, r+w) × [0, ∞) for a walk from
//     the real axis upward; a strip that is never crossed holds a moat.
//
// Adjacency
//
//	Thresholds are normalized once by SquaredJump to an integer bound J;
//	p and q are adjacent iff |p − q|² ≤ J. Origin and segmented modes work
//	on the octant 0 ≤ b ≤ a, where each point stands for its eight images,
//	so Size counts octant primes and Max is an octant representative.
//
// Bounds and termination
//
//	Config.MaxNorm caps the sieve. A member whose neighborhood reaches past
//	the cap is expanded only inside it and the result is
//	StatusBoundReached; the reported component is then the component of
//	the graph restricted to primes of norm ≤ MaxNorm, identical for Explore
//	and Segmented. Without a cap the search ends in StatusMoat or runs until
//	the context is canceled (StatusCanceled, partial result, ctx.Err()).
//
// Determinism
//
//	Offsets are visited in gint.Less order and the frontier is FIFO, so
//	admission order, sizes and results are reproducible.
//
// Complexity (N = sieved norm bound, C = component size, J = squared jump)
//
//   - Explore:   O(N·log log N) sieve time, O(C·J) lookups, O(N/8 + C) memory.
//   - Segmented: same time, memory O(window) where the window is the rings
//     within one jump of the sieved bound.
//   - Strip:     O(H·w·log log M) for sieved height H, strip width w.
//
// Errors
//
//   - ErrInvalidJump:     non-positive, non-finite or oversized threshold.
//   - ErrInvalidConfig:   negative sizes, MaxNorm out of range, start not prime.
//   - ErrOptionViolation: invalid functional option.
//   - sieve errors (e.g. sieve.ErrRegionTooLarge) are passed through.
package moat
