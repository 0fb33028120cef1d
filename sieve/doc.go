// Package sieve enumerates Gaussian primes a+bi inside bounded lattice
// regions by symmetry-reduced trial elimination.
//
// What:
//
//   - Octant(x): the canonical octant 0 ≤ b ≤ a, a²+b² ≤ x. One cell per
//     class of eightfold symmetric points, so one eighth of the disk.
//   - Sector(x, alpha, beta): first-quadrant points with argument in
//     [alpha, beta) and norm ≤ x, for sampling prime density by direction.
//   - Block(x, y, dx, dy): the window [x, x+dx) × [y, y+dy).
//   - Donut: a growing ring. Each Grow(to) sieves only the annulus between
//     the previous bound and to, so a search can extend coverage lazily.
//
// Every region shares one elimination scheme: a prime p crosses off the
// products p·h for non-unit cofactors h whose product can fall inside the
// region. The regions differ only in which cells exist and in the cofactor
// range visited.
//
// Ordering:
//
//	Result.ScanOrder lists primes by real part, then imaginary part.
//	Result.Primes lists them by norm, then real part; folded results are
//	expanded to (a, b) and (b, a) so each associate class of first-quadrant
//	primes appears exactly once. 1+i lies on the diagonal and is never
//	doubled.
//
// Special cells:
//
//	0 and the units are forced composite in every region. 1+i, the
//	ramified prime, is an ordinary eliminator.
//
// Complexity (x = norm bound, A = cells in region):
//
//   - Octant, Donut.Grow: O(x·log log x) time, O(x/8) memory.
//   - Sector:             O(A·log log x + √x·π(√x)) time, O(A) memory.
//   - Block:              O(A·log log M) time for largest norm M, O(A) memory.
//
// Errors:
//
//   - ErrInvalidRegion:   malformed descriptor.
//   - ErrRegionTooLarge:  region exceeds the cell limit (checked before allocation).
//   - ErrNotGrowing:      Donut.Grow to a bound not above the current one.
//   - ErrOptionViolation: invalid functional option.
package sieve
