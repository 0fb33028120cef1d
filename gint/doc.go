// Package gint implements the Gaussian integer value type used throughout
// gaussmoat: lattice points a+bi with integer coordinates.
//
// What:
//
//   - Gint is an immutable (A, B) pair with the ring operations needed by
//     the sieves and explorers: Add, Sub, Mul, Conj, Rotate (multiply by i).
//   - Norm returns a²+b², the multiplicative measure used to order primes.
//   - Octant folds any point into its canonical representative with
//     0 ≤ b ≤ a using the eightfold symmetry of the lattice (units ±1, ±i
//     and complex conjugation).
//   - IsPrime is a trial-division primality test. It is slow and exists as
//     an independent oracle for the sieves, not as a production path.
//   - Offsets enumerates every lattice step within a squared jump bound.
//
// Arithmetic:
//
//	All coordinates are int64. Callers keep norms at or below 2^62 so that
//	products of coordinates never overflow.
//
// Complexity:
//
//   - Norm, Mul, Octant: O(1).
//   - ISqrt: O(1) (floating estimate plus a constant number of corrections).
//   - IsPrime: O(N(g)^½) candidate divisors.
//   - Offsets: O(J) for squared bound J.
package gint
