// Package bridge exposes the sieves as flat listings for hosts that
// marshal results across a language boundary.
//
// Each region has three forms:
//
//   - PrimesToNorm, PrimesInSector, PrimesInBlock: []Pair. Refused with
//     ErrTooLarge once the region reaches PairLimit, since copying pairs
//     one by one dominates at that size.
//   - *Count: the number of primes only; no guard.
//   - *AsArray: a newly allocated []uint32 of length 2·count holding
//     a0, b0, a1, b1, ...; no guard. The buffer belongs to the caller.
//
// Primes are listed by norm, then real part, one per associate class of
// the first quadrant (blocks list exactly the window). Region errors from
// package sieve are passed through unchanged.
package bridge
