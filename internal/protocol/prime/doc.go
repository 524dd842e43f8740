// Package prime turns a deterministic seed into a probable prime.
//
// The seed is read as an unsigned big-endian integer with its top bit and
// bottom bit forced, which fixes the bit length and makes it odd. The search
// then walks odd candidates upward by 2 until one passes a 64-round
// probabilistic primality test. The number of candidates tested is returned
// to the caller rather than kept as state.
//
// # Bound
//
// Prime gaps near 2^L average about L·ln 2, so a 512-bit search tests around
// 180 odd candidates on average. Options.MaxTests caps the walk and turns a
// pathological seed into ErrPrimeSearchExhausted instead of an unbounded loop.
package prime
