// Package stream produces deterministic pseudorandom byte streams by chaining
// a keyed hash over its own accumulated output.
//
// # Construction
//
// With H the keyed hash bound to one key for the whole call:
//
//	block0 = H(initialData)
//	block1 = H(block0)
//	block2 = H(block0 || block1)
//	...
//	block_i = H(block0 || ... || block_{i-1})
//
// Each round hashes the entire accumulator, not only the previous block, so
// rounds cannot run in parallel. The output is the accumulator truncated to
// the requested length.
package stream
