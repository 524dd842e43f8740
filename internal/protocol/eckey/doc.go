// Package eckey derives a secp256k1 key pair from a master secret and a peer
// identifier.
//
// The private scalar is HMAC-SHA-256(master secret, peerID) read as an
// unsigned big-endian integer. A single hash output already covers the
// curve's 256-bit order, so no chaining is needed.
//
// A scalar of zero or at least the curve order is rejected with
// ErrScalarOutOfRange rather than reduced; the chance is below 2^-127. Every
// pair is validated against the curve before it is returned and a failure
// surfaces as ErrInvalidKeyPair.
package eckey
