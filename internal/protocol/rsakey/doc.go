// Package rsakey derives a full RSA private key from a master secret and a
// peer identifier.
//
// # Derivation
//
//  1. pSeed = stream(HMAC-SHA-512 keyed by the master secret, peerID, bits/2)
//  2. p     = prime.Search(pSeed)
//  3. qSeed = stream(HMAC-SHA-512 keyed by pSeed, peerID, bits/2)
//  4. q     = prime.Search(qSeed)
//  5. n = p·q, φ = (p-1)(q-1), e = 65537, d = e⁻¹ mod φ,
//     dp = d mod (p-1), dq = d mod (q-1), qi = q⁻¹ mod p
//
// The second chain is keyed by the raw first seed (before its bits are
// forced) and starts from an empty accumulator, so the two chains are
// independent apart from that key.
//
// # Errors
//
// ErrInvalidModulusBits for sizes below 1024 or not a multiple of 16.
// ErrModularInverse when e is not invertible modulo φ, and
// ErrDegeneratePrimes when p == q. Neither is retried.
package rsakey
