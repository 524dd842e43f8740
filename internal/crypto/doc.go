// Package crypto exposes the primitives and key objects used by pairwise.
//
// Contents
//
//   - HMAC-SHA-256/512 keyed-hash signers (NewHMAC)
//   - secp256k1 scalar multiplication and key-pair validation (Secp256k1)
//   - Miller-Rabin/Baillie-PSW primality via math/big (BigPrimality)
//   - NewPrimitives, bundling the above behind domain.Primitives
//   - Opaque key objects for derived material (RSAKey, ECKey) with RS256 and
//     ES256K signing and JWK export
//   - RFC 7638 thumbprints and multihash fingerprints (Thumbprint, Fingerprint)
//   - Master secret helpers (NewMasterSecret, MasterSecretFromPassphrase)
//
// # Notes
//
// Nothing in this package persists key material. Callers own every returned
// slice and should zero secrets with memzero.Zero when practical.
package crypto
