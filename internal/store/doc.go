// Package store provides file-based persistence for master secrets.
//
// Each DID's master secret is sealed with ChaCha20-Poly1305 under a key
// derived from a passphrase with scrypt, and written as a JSON envelope under
// <home>/masters. The envelope's additional data binds it to its DID. An
// index file maps the hashed filenames back to DIDs for listing.
//
// Derived pairwise keys are never stored: they are regenerated from the
// master secret on demand. All methods are concurrency-safe via internal
// locking.
package store
