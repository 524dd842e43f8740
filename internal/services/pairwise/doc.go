// Package pairwise is the entry point for deriving pairwise keys.
//
// A Service holds the injected cryptographic primitives. Service.Key binds a
// DID and a peer identifier into a PairwiseKey whose Generate dispatches to
// the RSA or EC builder by key type and wraps the result in an opaque key
// object. Service.Derive is the stateless form of the same operation.
//
// Nothing derived here is cached or persisted: calling Generate again with
// the same master key and parameters reproduces the same key.
//
// Concurrency: a Service is safe for concurrent use. A PairwiseKey is not;
// callers must serialise Generate per instance.
package pairwise
