// Package identity manages the one master secret kept per DID.
//
// It enforces passphrase policy, generates random master secrets, and
// persists them via the domain.MasterSecretStore. Pairwise keys are derived
// from these secrets by package pairwise and never stored.
package identity
