// Package commands defines the pairwise CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init         Create and store a master secret for a DID
//   - list         List DIDs with a stored master secret
//   - derive       Derive the pairwise key for a DID and peer, print its JWK
//   - fingerprint  Print the thumbprint and multihash fingerprint of a pairwise key
//   - sign         Sign a message with a pairwise key
//   - verify       Verify a signature made by a pairwise key
//   - config       Print the effective configuration as YAML
//
// # Implementation
//
// The root command loads the configuration and builds the dependency graph
// (store, identity and pairwise services, logger) before any subcommand runs.
// Key commands read the master secret from the store, or derive it from the
// passphrase with --from-passphrase; the derived key itself is never written.
package commands
