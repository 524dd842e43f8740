// Package app wires application dependencies for the CLI.
//
// It loads Config with viper (YAML file, PAIRWISE_* environment, defaults),
// builds the slog logger, and constructs the master secret store and the
// identity and pairwise services, exposing them via the Wire struct for
// commands to use.
package app
