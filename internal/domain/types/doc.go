// Package types holds the plain data types shared across pairwise: identity
// pairs, algorithm parameters, derived key material and the JWK form.
package types
