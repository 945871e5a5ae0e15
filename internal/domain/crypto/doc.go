// Package crypto defines the core interfaces and structures of the RSA numeric core:
// primality testing, large-prime generation, modular arithmetic helpers, key-pair generation
// and the per-byte encrypt/decrypt transform.
package crypto
