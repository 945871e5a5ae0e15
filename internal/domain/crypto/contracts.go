package crypto

import "math/big"

// PrimalityOracle decides, with bounded false-positive probability, whether an integer is prime.
type PrimalityOracle interface {
	// IsProbablePrime applies the Miller-Rabin test with the given number of random witnesses.
	// Values below 2 are reported as not prime without drawing any witness.
	// A composite passes with probability at most 4^(-rounds).
	IsProbablePrime(n *big.Int, rounds int) bool

	// CheckPrime is the validating variant of IsProbablePrime.
	// It returns ErrInvalidInput for nil input, n < 2 or rounds < 1.
	CheckPrime(n *big.Int, rounds int) (bool, error)
}

// PrimeGenerator samples random integers of a fixed bit length until one is accepted as prime.
type PrimeGenerator interface {
	// Generate returns a probable prime with exactly bitLength bits (top bit set).
	// The search is unbounded unless an attempt cap is configured, in which case
	// ErrGenerationTimeout is returned once the cap is hit.
	Generate(bitLength uint) (*big.Int, error)
}

// ModularArithmetic groups the gcd and modular-inverse routines used by key generation.
type ModularArithmetic interface {
	// GCD returns the greatest common divisor of a and b.
	// Returns ErrArithmetic if b is zero.
	GCD(a, b *big.Int) (*big.Int, error)

	// ModInverse returns d such that e*d = 1 (mod phi).
	// Returns ErrArithmetic if gcd(e, phi) != 1.
	ModInverse(e, phi *big.Int) (*big.Int, error)

	// PrimeFactors returns the prime factorisation of n in ascending order using trial division.
	// Only suitable for small n.
	PrimeFactors(n *big.Int) ([]*big.Int, error)
}

// KeyPairGenerator derives RSA key pairs from two freshly generated primes.
type KeyPairGenerator interface {
	// GenerateKeys returns a public/private key pair whose primes both have keySizeBits bits.
	GenerateKeys(keySizeBits uint) (*PublicKey, *PrivateKey, error)

	// GenerateKeysWithPrimes behaves like GenerateKeys and additionally returns the primes p and q.
	// Production callers should discard the primes.
	GenerateKeysWithPrimes(keySizeBits uint) (*PublicKey, *PrivateKey, *big.Int, *big.Int, error)
}

// RSATransform applies per-byte modular exponentiation.
// NOTE: every byte is encrypted independently and deterministically (no padding, no chaining),
// so the transform is NOT semantically secure.
type RSATransform interface {
	// Encrypt converts message to UTF-8 bytes and raises each byte to e modulo n.
	// Precondition: n > 255, which holds for any key generated with keySizeBits >= 9.
	Encrypt(message string, publicKey *PublicKey) (EncryptedMessage, error)

	// Decrypt raises each element to d modulo n, keeps the low byte and decodes the result as UTF-8.
	// Returns ErrDecoding if the recovered bytes are not valid UTF-8 (e.g. the wrong key was used).
	Decrypt(cipher EncryptedMessage, privateKey *PrivateKey) (string, error)
}
