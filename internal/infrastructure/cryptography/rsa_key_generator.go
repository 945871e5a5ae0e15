package cryptography

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"

	cryptoDomain "github.com/MGTheTrain/mini-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mini-rsa/internal/pkg/config"
	"github.com/MGTheTrain/mini-rsa/internal/pkg/logger"
)

// rsaKeyGenerator implements the KeyPairGenerator interface
type rsaKeyGenerator struct {
	primes      cryptoDomain.PrimeGenerator
	arithmetic  cryptoDomain.ModularArithmetic
	random      *rand.Rand
	maxAttempts int
	logger      logger.Logger
}

// NewRSAKeyGenerator creates a key pair generator on top of a prime generator and the modular helpers.
// settings.MaxAttempts also caps the public exponent search (0 = unbounded).
func NewRSAKeyGenerator(primes cryptoDomain.PrimeGenerator, arithmetic cryptoDomain.ModularArithmetic, random *rand.Rand, settings *config.RSASettings, logger logger.Logger) (cryptoDomain.KeyPairGenerator, error) {
	if primes == nil || arithmetic == nil {
		return nil, errors.New("prime generator and modular arithmetic cannot be nil")
	}
	if random == nil {
		return nil, errors.New("random source cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid RSA settings: %w", err)
	}

	return &rsaKeyGenerator{
		primes:      primes,
		arithmetic:  arithmetic,
		random:      random,
		maxAttempts: settings.MaxAttempts,
		logger:      logger,
	}, nil
}

// GenerateKeys generates an RSA key pair from two keySizeBits-bit primes.
// keySizeBits should be at least MinKeySizeBits; smaller values are a caller precondition violation.
func (g *rsaKeyGenerator) GenerateKeys(keySizeBits uint) (*cryptoDomain.PublicKey, *cryptoDomain.PrivateKey, error) {
	publicKey, privateKey, _, _, err := g.GenerateKeysWithPrimes(keySizeBits)
	if err != nil {
		return nil, nil, err
	}
	return publicKey, privateKey, nil
}

// GenerateKeysWithPrimes generates an RSA key pair and also returns the primes p and q.
//
// p = q is not prevented; at realistic bit lengths it is astronomically unlikely.
// The public exponent is drawn from [2^(keySizeBits-1), 2^keySizeBits), i.e. scoped to the
// key size rather than to phi.
func (g *rsaKeyGenerator) GenerateKeysWithPrimes(keySizeBits uint) (*cryptoDomain.PublicKey, *cryptoDomain.PrivateKey, *big.Int, *big.Int, error) {
	p, err := g.primes.Generate(keySizeBits)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to generate prime p: %w", err)
	}
	q, err := g.primes.Generate(keySizeBits)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to generate prime q: %w", err)
	}
	if p.Cmp(q) == 0 {
		g.logger.Warn("generated primes p and q are equal; n is a perfect square")
	}

	n := new(big.Int).Mul(p, q)

	// Euler's totient: phi = (p-1)(q-1)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, bigOne),
		new(big.Int).Sub(q, bigOne),
	)

	e, err := g.searchPublicExponent(keySizeBits, phi)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if e.Cmp(phi) >= 0 {
		g.logger.Warn("public exponent ", e, " is not below phi ", phi)
	}

	d, err := g.arithmetic.ModInverse(e, phi)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	publicKey := &cryptoDomain.PublicKey{KeySizeBits: keySizeBits, N: n, E: e}
	privateKey := &cryptoDomain.PrivateKey{KeySizeBits: keySizeBits, N: new(big.Int).Set(n), D: d}

	g.logger.Info("Generated RSA key pair with ", keySizeBits, "-bit primes")
	return publicKey, privateKey, p, q, nil
}

// searchPublicExponent draws e uniformly from [2^(keySizeBits-1), 2^keySizeBits) until gcd(e, phi) = 1
func (g *rsaKeyGenerator) searchPublicExponent(keySizeBits uint, phi *big.Int) (*big.Int, error) {
	lower := new(big.Int).Lsh(bigOne, keySizeBits-1)

	for attempt := 1; g.maxAttempts == 0 || attempt <= g.maxAttempts; attempt++ {
		e := new(big.Int).Rand(g.random, lower)
		e.Add(e, lower)

		divisor, err := g.arithmetic.GCD(e, phi)
		if err != nil {
			return nil, fmt.Errorf("failed to test exponent candidate: %w", err)
		}
		if divisor.Cmp(bigOne) == 0 {
			g.logger.Debug("public exponent found after ", attempt, " attempts")
			return e, nil
		}
	}

	return nil, fmt.Errorf("%w: no exponent coprime to phi within %d attempts", cryptoDomain.ErrGenerationTimeout, g.maxAttempts)
}
