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

// primeGenerator implements the PrimeGenerator interface
type primeGenerator struct {
	oracle      cryptoDomain.PrimalityOracle
	random      *rand.Rand
	rounds      int
	maxAttempts int
	logger      logger.Logger
}

// NewPrimeGenerator creates a prime generator that resamples until oracle accepts a candidate.
// settings.Rounds is handed to the oracle and settings.MaxAttempts caps the search (0 = unbounded).
func NewPrimeGenerator(oracle cryptoDomain.PrimalityOracle, random *rand.Rand, settings *config.RSASettings, logger logger.Logger) (cryptoDomain.PrimeGenerator, error) {
	if oracle == nil {
		return nil, errors.New("primality oracle cannot be nil")
	}
	if random == nil {
		return nil, errors.New("random source cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid RSA settings: %w", err)
	}

	return &primeGenerator{
		oracle:      oracle,
		random:      random,
		rounds:      settings.Rounds,
		maxAttempts: settings.MaxAttempts,
		logger:      logger,
	}, nil
}

// Generate samples odd integers in [2^(bitLength-1), 2^bitLength) until one is probably prime.
// Termination is probabilistic: by the prime number theorem roughly one in ln(2^bitLength)/2
// odd candidates is prime.
func (g *primeGenerator) Generate(bitLength uint) (*big.Int, error) {
	if bitLength < 2 {
		return nil, fmt.Errorf("%w: bit length must be at least 2, got %d", cryptoDomain.ErrInvalidInput, bitLength)
	}

	lower := new(big.Int).Lsh(bigOne, bitLength-1)

	for attempt := 1; g.maxAttempts == 0 || attempt <= g.maxAttempts; attempt++ {
		candidate := new(big.Int).Rand(g.random, lower)
		candidate.Add(candidate, lower)
		candidate.SetBit(candidate, 0, 1)

		if g.oracle.IsProbablePrime(candidate, g.rounds) {
			g.logger.Debug("found ", bitLength, "-bit prime after ", attempt, " attempts")
			return candidate, nil
		}
	}

	return nil, fmt.Errorf("%w: no %d-bit prime within %d attempts", cryptoDomain.ErrGenerationTimeout, bitLength, g.maxAttempts)
}
