package app

import (
	"fmt"

	"github.com/MGTheTrain/mini-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mini-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/mini-rsa/internal/pkg/config"
	"github.com/MGTheTrain/mini-rsa/internal/pkg/logger"
)

// RSAProcessors holds one wired processor graph sharing a single random source.
// The graph is not safe for concurrent use.
type RSAProcessors struct {
	Oracle     crypto.PrimalityOracle
	Primes     crypto.PrimeGenerator
	Arithmetic crypto.ModularArithmetic
	KeyPairs   crypto.KeyPairGenerator
	Transform  crypto.RSATransform
}

// NewRSAProcessors wires the primality oracle, prime generator, modular helpers,
// key pair generator and transform from settings.
func NewRSAProcessors(settings *config.RSASettings, logger logger.Logger) (*RSAProcessors, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid RSA settings: %w", err)
	}

	random := cryptography.NewRandomSource(settings.Seed)

	oracle, err := cryptography.NewMillerRabinOracle(random, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create primality oracle: %w", err)
	}

	primes, err := cryptography.NewPrimeGenerator(oracle, random, settings, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime generator: %w", err)
	}

	arithmetic, err := cryptography.NewModularArithmetic(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create modular arithmetic: %w", err)
	}

	keyPairs, err := cryptography.NewRSAKeyGenerator(primes, arithmetic, random, settings, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA key generator: %w", err)
	}

	transform, err := cryptography.NewRSAProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &RSAProcessors{
		Oracle:     oracle,
		Primes:     primes,
		Arithmetic: arithmetic,
		KeyPairs:   keyPairs,
		Transform:  transform,
	}, nil
}
