//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"math/rand"
	"testing"

	cryptoDomain "github.com/MGTheTrain/mini-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mini-rsa/internal/pkg/config"
	"github.com/MGTheTrain/mini-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// testProcessors bundles a fully wired processor graph sharing one seeded source
type testProcessors struct {
	random     *rand.Rand
	oracle     cryptoDomain.PrimalityOracle
	primes     cryptoDomain.PrimeGenerator
	arithmetic cryptoDomain.ModularArithmetic
	keys       cryptoDomain.KeyPairGenerator
	transform  cryptoDomain.RSATransform
}

func testSettings() *config.RSASettings {
	return &config.RSASettings{
		Rounds:      cryptoDomain.DefaultRounds,
		KeySizeBits: cryptoDomain.DefaultKeySizeBits,
		Encoding:    cryptoDomain.EncodingUTF8,
	}
}

func setupProcessors(t *testing.T, random *rand.Rand) *testProcessors {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	settings := testSettings()

	oracle, err := NewMillerRabinOracle(random, logger)
	require.NoError(t, err)
	primes, err := NewPrimeGenerator(oracle, random, settings, logger)
	require.NoError(t, err)
	arithmetic, err := NewModularArithmetic(logger)
	require.NoError(t, err)
	keys, err := NewRSAKeyGenerator(primes, arithmetic, random, settings, logger)
	require.NoError(t, err)
	transform, err := NewRSAProcessor(logger)
	require.NoError(t, err)

	return &testProcessors{
		random:     random,
		oracle:     oracle,
		primes:     primes,
		arithmetic: arithmetic,
		keys:       keys,
		transform:  transform,
	}
}

// fixedPrimeGenerator hands out a predefined sequence of primes
type fixedPrimeGenerator struct {
	primes []*big.Int
	calls  int
	err    error
}

func (g *fixedPrimeGenerator) Generate(_ uint) (*big.Int, error) {
	if g.err != nil {
		return nil, g.err
	}
	p := g.primes[g.calls%len(g.primes)]
	g.calls++
	return new(big.Int).Set(p), nil
}

// rejectingOracle never accepts a candidate and counts how often it was asked
type rejectingOracle struct {
	calls int
}

func (o *rejectingOracle) IsProbablePrime(_ *big.Int, _ int) bool {
	o.calls++
	return false
}

func (o *rejectingOracle) CheckPrime(_ *big.Int, _ int) (bool, error) {
	o.calls++
	return false, nil
}
