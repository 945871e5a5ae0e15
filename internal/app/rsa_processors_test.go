//go:build unit
// +build unit

package app

import (
	"math/big"
	"testing"

	"github.com/MGTheTrain/mini-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mini-rsa/internal/pkg/config"
	"github.com/MGTheTrain/mini-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRSASettings() *config.RSASettings {
	return &config.RSASettings{
		Rounds:      crypto.DefaultRounds,
		KeySizeBits: 32,
		Encoding:    crypto.EncodingUTF8,
		Seed:        testutil.TestSeed,
	}
}

func TestNewRSAProcessors(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	processors, err := NewRSAProcessors(testRSASettings(), logger)
	require.NoError(t, err)
	require.NotNil(t, processors)

	assert.True(t, processors.Oracle.IsProbablePrime(big.NewInt(7919), crypto.DefaultRounds))

	prime, err := processors.Primes.Generate(24)
	require.NoError(t, err)
	assert.Equal(t, 24, prime.BitLen())

	gcd, err := processors.Arithmetic.GCD(big.NewInt(48), big.NewInt(18))
	require.NoError(t, err)
	assert.Equal(t, int64(6), gcd.Int64())

	pub, priv, err := processors.KeyPairs.GenerateKeys(32)
	require.NoError(t, err)

	cipher, err := processors.Transform.Encrypt("wired", pub)
	require.NoError(t, err)
	plain, err := processors.Transform.Decrypt(cipher, priv)
	require.NoError(t, err)
	assert.Equal(t, "wired", plain)
}

func TestNewRSAProcessorsSameSeedSameKeys(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	first, err := NewRSAProcessors(testRSASettings(), logger)
	require.NoError(t, err)
	second, err := NewRSAProcessors(testRSASettings(), logger)
	require.NoError(t, err)

	pub1, _, err := first.KeyPairs.GenerateKeys(32)
	require.NoError(t, err)
	pub2, _, err := second.KeyPairs.GenerateKeys(32)
	require.NoError(t, err)

	assert.Equal(t, 0, pub1.N.Cmp(pub2.N))
	assert.Equal(t, 0, pub1.E.Cmp(pub2.E))
}

func TestNewRSAProcessorsInvalidSettings(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	settings := testRSASettings()
	settings.Rounds = 0

	_, err := NewRSAProcessors(settings, logger)
	assert.Error(t, err)
}
