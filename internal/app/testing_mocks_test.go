//go:build unit
// +build unit

package app

import (
	"math/big"

	"github.com/MGTheTrain/mini-rsa/internal/domain/crypto"

	"github.com/stretchr/testify/mock"
)

// mockKeyPairGenerator is a mock implementation of crypto.KeyPairGenerator
type mockKeyPairGenerator struct {
	mock.Mock
}

func (m *mockKeyPairGenerator) GenerateKeys(keySizeBits uint) (*crypto.PublicKey, *crypto.PrivateKey, error) {
	args := m.Called(keySizeBits)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*crypto.PublicKey), args.Get(1).(*crypto.PrivateKey), args.Error(2)
}

func (m *mockKeyPairGenerator) GenerateKeysWithPrimes(keySizeBits uint) (*crypto.PublicKey, *crypto.PrivateKey, *big.Int, *big.Int, error) {
	args := m.Called(keySizeBits)
	if args.Get(0) == nil {
		return nil, nil, nil, nil, args.Error(4)
	}
	return args.Get(0).(*crypto.PublicKey), args.Get(1).(*crypto.PrivateKey), args.Get(2).(*big.Int), args.Get(3).(*big.Int), args.Error(4)
}

// mockRSATransform is a mock implementation of crypto.RSATransform
type mockRSATransform struct {
	mock.Mock
}

func (m *mockRSATransform) Encrypt(message string, publicKey *crypto.PublicKey) (crypto.EncryptedMessage, error) {
	args := m.Called(message, publicKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(crypto.EncryptedMessage), args.Error(1)
}

func (m *mockRSATransform) Decrypt(cipher crypto.EncryptedMessage, privateKey *crypto.PrivateKey) (string, error) {
	args := m.Called(cipher, privateKey)
	return args.String(0), args.Error(1)
}
