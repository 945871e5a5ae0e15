package keys

import (
	"context"

	"github.com/MGTheTrain/mini-rsa/internal/domain/crypto"
)

// KeyPairSessionService defines methods for generating and using RSA key pairs held in memory
// for the lifetime of the process. Key pairs are never persisted.
type KeyPairSessionService interface {
	// Generate creates a new key pair and registers it under a fresh ID.
	// It returns the KeyPairMeta and any error encountered during generation.
	Generate(ctx context.Context, keySizeBits uint) (*KeyPairMeta, error)

	// List returns the metadata of all key pairs held by the session.
	List(ctx context.Context) ([]*KeyPairMeta, error)

	// GetPublicKey returns the public half of a key pair.
	GetPublicKey(ctx context.Context, keyPairID string) (*crypto.PublicKey, error)

	// Encrypt encrypts message with the public key of the given key pair.
	Encrypt(ctx context.Context, keyPairID, message string) (crypto.EncryptedMessage, error)

	// Decrypt decrypts cipher with the private key of the given key pair.
	Decrypt(ctx context.Context, keyPairID string, cipher crypto.EncryptedMessage) (string, error)

	// Discard forgets a key pair. Subsequent calls with its ID return ErrKeyPairNotFound.
	Discard(ctx context.Context, keyPairID string) error
}
