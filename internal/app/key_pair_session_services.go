package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MGTheTrain/mini-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mini-rsa/internal/domain/keys"
	"github.com/MGTheTrain/mini-rsa/internal/pkg/logger"

	"github.com/google/uuid"
)

type keyPairSession struct {
	meta       *keys.KeyPairMeta
	publicKey  *crypto.PublicKey
	privateKey *crypto.PrivateKey
}

// keyPairSessionService implements the KeyPairSessionService interface
type keyPairSessionService struct {
	// guards the processors too, since they share a non thread-safe random source
	mu        sync.RWMutex
	sessions  map[string]*keyPairSession
	keyPairs  crypto.KeyPairGenerator
	transform crypto.RSATransform
	logger    logger.Logger
}

// NewKeyPairSessionService creates a new keyPairSessionService instance
func NewKeyPairSessionService(keyPairs crypto.KeyPairGenerator, transform crypto.RSATransform, logger logger.Logger) (keys.KeyPairSessionService, error) {
	if keyPairs == nil || transform == nil {
		return nil, errors.New("key pair generator and transform cannot be nil")
	}
	return &keyPairSessionService{
		sessions:  make(map[string]*keyPairSession),
		keyPairs:  keyPairs,
		transform: transform,
		logger:    logger,
	}, nil
}

// Generate creates a new key pair and registers it under a fresh ID
func (s *keyPairSessionService) Generate(ctx context.Context, keySizeBits uint) (*keys.KeyPairMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	publicKey, privateKey, err := s.keyPairs.GenerateKeys(keySizeBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	meta := &keys.KeyPairMeta{
		ID:              uuid.New().String(),
		KeySizeBits:     keySizeBits,
		DateTimeCreated: time.Now(),
	}
	s.sessions[meta.ID] = &keyPairSession{
		meta:       meta,
		publicKey:  publicKey,
		privateKey: privateKey,
	}

	s.logger.Info("Registered key pair ", meta.ID)
	return meta, nil
}

// List returns the metadata of all key pairs ordered by creation time
func (s *keyPairSessionService) List(ctx context.Context) ([]*keys.KeyPairMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	metas := make([]*keys.KeyPairMeta, 0, len(s.sessions))
	for _, session := range s.sessions {
		meta := *session.meta
		metas = append(metas, &meta)
	}
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].DateTimeCreated.Before(metas[j].DateTimeCreated)
	})
	return metas, nil
}

// GetPublicKey returns the public half of a key pair
func (s *keyPairSessionService) GetPublicKey(ctx context.Context, keyPairID string) (*crypto.PublicKey, error) {
	session, err := s.lookup(ctx, keyPairID)
	if err != nil {
		return nil, err
	}
	return session.publicKey, nil
}

// Encrypt encrypts message with the public key of the given key pair
func (s *keyPairSessionService) Encrypt(ctx context.Context, keyPairID, message string) (crypto.EncryptedMessage, error) {
	session, err := s.lookup(ctx, keyPairID)
	if err != nil {
		return nil, err
	}

	encrypted, err := s.transform.Encrypt(message, session.publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt with key pair %s: %w", keyPairID, err)
	}
	return encrypted, nil
}

// Decrypt decrypts cipher with the private key of the given key pair
func (s *keyPairSessionService) Decrypt(ctx context.Context, keyPairID string, cipher crypto.EncryptedMessage) (string, error) {
	session, err := s.lookup(ctx, keyPairID)
	if err != nil {
		return "", err
	}

	decrypted, err := s.transform.Decrypt(cipher, session.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt with key pair %s: %w", keyPairID, err)
	}
	return decrypted, nil
}

// Discard forgets a key pair
func (s *keyPairSessionService) Discard(ctx context.Context, keyPairID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[keyPairID]; !ok {
		return fmt.Errorf("%w: %s", keys.ErrKeyPairNotFound, keyPairID)
	}
	delete(s.sessions, keyPairID)

	s.logger.Info("Discarded key pair ", keyPairID)
	return nil
}

func (s *keyPairSessionService) lookup(ctx context.Context, keyPairID string) (*keyPairSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[keyPairID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", keys.ErrKeyPairNotFound, keyPairID)
	}
	return session, nil
}
