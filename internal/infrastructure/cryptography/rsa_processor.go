package cryptography

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	cryptoDomain "github.com/MGTheTrain/mini-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mini-rsa/internal/pkg/logger"
)

// rsaProcessor implements the RSATransform interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoDomain.RSATransform, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// Encrypt raises every UTF-8 byte of message to e modulo n.
// NOTE: each byte is encrypted on its own without padding, so equal bytes yield equal ciphertexts.
// Precondition: n > 255, otherwise distinct bytes collide and decryption cannot recover them.
func (r *rsaProcessor) Encrypt(message string, publicKey *cryptoDomain.PublicKey) (cryptoDomain.EncryptedMessage, error) {
	if publicKey == nil || publicKey.N == nil || publicKey.E == nil {
		return nil, fmt.Errorf("%w: public key cannot be nil", cryptoDomain.ErrInvalidInput)
	}
	if publicKey.N.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", cryptoDomain.ErrInvalidInput)
	}
	if !utf8.ValidString(message) {
		return nil, fmt.Errorf("%w: message is not valid %s text", cryptoDomain.ErrInvalidInput, cryptoDomain.EncodingUTF8)
	}

	messageBytes := []byte(message)
	encrypted := make(cryptoDomain.EncryptedMessage, 0, len(messageBytes))
	for _, b := range messageBytes {
		c := new(big.Int).SetUint64(uint64(b))
		encrypted = append(encrypted, c.Exp(c, publicKey.E, publicKey.N))
	}

	r.logger.Debug("RSA cipher: ", encrypted.String())
	r.logger.Info("RSA encryption succeeded")
	return encrypted, nil
}

// Decrypt raises every element to d modulo n, keeps the low byte of each result and decodes the bytes as UTF-8.
func (r *rsaProcessor) Decrypt(cipher cryptoDomain.EncryptedMessage, privateKey *cryptoDomain.PrivateKey) (string, error) {
	if privateKey == nil || privateKey.N == nil || privateKey.D == nil {
		return "", fmt.Errorf("%w: private key cannot be nil", cryptoDomain.ErrInvalidInput)
	}
	if privateKey.N.Sign() <= 0 {
		return "", fmt.Errorf("%w: modulus must be positive", cryptoDomain.ErrInvalidInput)
	}

	decrypted := make([]byte, 0, len(cipher))
	m := new(big.Int)
	for i, c := range cipher {
		if c == nil || c.Sign() < 0 {
			return "", fmt.Errorf("%w: cipher element %d must be a non-negative integer", cryptoDomain.ErrInvalidInput, i)
		}
		m.Exp(c, privateKey.D, privateKey.N)
		decrypted = append(decrypted, byte(m.Uint64()))
	}

	r.logger.Debug("RSA plaintext bytes: ", decrypted)
	if !utf8.Valid(decrypted) {
		return "", fmt.Errorf("%w: decrypted bytes are not valid %s text", cryptoDomain.ErrDecoding, cryptoDomain.EncodingUTF8)
	}

	r.logger.Info("RSA decryption succeeded")
	return string(decrypted), nil
}
