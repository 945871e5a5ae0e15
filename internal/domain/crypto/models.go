package crypto

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PublicKey holds the key size, modulus n and public exponent e
type PublicKey struct {
	KeySizeBits uint     `validate:"required,min=9"`
	N           *big.Int `validate:"required"`
	E           *big.Int `validate:"required"`
}

// PrivateKey holds the key size, modulus n and private exponent d
type PrivateKey struct {
	KeySizeBits uint     `validate:"required,min=9"`
	N           *big.Int `validate:"required"`
	D           *big.Int `validate:"required"`
}

// EncryptedMessage is an ordered sequence of ciphertext integers, one per plaintext byte
type EncryptedMessage []*big.Int

// Validate for validating PublicKey struct
func (k *PublicKey) Validate() error {
	if err := validateStruct(k); err != nil {
		return err
	}
	if k.E.Cmp(big.NewInt(1)) <= 0 || k.E.Cmp(k.N) >= 0 {
		return fmt.Errorf("%w: public exponent must satisfy 1 < e < n", ErrInvalidInput)
	}
	return nil
}

// Validate for validating PrivateKey struct
func (k *PrivateKey) Validate() error {
	if err := validateStruct(k); err != nil {
		return err
	}
	if k.D.Sign() <= 0 || k.D.Cmp(k.N) >= 0 {
		return fmt.Errorf("%w: private exponent must satisfy 0 < d < n", ErrInvalidInput)
	}
	return nil
}

func (k *PublicKey) String() string {
	return fmt.Sprintf("PublicKey(keySize=%d, n=%s, e=%s)", k.KeySizeBits, k.N, k.E)
}

func (k *PrivateKey) String() string {
	return fmt.Sprintf("PrivateKey(keySize=%d, n=%s, d=%s)", k.KeySizeBits, k.N, k.D)
}

// String renders the cipher as comma separated decimal integers
func (m EncryptedMessage) String() string {
	parts := make([]string, len(m))
	for i, c := range m {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// ParseEncryptedMessage parses comma separated decimal integers as produced by EncryptedMessage.String
func ParseEncryptedMessage(s string) (EncryptedMessage, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EncryptedMessage{}, nil
	}

	fields := strings.Split(s, ",")
	msg := make(EncryptedMessage, 0, len(fields))
	for i, field := range fields {
		c, ok := new(big.Int).SetString(strings.TrimSpace(field), 10)
		if !ok || c.Sign() < 0 {
			return nil, fmt.Errorf("%w: element %d is not a non-negative integer: %q", ErrInvalidInput, i, field)
		}
		msg = append(msg, c)
	}
	return msg, nil
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
