package validators

import (
	"github.com/MGTheTrain/mini-rsa/internal/domain/crypto"

	"github.com/go-playground/validator/v10"
)

// MaxKeySizeBits bounds the prime size accepted from configuration
const MaxKeySizeBits = 8192

// MaxRounds bounds the Miller-Rabin witness count accepted from configuration
const MaxRounds = 256

// KeySizeValidation validates the per-prime key size in bits.
// The lower bound guarantees n = p*q exceeds every byte value.
func KeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Uint()
	return keySize >= crypto.MinKeySizeBits && keySize <= MaxKeySizeBits
}

// RoundsValidation validates the Miller-Rabin witness round count.
func RoundsValidation(fl validator.FieldLevel) bool {
	rounds := fl.Field().Int()
	return rounds >= 1 && rounds <= MaxRounds
}

// New returns a validator with the custom RSA tags "keysize" and "rounds" registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("keysize", KeySizeValidation); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("rounds", RoundsValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
