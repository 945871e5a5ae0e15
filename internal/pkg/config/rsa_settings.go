package config

import (
	"fmt"

	"github.com/MGTheTrain/mini-rsa/internal/pkg/validators"
)

// RSASettings holds the tunables of the RSA numeric core
type RSASettings struct {
	// Rounds is the Miller-Rabin witness count; false-positive probability is at most 4^-Rounds
	Rounds int `mapstructure:"rounds" validate:"rounds"`
	// KeySizeBits is the bit length of each prime p and q
	KeySizeBits uint `mapstructure:"key_size_bits" validate:"keysize"`
	// Encoding is the text encoding for byte conversion; only utf-8 is supported
	Encoding string `mapstructure:"encoding" validate:"required,oneof=utf-8"`
	// MaxAttempts caps every resampling loop; 0 keeps the search unbounded
	MaxAttempts int `mapstructure:"max_attempts" validate:"gte=0"`
	// Seed seeds the random source; 0 seeds from the clock
	Seed int64 `mapstructure:"seed"`
}

// Validate checks that all fields in RSASettings are valid
func (s *RSASettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RSASettings: %w", err)
	}

	return nil
}
