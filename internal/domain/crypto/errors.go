package crypto

import "errors"

// ErrInvalidInput is returned for arguments outside an operation's domain, e.g. n < 2 passed to the primality test.
var ErrInvalidInput = errors.New("invalid input")

// ErrArithmetic is returned when a modular inverse does not exist or gcd is called with a zero divisor.
var ErrArithmetic = errors.New("arithmetic error")

// ErrDecoding is returned when decrypted bytes are not valid text under the configured encoding.
var ErrDecoding = errors.New("decoding error")

// ErrGenerationTimeout is returned when a bounded resampling loop exhausts its attempt budget.
var ErrGenerationTimeout = errors.New("generation timeout")
