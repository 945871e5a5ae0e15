package cryptography

import (
	"fmt"
	"math/big"

	cryptoDomain "github.com/MGTheTrain/mini-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mini-rsa/internal/pkg/logger"
)

// maxFactorBits bounds PrimeFactors to inputs trial division finishes on quickly
const maxFactorBits = 64

// modularArithmetic implements the ModularArithmetic interface
type modularArithmetic struct {
	logger logger.Logger
}

// NewModularArithmetic creates the gcd / modular inverse helpers
func NewModularArithmetic(logger logger.Logger) (cryptoDomain.ModularArithmetic, error) {
	return &modularArithmetic{
		logger: logger,
	}, nil
}

// GCD computes gcd(a, b) with the Euclidean algorithm. Inputs are not modified.
func (m *modularArithmetic) GCD(a, b *big.Int) (*big.Int, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: gcd operands cannot be nil", cryptoDomain.ErrInvalidInput)
	}
	if b.Sign() == 0 {
		return nil, fmt.Errorf("%w: gcd divisor must be non-zero", cryptoDomain.ErrArithmetic)
	}

	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	r := new(big.Int).Mod(x, y)
	for r.Sign() != 0 {
		x.Set(y)
		y.Set(r)
		r.Mod(x, y)
	}

	return y, nil
}

// ModInverse computes d with e*d = 1 (mod phi) using the iterative extended Euclidean algorithm.
// The result lies in [0, phi).
func (m *modularArithmetic) ModInverse(e, phi *big.Int) (*big.Int, error) {
	if e == nil || phi == nil {
		return nil, fmt.Errorf("%w: modular inverse operands cannot be nil", cryptoDomain.ErrInvalidInput)
	}
	// every number is congruent to 0 modulo 1
	if phi.Cmp(bigOne) <= 0 {
		return nil, fmt.Errorf("%w: modulus must be greater than 1, got %s", cryptoDomain.ErrArithmetic, phi)
	}

	// invariant: oldS*e = oldR (mod phi) and s*e = r (mod phi)
	oldR := new(big.Int).Mod(e, phi)
	r := new(big.Int).Set(phi)
	oldS := big.NewInt(1)
	s := big.NewInt(0)

	quotient := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		quotient.Quo(oldR, r)

		tmp.Mul(quotient, r)
		tmp.Sub(oldR, tmp)
		oldR.Set(r)
		r.Set(tmp)

		tmp.Mul(quotient, s)
		tmp.Sub(oldS, tmp)
		oldS.Set(s)
		s.Set(tmp)
	}

	if oldR.Cmp(bigOne) != 0 {
		return nil, fmt.Errorf("%w: %s has no inverse modulo %s (gcd %s)", cryptoDomain.ErrArithmetic, e, phi, oldR)
	}

	return oldS.Mod(oldS, phi), nil
}

// PrimeFactors factorises n by trial division: factors of 2 first, then odd divisors up to sqrt(n).
func (m *modularArithmetic) PrimeFactors(n *big.Int) ([]*big.Int, error) {
	if n == nil || n.Cmp(bigTwo) < 0 {
		return nil, fmt.Errorf("%w: factorisation requires n >= 2", cryptoDomain.ErrInvalidInput)
	}
	if n.BitLen() > maxFactorBits {
		return nil, fmt.Errorf("%w: %d-bit input is too large for trial division", cryptoDomain.ErrInvalidInput, n.BitLen())
	}

	rest := n.Uint64()
	var factors []*big.Int

	for rest%2 == 0 {
		factors = append(factors, big.NewInt(2))
		rest /= 2
	}
	for i := uint64(3); i <= rest/i; i += 2 {
		for rest%i == 0 {
			factors = append(factors, new(big.Int).SetUint64(i))
			rest /= i
		}
	}
	if rest > 1 {
		factors = append(factors, new(big.Int).SetUint64(rest))
	}

	m.logger.Debug("factorised ", n, " into ", len(factors), " primes")
	return factors, nil
}
