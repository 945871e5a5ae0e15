package cryptography

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"

	cryptoDomain "github.com/MGTheTrain/mini-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mini-rsa/internal/pkg/logger"
)

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// millerRabinOracle implements the PrimalityOracle interface
type millerRabinOracle struct {
	random *rand.Rand
	logger logger.Logger
}

// NewMillerRabinOracle creates a primality oracle drawing its witnesses from random
func NewMillerRabinOracle(random *rand.Rand, logger logger.Logger) (cryptoDomain.PrimalityOracle, error) {
	if random == nil {
		return nil, errors.New("random source cannot be nil")
	}
	return &millerRabinOracle{
		random: random,
		logger: logger,
	}, nil
}

// IsProbablePrime reports whether n is probably prime after rounds Miller-Rabin rounds.
// rounds < 1 falls back to DefaultRounds.
func (o *millerRabinOracle) IsProbablePrime(n *big.Int, rounds int) bool {
	if n == nil || n.Cmp(bigTwo) < 0 {
		return false
	}
	// 2 and 3 leave no witness in [2, n-2]
	if n.Cmp(bigThree) <= 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}
	if rounds < 1 {
		rounds = cryptoDomain.DefaultRounds
	}

	// n-1 = s * 2^t with s odd
	nMinusOne := new(big.Int).Sub(n, bigOne)
	s := new(big.Int).Set(nMinusOne)
	t := 0
	for s.Bit(0) == 0 {
		s.Rsh(s, 1)
		t++
	}

	// witnesses are uniform in [2, n-2]
	span := new(big.Int).Sub(n, bigThree)
	a := new(big.Int)
	v := new(big.Int)

	for round := 0; round < rounds; round++ {
		a.Rand(o.random, span)
		a.Add(a, bigTwo)

		v.Exp(a, s, n)
		if v.Cmp(bigOne) == 0 {
			continue
		}

		for i := 0; v.Cmp(nMinusOne) != 0; i++ {
			if i == t-1 {
				o.logger.Debug("witness ", a, " proves ", n, " composite")
				return false
			}
			v.Mul(v, v)
			v.Mod(v, n)
		}
	}

	return true
}

// CheckPrime validates its input before delegating to IsProbablePrime.
func (o *millerRabinOracle) CheckPrime(n *big.Int, rounds int) (bool, error) {
	if n == nil {
		return false, fmt.Errorf("%w: candidate cannot be nil", cryptoDomain.ErrInvalidInput)
	}
	if n.Cmp(bigTwo) < 0 {
		return false, fmt.Errorf("%w: primality is undefined for %s < 2", cryptoDomain.ErrInvalidInput, n)
	}
	if rounds < 1 {
		return false, fmt.Errorf("%w: rounds must be at least 1, got %d", cryptoDomain.ErrInvalidInput, rounds)
	}
	return o.IsProbablePrime(n, rounds), nil
}
