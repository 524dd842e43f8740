package prime

import (
	"context"
	"fmt"
	"math/big"

	"pairwise/internal/domain"
)

const (
	// Rounds is the number of compositeness tests per candidate.
	Rounds = 64
	// DefaultMaxTests bounds the search when Options.MaxTests is unset.
	DefaultMaxTests = 1 << 16
)

var two = big.NewInt(2)

// Options tunes the search.
type Options struct {
	// MaxTests caps the number of candidates tested. Zero means
	// DefaultMaxTests; a negative value disables the cap.
	MaxTests int
}

func (o Options) maxTests() int {
	if o.MaxTests == 0 {
		return DefaultMaxTests
	}
	return o.MaxTests
}

// Result is an accepted prime and the number of candidates tested, counting
// the accepted one.
type Result struct {
	Prime *big.Int
	Tests int
}

// Candidate returns seed as a big-endian integer with its most significant
// and least significant bits set. seed is not modified.
func Candidate(seed []byte) (*big.Int, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: empty prime seed", domain.ErrInvalidLength)
	}
	b := make([]byte, len(seed))
	copy(b, seed)
	b[0] |= 0x80
	b[len(b)-1] |= 0x01
	return new(big.Int).SetBytes(b), nil
}

// Search returns the first probable prime at or above Candidate(seed).
func Search(ctx context.Context, seed []byte, tester domain.Primality, opts Options) (Result, error) {
	c, err := Candidate(seed)
	if err != nil {
		return Result{}, err
	}
	limit := opts.maxTests()

	for tests := 1; ; tests++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if tester.ProbablyPrime(c, Rounds) {
			return Result{Prime: c, Tests: tests}, nil
		}
		if limit > 0 && tests >= limit {
			return Result{}, fmt.Errorf("%w after %d candidates", domain.ErrPrimeSearchExhausted, tests)
		}
		c.Add(c, two)
	}
}
