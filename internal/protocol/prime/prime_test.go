package prime_test

import (
	"bytes"
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pairwise/internal/crypto"
	"pairwise/internal/domain"
	"pairwise/internal/protocol/prime"
)

// neverPrime rejects every candidate and counts calls.
type neverPrime struct{ calls int }

func (n *neverPrime) ProbablyPrime(*big.Int, int) bool {
	n.calls++
	return false
}

// roundsSpy records the round count it is asked for.
type roundsSpy struct{ rounds []int }

func (r *roundsSpy) ProbablyPrime(n *big.Int, rounds int) bool {
	r.rounds = append(r.rounds, rounds)
	return n.ProbablyPrime(rounds)
}

func TestCandidate_ForcesTopAndBottomBits(t *testing.T) {
	seed := make([]byte, 64)
	c, err := prime.Candidate(seed)
	require.NoError(t, err)

	assert.Equal(t, 512, c.BitLen())
	assert.Equal(t, uint(1), c.Bit(0))
	assert.Equal(t, make([]byte, 64), seed, "seed must not be modified")
}

func TestSearch_SmallSeed(t *testing.T) {
	// 0x10 -> 0x91 = 145 = 5·29, 147 = 3·7², 149 is prime.
	spy := &roundsSpy{}
	res, err := prime.Search(context.Background(), []byte{0x10}, spy, prime.Options{})
	require.NoError(t, err)

	assert.Equal(t, int64(149), res.Prime.Int64())
	assert.Equal(t, 3, res.Tests)
	assert.Equal(t, []int{prime.Rounds, prime.Rounds, prime.Rounds}, spy.rounds)
}

func TestSearch_FirstCandidatePrimeCountsOne(t *testing.T) {
	// 0x83 = 131 is prime and already has both bits set.
	res, err := prime.Search(context.Background(), []byte{0x83}, crypto.BigPrimality{}, prime.Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(131), res.Prime.Int64())
	assert.Equal(t, 1, res.Tests)
}

func TestSearch_PrimeShape(t *testing.T) {
	seed := bytes.Repeat([]byte{0x35}, 64)
	res, err := prime.Search(context.Background(), seed, crypto.BigPrimality{}, prime.Options{})
	require.NoError(t, err)

	assert.Equal(t, 512, res.Prime.BitLen())
	assert.Equal(t, uint(1), res.Prime.Bit(0))
	assert.True(t, res.Prime.ProbablyPrime(prime.Rounds))
	assert.GreaterOrEqual(t, res.Tests, 1)
}

func TestSearch_CapReturnsExhausted(t *testing.T) {
	np := &neverPrime{}
	_, err := prime.Search(context.Background(), []byte{0x10, 0x00}, np, prime.Options{MaxTests: 5})
	require.ErrorIs(t, err, domain.ErrPrimeSearchExhausted)
	assert.Equal(t, 5, np.calls)
}

func TestSearch_EmptySeed(t *testing.T) {
	_, err := prime.Search(context.Background(), nil, crypto.BigPrimality{}, prime.Options{})
	assert.ErrorIs(t, err, domain.ErrInvalidLength)
}

func TestSearch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := prime.Search(ctx, []byte{0x10}, &neverPrime{}, prime.Options{MaxTests: -1})
	assert.ErrorIs(t, err, context.Canceled)
}
