package rsakey

import (
	"context"
	"fmt"
	"math/big"

	"pairwise/internal/domain"
	"pairwise/internal/protocol/prime"
	"pairwise/internal/protocol/stream"
	"pairwise/internal/util/memzero"
)

// MinModulusBits is the smallest modulus Build accepts.
const MinModulusBits = 1024

var one = big.NewInt(1)

// Options tunes the prime searches.
type Options struct {
	Prime prime.Options
}

// Result is the derived material plus how many candidates each prime search tested.
type Result struct {
	Material domain.RSAKeyMaterial
	PTests   int
	QTests   int
}

// Tests returns the total number of prime candidates tested.
func (r Result) Tests() int { return r.PTests + r.QTests }

// Build derives RSA key material for (masterSecret, peerID). modulusBits 0
// selects domain.DefaultModulusBits; otherwise it must be at least
// MinModulusBits and a multiple of 16, else ErrInvalidModulusBits.
func Build(
	ctx context.Context,
	prims domain.Primitives,
	masterSecret []byte,
	peerID string,
	modulusBits int,
	opts Options,
) (Result, error) {
	if modulusBits == 0 {
		modulusBits = domain.DefaultModulusBits
	}
	if modulusBits < MinModulusBits || modulusBits%16 != 0 {
		return Result{}, fmt.Errorf("%w: %d", domain.ErrInvalidModulusBits, modulusBits)
	}
	if len(masterSecret) == 0 {
		return Result{}, domain.ErrEmptyMasterSecret
	}
	primeBits := modulusBits / 2
	info := []byte(peerID)

	pSeed, err := seed(ctx, prims, masterSecret, info, primeBits)
	if err != nil {
		return Result{}, fmt.Errorf("derive p seed: %w", err)
	}
	defer memzero.Zero(pSeed)
	p, err := prime.Search(ctx, pSeed, prims, opts.Prime)
	if err != nil {
		return Result{}, fmt.Errorf("search p: %w", err)
	}

	qSeed, err := seed(ctx, prims, pSeed, info, primeBits)
	if err != nil {
		return Result{}, fmt.Errorf("derive q seed: %w", err)
	}
	defer memzero.Zero(qSeed)
	q, err := prime.Search(ctx, qSeed, prims, opts.Prime)
	if err != nil {
		return Result{}, fmt.Errorf("search q: %w", err)
	}

	m, err := Assemble(p.Prime, q.Prime)
	if err != nil {
		return Result{}, err
	}
	return Result{Material: m, PTests: p.Tests, QTests: q.Tests}, nil
}

// Assemble computes every RSA component from the primes p and q.
func Assemble(p, q *big.Int) (domain.RSAKeyMaterial, error) {
	if p.Cmp(q) == 0 {
		return domain.RSAKeyMaterial{}, domain.ErrDegeneratePrimes
	}
	e := big.NewInt(domain.PublicExponent)
	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)
	phi := new(big.Int).Mul(pm1, qm1)

	d := new(big.Int).ModInverse(e, phi)
	if d == nil {
		return domain.RSAKeyMaterial{}, domain.ErrModularInverse
	}
	qi := new(big.Int).ModInverse(q, p)
	if qi == nil {
		return domain.RSAKeyMaterial{}, fmt.Errorf("%w: q is not invertible modulo p", domain.ErrDegeneratePrimes)
	}
	return domain.RSAKeyMaterial{
		N:  new(big.Int).Mul(p, q),
		E:  e,
		D:  d,
		P:  new(big.Int).Set(p),
		Q:  new(big.Int).Set(q),
		Dp: new(big.Int).Mod(d, pm1),
		Dq: new(big.Int).Mod(d, qm1),
		Qi: qi,
	}, nil
}

func seed(ctx context.Context, prims domain.Primitives, key, info []byte, bits int) ([]byte, error) {
	signer, err := prims.NewHMAC(domain.SHA512, key)
	if err != nil {
		return nil, err
	}
	return stream.Generate(ctx, signer, info, bits)
}
