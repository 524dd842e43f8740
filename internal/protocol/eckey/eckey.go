package eckey

import (
	"context"
	"fmt"
	"math/big"

	"pairwise/internal/domain"
)

// Build derives EC key material on curveName for (masterSecret, peerID).
// Only K-256 and P-256K are accepted; both name secp256k1.
func Build(
	ctx context.Context,
	prims domain.Primitives,
	masterSecret []byte,
	peerID string,
	curveName domain.CurveName,
) (domain.ECKeyMaterial, error) {
	curve, err := prims.CurveFor(curveName)
	if err != nil {
		return domain.ECKeyMaterial{}, err
	}
	if len(masterSecret) == 0 {
		return domain.ECKeyMaterial{}, domain.ErrEmptyMasterSecret
	}

	signer, err := prims.NewHMAC(domain.SHA256, masterSecret)
	if err != nil {
		return domain.ECKeyMaterial{}, err
	}
	d, err := signer.Sign(ctx, []byte(peerID))
	if err != nil {
		return domain.ECKeyMaterial{}, fmt.Errorf("derive scalar: %w", err)
	}
	if err := checkScalar(d, curve.Order()); err != nil {
		return domain.ECKeyMaterial{}, err
	}

	x, y, err := curve.ScalarBaseMult(d)
	if err != nil {
		return domain.ECKeyMaterial{}, fmt.Errorf("public point: %w", err)
	}
	if err := curve.ValidateKeyPair(d, x, y); err != nil {
		return domain.ECKeyMaterial{}, fmt.Errorf("%w: %v", domain.ErrInvalidKeyPair, err)
	}
	return domain.ECKeyMaterial{Curve: curveName, D: d, X: x, Y: y}, nil
}

// checkScalar enforces 1 <= d < order.
func checkScalar(d []byte, order *big.Int) error {
	n := new(big.Int).SetBytes(d)
	if n.Sign() == 0 || n.Cmp(order) >= 0 {
		return domain.ErrScalarOutOfRange
	}
	return nil
}
