package stream

import (
	"context"
	"fmt"

	"pairwise/internal/domain"
)

// Generate returns targetBits/8 bytes chained from signer over initialData.
//
// targetBits must be a positive multiple of 8. The same signer key,
// initialData and targetBits always produce the same bytes.
func Generate(ctx context.Context, signer domain.Signer, initialData []byte, targetBits int) ([]byte, error) {
	if targetBits <= 0 || targetBits%8 != 0 {
		return nil, fmt.Errorf("%w: target bits %d must be a positive multiple of 8", domain.ErrInvalidLength, targetBits)
	}
	blockSize := signer.Size()
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: signer block size %d", domain.ErrInvalidLength, blockSize)
	}
	targetBytes := targetBits / 8
	rounds := (targetBytes + blockSize - 1) / blockSize

	acc := make([]byte, 0, rounds*blockSize)
	for i := 0; i < rounds; i++ {
		data := acc
		if i == 0 {
			data = initialData
		}
		block, err := signer.Sign(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("stream round %d: %w", i, err)
		}
		if len(block) != blockSize {
			return nil, fmt.Errorf("%w: round %d produced %d bytes, want %d", domain.ErrInvalidLength, i, len(block), blockSize)
		}
		acc = append(acc, block...)
	}
	return acc[:targetBytes], nil
}
