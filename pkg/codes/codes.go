package codes

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Alphabet leaves out 0/O and 1/I so codes survive being read over the phone.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	DefaultLength  = 8
	fallbackLength = DefaultLength + 4
	maxAttempts    = 5
)

var ErrExhausted = errors.New("can't generate unique code")

// ExistsFunc reports whether a candidate code is already taken.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

func Generate(length int) (string, error) {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("can't read random bytes: %w", err)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}

// Unique generates candidate codes until exists reports a free one.
// Collisions are handled by regeneration; after maxAttempts the length is
// extended so the final attempts draw from a far larger space.
func Unique(ctx context.Context, prefix string, exists ExistsFunc) (string, error) {
	length := DefaultLength
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt == maxAttempts-1 {
			length = fallbackLength
		}
		code, err := Generate(length)
		if err != nil {
			return "", err
		}
		code = prefix + code
		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrExhausted
}
