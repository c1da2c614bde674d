package codes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	code, err := Generate(DefaultLength)
	assert.NoError(t, err)
	assert.Len(t, code, DefaultLength)
	for _, r := range code {
		assert.Contains(t, alphabet, string(r))
	}

	other, err := Generate(DefaultLength)
	assert.NoError(t, err)
	assert.NotEqual(t, code, other)
}

func TestGenerate_OmitsAmbiguousCharacters(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := Generate(DefaultLength)
		assert.NoError(t, err)
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "1")
		assert.NotContains(t, code, "I")
	}
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name          string
		exists        func() ExistsFunc
		wantPrefix    string
		wantLen       int
		expectedError error
	}{
		{
			name: "First candidate is free",
			exists: func() ExistsFunc {
				return func(ctx context.Context, code string) (bool, error) {
					return false, nil
				}
			},
			wantPrefix: "RWD-",
			wantLen:    len("RWD-") + DefaultLength,
		},
		{
			name: "Retries after collision",
			exists: func() ExistsFunc {
				calls := 0
				return func(ctx context.Context, code string) (bool, error) {
					calls++
					return calls == 1, nil
				}
			},
			wantPrefix: "VCH-",
			wantLen:    len("VCH-") + DefaultLength,
		},
		{
			name: "Last attempt uses extended length",
			exists: func() ExistsFunc {
				calls := 0
				return func(ctx context.Context, code string) (bool, error) {
					calls++
					return calls < maxAttempts, nil
				}
			},
			wantPrefix: "REF-",
			wantLen:    len("REF-") + fallbackLength,
		},
		{
			name: "Exhausted after max attempts",
			exists: func() ExistsFunc {
				return func(ctx context.Context, code string) (bool, error) {
					return true, nil
				}
			},
			expectedError: ErrExhausted,
		},
		{
			name: "Lookup error propagates",
			exists: func() ExistsFunc {
				return func(ctx context.Context, code string) (bool, error) {
					return false, errors.New("db error")
				}
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := Unique(context.Background(), tt.wantPrefix, tt.exists())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Empty(t, code)
			} else {
				assert.NoError(t, err)
				assert.True(t, strings.HasPrefix(code, tt.wantPrefix))
				assert.Len(t, code, tt.wantLen)
			}
		})
	}
}
