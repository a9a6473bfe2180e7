package gitlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/repostat/pkg/gitlib"
)

func TestZeroHash(t *testing.T) {
	hash := gitlib.ZeroHash()

	assert.Equal(t, gitlib.Hash{}, hash)
	assert.True(t, hash.IsZero())
}

func TestNewHash(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected gitlib.Hash
	}{
		{
			name:  "full lowercase hex",
			input: "0123456789abcdef0123456789abcdef01234567",
			expected: gitlib.Hash{
				0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
				0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
				0x01, 0x23, 0x45, 0x67,
			},
		},
		{
			name:  "full uppercase hex",
			input: "0123456789ABCDEF0123456789ABCDEF01234567",
			expected: gitlib.Hash{
				0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
				0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
				0x01, 0x23, 0x45, 0x67,
			},
		},
		{
			name:     "all zeros",
			input:    "0000000000000000000000000000000000000000",
			expected: gitlib.Hash{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, gitlib.NewHash(tt.input))
		})
	}
}

func TestHashString(t *testing.T) {
	const hex = "0123456789abcdef0123456789abcdef01234567"

	hash := gitlib.NewHash(hex)

	assert.Equal(t, hex, hash.String())
}

func TestHashOidRoundtrip(t *testing.T) {
	hash := gitlib.NewHash("fedcba9876543210fedcba9876543210fedcba98")

	oid := hash.ToOid()
	require.NotNil(t, oid)

	assert.Equal(t, hash, gitlib.HashFromOid(oid))
}

func TestHashIsZero(t *testing.T) {
	assert.True(t, gitlib.Hash{}.IsZero())
	assert.False(t, gitlib.NewHash("0000000000000000000000000000000000000001").IsZero())
}
