package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialHasher_HashProducesFreshSalt(t *testing.T) {
	h := NewCredentialHasher()

	first, err := h.Hash("482019")
	require.NoError(t, err)
	second, err := h.Hash("482019")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Matches("482019", first))
	assert.True(t, h.Matches("482019", second))
}

func TestCredentialHasher_Matches(t *testing.T) {
	h := NewCredentialHasher()

	hash, err := h.Hash("123456")
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
		hash string
		want bool
	}{
		{name: "correct code", raw: "123456", hash: hash, want: true},
		{name: "wrong code", raw: "654321", hash: hash, want: false},
		{name: "empty code", raw: "", hash: hash, want: false},
		{name: "malformed hash", raw: "123456", hash: "not-a-bcrypt-hash", want: false},
		{name: "empty hash", raw: "123456", hash: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Matches(tt.raw, tt.hash))
		})
	}
}
