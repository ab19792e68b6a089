package auth

import (
	"testing"

	"pharmacy/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("482913")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "482913", hash)

	assert.True(t, hasher.Check("482913", hash))
	assert.False(t, hasher.Check("482914", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	first, err := hasher.Hash("123456")
	require.NoError(t, err)
	second, err := hasher.Hash("123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("123456", first))
	assert.True(t, hasher.Check("123456", second))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config uses default", cfg: nil, want: bcrypt.DefaultCost},
		{name: "configured cost", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, want: 5},
		{name: "out of range falls back", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(nil)
	assert.False(t, hasher.Check("123456", "not-a-bcrypt-hash"))
}
