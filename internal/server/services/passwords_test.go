package services

import (
	"testing"

	"github.com/dmitrijs2005/deathline/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordHasher(t *testing.T) {
	p, err := NewPasswordHasher("")
	require.NoError(t, err)
	assert.IsType(t, plainPasswords{}, p)

	p, err = NewPasswordHasher(PasswordModeBcrypt)
	require.NoError(t, err)
	assert.IsType(t, bcryptPasswords{}, p)

	_, err = NewPasswordHasher("md5")
	assert.ErrorIs(t, err, common.ErrUnknownPasswordMode)
}

func TestPlainPasswords(t *testing.T) {
	p := plainPasswords{}

	stored, err := p.Hash("pw")
	require.NoError(t, err)
	assert.Equal(t, "pw", stored)
	assert.True(t, p.Matches("pw", "pw"))
	assert.False(t, p.Matches("pw", "pw "))
}

func TestBcryptPasswords(t *testing.T) {
	p := bcryptPasswords{cost: 4}

	stored, err := p.Hash("pw")
	require.NoError(t, err)
	assert.True(t, p.Matches(stored, "pw"))
	assert.False(t, p.Matches(stored, "other"))
	assert.False(t, p.Matches("pw", "pw"), "plain rows are not readable in bcrypt mode")
}
