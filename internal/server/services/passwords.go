package services

import (
	"fmt"

	"github.com/dmitrijs2005/deathline/internal/common"
	"golang.org/x/crypto/bcrypt"
)

const (
	// PasswordModePlain stores and compares passwords as given. Existing
	// deployments depend on it, rows written in this mode are clear text.
	PasswordModePlain = "plain"
	// PasswordModeBcrypt stores bcrypt hashes. It cannot read rows written
	// in plain mode.
	PasswordModeBcrypt = "bcrypt"
)

// PasswordHasher turns a password into its stored form and checks a
// candidate against a stored value.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(stored, candidate string) bool
}

// NewPasswordHasher returns the hasher for mode ("plain" or "bcrypt").
func NewPasswordHasher(mode string) (PasswordHasher, error) {
	switch mode {
	case PasswordModePlain, "":
		return plainPasswords{}, nil
	case PasswordModeBcrypt:
		return bcryptPasswords{cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownPasswordMode, mode)
	}
}

type plainPasswords struct{}

func (plainPasswords) Hash(password string) (string, error) { return password, nil }

func (plainPasswords) Matches(stored, candidate string) bool { return stored == candidate }

type bcryptPasswords struct {
	cost int
}

func (b bcryptPasswords) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (b bcryptPasswords) Matches(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
