package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Supported password hasher names.
const (
	PasswordHasherSHA256 = "sha256"
	PasswordHasherBcrypt = "bcrypt"
)

// ErrUnknownPasswordHasher is returned by NewPasswordHasher for an
// unsupported hasher name.
var ErrUnknownPasswordHasher = errors.New("unknown password hasher")

// PasswordHasher turns plaintext passwords into stored digests and checks
// candidates against them.
type PasswordHasher interface {
	// Hash returns the digest to store for password.
	Hash(password string) (string, error)
	// Compare reports whether password matches the stored hash.
	Compare(hash, password string) bool
}

// NewPasswordHasher returns the hasher registered under kind.
// cost is only used by bcrypt; values outside bcrypt's range fall back to
// bcrypt.DefaultCost.
func NewPasswordHasher(kind string, cost int) (PasswordHasher, error) {
	switch kind {
	case PasswordHasherSHA256, "":
		return SHA256PasswordHasher{}, nil
	case PasswordHasherBcrypt:
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			cost = bcrypt.DefaultCost
		}
		return BcryptPasswordHasher{cost: cost}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPasswordHasher, kind)
	}
}

// SHA256PasswordHasher stores the lowercase hex SHA-256 of the password.
// It is unsalted and deterministic and exists so that digests written by
// earlier deployments keep verifying.
type SHA256PasswordHasher struct{}

func (SHA256PasswordHasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256PasswordHasher) Compare(hash, password string) bool {
	candidate, _ := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(hash)) == 1
}

// BcryptPasswordHasher stores salted bcrypt digests.
type BcryptPasswordHasher struct {
	cost int
}

func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hashed), nil
}

func (h BcryptPasswordHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
