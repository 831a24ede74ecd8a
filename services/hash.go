package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	HashSHA256 = "sha256"
	HashBcrypt = "bcrypt"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

// SHA256Hasher produces the unsalted lowercase hex digest that existing admin
// rows were written with.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func NewHasher(name string) (PasswordHasher, error) {
	switch strings.ToLower(name) {
	case "", HashSHA256:
		return SHA256Hasher{}, nil
	case HashBcrypt:
		return BcryptHasher{}, nil
	default:
		return nil, fmt.Errorf("unsupported PASSWORD_HASH %q", name)
	}
}

// VerifyPassword checks password against a stored hash of either format.
// bcrypt hashes are recognised by their "$2" prefix.
func VerifyPassword(storedHash, password string) bool {
	if strings.HasPrefix(storedHash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
	}
	digest, _ := SHA256Hasher{}.Hash(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedHash)) == 1
}
