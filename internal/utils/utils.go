package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// NewTransactionRef mints a transfer reference from the submission time.
// The format is part of the wire contract.
func NewTransactionRef(t time.Time) string {
	return "TXN" + strconv.FormatInt(t.UnixMilli(), 10)
}

// NewUserID generates a server-assigned user ID.
func NewUserID() string {
	return "usr-" + uuid.NewString()
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword reports whether a password matches a bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
