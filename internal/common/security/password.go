package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/common"
)

// BcryptCost is the work factor used for all new password hashes.
const BcryptCost = 10

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash failed: %v: %w", err, common.ErrInternalServer)
	}
	return string(bytes), nil
}

// CheckPasswordHash reports whether password matches hash. A malformed
// hash is treated as a mismatch, never an error.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
