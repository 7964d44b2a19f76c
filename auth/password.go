package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is deliberately above the library default; login latency at
// this cost is still well under interactive thresholds.
const bcryptCost = 12

// HashPassword returns a salted bcrypt hash of plain. Two calls on the
// same input produce different hashes.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword reports whether hash was derived from plain.
func ComparePassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
