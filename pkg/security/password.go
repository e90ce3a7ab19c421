package security

import "golang.org/x/crypto/bcrypt"

// hashCost matches the work factor the account data was originally
// hashed with; stored hashes stay verifiable across deployments.
const hashCost = 12

// HashPassword derives a salted one-way hash of plaintext. Two calls
// over the same input produce different hashes; both verify.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether candidate matches the stored hash.
func CheckPassword(candidate, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(candidate)) == nil
}
