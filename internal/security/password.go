package security

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash from the plaintext secret. The
// salt is randomized per call, so hashing the same secret twice yields two
// different values.
func HashPassword(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the secret matches the stored hash. It
// returns false for a malformed hash instead of failing, since the hash
// column is compared against attacker-controlled input.
func CheckPassword(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
