package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest from the raw password. The
// default cost keeps verification in the tens of milliseconds.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// Any mismatch, including a malformed stored hash, returns false.
func CheckPassword(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
