package auth

import "golang.org/x/crypto/bcrypt"

// CheckPassword reports whether password matches the configured bcrypt hash.
// An empty hash never matches, so a half-configured install stays locked.
func CheckPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashPassword produces the bcrypt hash expected in the config file.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
