package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes and verifies plaintext passwords. bcrypt embeds a
// per-call random salt in the output, so hashing the same password twice
// yields different values that both verify.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using the default bcrypt cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash generates a salted hash from a plaintext password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the plaintext password matches the stored hash.
// The comparison is constant-time.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
