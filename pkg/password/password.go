package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted bcrypt digest of the plaintext password.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Check reports whether the plaintext matches the stored digest.
// A malformed digest counts as a mismatch.
func Check(digest, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
