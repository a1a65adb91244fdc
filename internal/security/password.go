package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt truncates beyond 72 bytes; the floor keeps API accounts from being
// created with trivially guessable passwords.
const (
	minPasswordLen = 8
	maxPasswordLen = 72
)

// HashPassword validates length and returns a bcrypt hash for the users table.
func HashPassword(pw string) (string, error) {
	if len(pw) < minPasswordLen {
		return "", fmt.Errorf("password too short (min %d chars)", minPasswordLen)
	}
	if len(pw) > maxPasswordLen {
		return "", fmt.Errorf("password too long (max %d bytes)", maxPasswordLen)
	}
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// NewToken returns n random bytes, URL-safe base64 encoded, for session ids.
func NewToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
