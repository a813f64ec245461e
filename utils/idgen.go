package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
)

const base62Charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// RandomString draws n characters from charset using crypto/rand,
// via rand.Int to avoid modulo bias.
func RandomString(n int, charset string) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(charset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(charset[num.Int64()])
	}
	return sb.String(), nil
}

// NewRoomID generates a 6-char base62 room ID. 62^6 gives 56+ billion
// values, readable enough for long-term storage at front-desk scale.
func NewRoomID() (string, error) {
	return RandomString(6, base62Charset)
}

// NewAdminID generates a 6-char base62 admin account ID.
func NewAdminID() (string, error) {
	return RandomString(6, base62Charset)
}

// NewReservationID generates a 10-digit numeric reservation ID that desk
// staff can read back to guests over the phone. Uniqueness is enforced by
// the primary key at creation.
func NewReservationID() (string, error) {
	return RandomString(10, "0123456789")
}
