package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
)

const digitCharset = "0123456789"

// GenerateNumericCode returns n random digits. crypto/rand with rand.Int
// avoids modulo bias.
func GenerateNumericCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid code length")
	}
	var sb strings.Builder
	charsetLen := big.NewInt(int64(len(digitCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(digitCharset[num.Int64()])
	}
	return sb.String(), nil
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail is a light RFC-5322-ish check, deliberately permissive.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
