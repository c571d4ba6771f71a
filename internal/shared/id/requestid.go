// Package id generates public identifiers.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// RequestPrefix prefixes every request identifier.
	RequestPrefix = "REQ"

	// RandomLength is the number of random base62 characters in a request id.
	RandomLength = 8
)

// Random returns length cryptographically random base62 characters.
func Random(length int) (string, error) {
	if length <= 0 {
		length = RandomLength
	}
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

// NewRequestID returns an id of the form REQ-<base36 millis>-<8 base62 chars>.
func NewRequestID(now time.Time) (string, error) {
	suffix, err := Random(RandomLength)
	if err != nil {
		return "", err
	}
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return RequestPrefix + "-" + ts + "-" + suffix, nil
}

// IsRequestID reports whether s has the shape produced by NewRequestID.
func IsRequestID(s string) bool {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] != RequestPrefix || parts[1] == "" || len(parts[2]) != RandomLength {
		return false
	}
	if _, err := strconv.ParseInt(parts[1], 36, 64); err != nil {
		return false
	}
	for _, c := range parts[2] {
		if !strings.ContainsRune(alphabet, c) {
			return false
		}
	}
	return true
}
