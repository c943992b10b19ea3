package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters. Chosen to match the hashes already present in
// existing databases; changing them invalidates stored credentials.
const (
	scryptN   = 16384
	scryptR   = 8
	scryptP   = 1
	saltLen   = 16
	keyLen    = 64
	tokenLen  = 32
	separator = ":"
)

// HashPassword derives a scrypt hash from password with a fresh random
// salt. The result is hex(salt):hex(key).
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	return hex.EncodeToString(salt) + separator + hex.EncodeToString(key), nil
}

// VerifyPassword checks password against a stored hash produced by
// HashPassword. Malformed stored hashes verify as false rather than
// erroring, and the comparison is constant time.
func VerifyPassword(password, storedHash string) bool {
	saltHex, keyHex, found := strings.Cut(storedHash, separator)
	if !found || saltHex == "" || keyHex == "" {
		return false
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}

	actual, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false
	}

	if len(actual) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare(actual, expected) == 1
}

// NewSessionToken returns a cryptographically random 32-byte token encoded
// as 64 hex characters.
func NewSessionToken() (string, error) {
	b := make([]byte, tokenLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ExtractSessionToken pulls the bearer token from the auth headers. The
// explicit X-Session-Token header wins; otherwise the Authorization header
// is used, with a case-insensitive "Bearer " prefix stripped if present.
// Returns "" when neither header carries a token.
func ExtractSessionToken(authorization, xSessionToken string) string {
	if t := strings.TrimSpace(xSessionToken); t != "" {
		return t
	}

	if authorization == "" {
		return ""
	}

	if len(authorization) >= 7 && strings.EqualFold(authorization[:7], "Bearer ") {
		return strings.TrimSpace(authorization[7:])
	}

	return strings.TrimSpace(authorization)
}
