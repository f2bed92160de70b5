// Package access implements access-code generation, hashing, and credential
// normalization for the final-submission gate. Codes are distributed to team
// leads out-of-band; only their SHA-256 hash is ever persisted, so a leak of
// the registry does not disclose usable codes.
package access

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// codeAlphabet excludes characters easy to misread when codes are
// forwarded by hand (0/O, 1/I/L).
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	codeGroups    = 3
	codeGroupSize = 4
)

// ErrNoCredential indicates that neither a raw code nor a hash was supplied.
var ErrNoCredential = errors.New("access code or access code hash is required")

// GenerateCode returns a fresh human-readable code of the form XXXX-XXXX-XXXX.
func GenerateCode() (string, error) {
	raw := make([]byte, codeGroups*codeGroupSize)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate access code: %w", err)
	}

	groups := make([]string, codeGroups)
	for g := 0; g < codeGroups; g++ {
		var b strings.Builder
		for i := 0; i < codeGroupSize; i++ {
			b.WriteByte(codeAlphabet[int(raw[g*codeGroupSize+i])%len(codeAlphabet)])
		}
		groups[g] = b.String()
	}
	return strings.Join(groups, "-"), nil
}

// HashCode returns the lowercase hex SHA-256 digest of a trimmed code.
func HashCode(code string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(code)))
	return hex.EncodeToString(sum[:])
}

// Credential is a submission-access credential supplied by a client:
// either the raw distributed code, or the hash a previous unlock returned.
// Both normalize to a single hash before comparison.
type Credential struct {
	rawCode string
	hash    string
}

// CredentialFromCode builds a credential from the raw distributed code.
func CredentialFromCode(code string) Credential {
	return Credential{rawCode: strings.TrimSpace(code)}
}

// CredentialFromHash builds a credential from a previously returned hash.
// The hash acts as a bearer token for the rest of the client session.
func CredentialFromHash(hash string) Credential {
	return Credential{hash: strings.ToLower(strings.TrimSpace(hash))}
}

// Empty reports whether the credential carries neither a code nor a hash.
func (c Credential) Empty() bool {
	return c.rawCode == "" && c.hash == ""
}

// Hash resolves the credential to its normalized hex hash. A pre-computed
// hash takes precedence over a raw code when both are present.
func (c Credential) Hash() (string, error) {
	if c.hash != "" {
		return c.hash, nil
	}
	if c.rawCode != "" {
		return HashCode(c.rawCode), nil
	}
	return "", ErrNoCredential
}

// Matches compares the credential against a stored hash in constant time.
// Hex case differences are ignored.
func (c Credential) Matches(storedHash string) (bool, error) {
	h, err := c.Hash()
	if err != nil {
		return false, err
	}
	stored := strings.ToLower(strings.TrimSpace(storedHash))
	return subtle.ConstantTimeCompare([]byte(h), []byte(stored)) == 1, nil
}
