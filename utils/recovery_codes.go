package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	RecoveryCodeLength = 8
	NumRecoveryCodes   = 10
)

// GenerateRecoveryCodes generates the one-time codes handed out when
// two-factor auth is enabled.
func GenerateRecoveryCodes() ([]string, error) {
	codes := make([]string, NumRecoveryCodes)
	for i := 0; i < NumRecoveryCodes; i++ {
		bytes := make([]byte, RecoveryCodeLength/2)
		if _, err := rand.Read(bytes); err != nil {
			return nil, err
		}
		code := strings.ToUpper(hex.EncodeToString(bytes))
		codes[i] = code[:4] + "-" + code[4:]
	}
	return codes, nil
}

// HashString is the storage form of recovery codes; codes are compared by
// hash, never stored raw.
func HashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashRecoveryCodes hashes every code for storage. Codes are normalized to
// their dashless uppercase form first, matching how lookups normalize input.
func HashRecoveryCodes(codes []string) []string {
	hashed := make([]string, len(codes))
	for i, code := range codes {
		normalized := strings.ToUpper(strings.ReplaceAll(code, "-", ""))
		hashed[i] = HashString(normalized)
	}
	return hashed
}
