package utils

import (
	"strings"
	"testing"
)

func TestGenerateRecoveryCodes(t *testing.T) {
	codes, err := GenerateRecoveryCodes()
	if err != nil {
		t.Fatalf("GenerateRecoveryCodes: %v", err)
	}
	if len(codes) != NumRecoveryCodes {
		t.Fatalf("expected %d codes, got %d", NumRecoveryCodes, len(codes))
	}
	seen := make(map[string]bool)
	for _, code := range codes {
		if len(code) != RecoveryCodeLength+1 || code[4] != '-' {
			t.Errorf("code %q not in XXXX-XXXX form", code)
		}
		if code != strings.ToUpper(code) {
			t.Errorf("code %q not uppercase", code)
		}
		if seen[code] {
			t.Errorf("duplicate code %q", code)
		}
		seen[code] = true
	}
}

func TestHashRecoveryCodesNormalizes(t *testing.T) {
	// Lookups hash the dashless uppercase form of user input; storage must
	// produce the same digest regardless of how the code was formatted.
	hashed := HashRecoveryCodes([]string{"AB12-CD34"})
	if len(hashed) != 1 {
		t.Fatalf("expected 1 hash, got %d", len(hashed))
	}
	if hashed[0] != HashString("AB12CD34") {
		t.Error("stored hash does not match the normalized lookup form")
	}

	lower := HashRecoveryCodes([]string{"ab12-cd34"})
	if lower[0] != hashed[0] {
		t.Error("case changes the stored hash")
	}
}

func TestHashStringDeterministic(t *testing.T) {
	if HashString("AB12CD34") != HashString("AB12CD34") {
		t.Error("same input hashed differently")
	}
	if HashString("AB12CD34") == HashString("AB12CD35") {
		t.Error("different inputs collided")
	}
}
