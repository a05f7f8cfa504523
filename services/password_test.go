package services

import "testing"

func TestHashPasswordRejectsWeakPasswords(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"too short", "a1!"},
		{"no number", "password!!"},
		{"no special character", "password11"},
		{"empty", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := HashPassword(tc.password); err == nil {
				t.Fatal("expected rejection")
			}
		})
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	const password = "Str0ng!pass9#"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == password {
		t.Fatal("hash equals the plain password")
	}

	ok, err := VerifyPassword(hash, password)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Fatal("correct password rejected")
	}

	ok, err = VerifyPassword(hash, "wrong-password1!")
	if err != nil {
		t.Fatalf("VerifyPassword (wrong): %v", err)
	}
	if ok {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	const password = "Str0ng!pass9#"

	first, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword (again): %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password are identical")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("not-a-valid-stored-hash", "whatever1!"); err == nil {
		t.Fatal("expected error for malformed stored hash")
	}
}

func TestComparePasswords(t *testing.T) {
	const password = "Str0ng!pass9#"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !ComparePasswords(hash, password) {
		t.Error("correct password rejected")
	}
	if ComparePasswords(hash, "wrong1!pass") {
		t.Error("wrong password accepted")
	}
}
