package auth

import "testing"

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher()

	hash, err := h.Hash("password123")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "password123" {
		t.Fatalf("hash must not equal plaintext")
	}

	if !h.Verify(hash, "password123") {
		t.Fatalf("expected match")
	}

	// Mismatch is a plain false, never a panic or error.
	if h.Verify(hash, "password124") {
		t.Fatalf("expected mismatch")
	}
	if h.Verify("not-a-hash", "password123") {
		t.Fatalf("expected mismatch for malformed hash")
	}
}

func TestJWT_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "auth-test-secret")

	if err := InitJWTSecret(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := GenerateJWT(42, "ada@example.com")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, err := ParseUserID(token)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}

	if _, err := ParseUserID("garbage"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"ada@example.com", "a.b+c@sub.example.co"}
	invalid := []string{"", "not-an-email", "@example.com", "ada@"}

	for _, email := range valid {
		if !ValidEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if ValidEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}
