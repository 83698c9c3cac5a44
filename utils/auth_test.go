package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !CheckPasswordHash("password123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrongpassword", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	id, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if id != 42 {
		t.Errorf("ParseToken returned id %d, want 42", id)
	}
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateToken(1); err == nil {
		t.Error("expected error when JWT_SECRET is unset")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ParseToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestEnvAdminVerifier(t *testing.T) {
	verifier := EnvAdminVerifier{}

	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	if !verifier.Verify("admin", "admin123") {
		t.Error("default credentials rejected")
	}
	if verifier.Verify("admin", "nope") {
		t.Error("wrong password accepted")
	}

	t.Setenv("ADMIN_USERNAME", "ops")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	if !verifier.Verify("ops", "s3cret") {
		t.Error("configured credentials rejected")
	}
	if verifier.Verify("admin", "admin123") {
		t.Error("default credentials must not work once configured")
	}
}
