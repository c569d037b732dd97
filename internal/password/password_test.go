package password_test

import (
	"testing"

	"crm-backend/internal/password"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := password.Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if digest == "secret123" {
		t.Fatal("digest must not equal plaintext")
	}

	if !password.Verify("secret123", digest) {
		t.Error("correct password did not verify")
	}
	if password.Verify("wrong", digest) {
		t.Error("wrong password verified")
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := password.Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	b, err := password.Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if a == b {
		t.Error("two hashes of the same password are identical, salt is missing")
	}
	if !password.Verify("secret123", a) || !password.Verify("secret123", b) {
		t.Error("both salted hashes must verify the original password")
	}
}
