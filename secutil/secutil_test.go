package secutil

import (
	"strings"
	"testing"
)

func TestHashSHA256(t *testing.T) {
	// Known vector for the empty input.
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := HashSHA256(nil); got != want {
		t.Errorf("HashSHA256(nil) = %q, want %q", got, want)
	}

	if HashSHA256([]byte("a")) == HashSHA256([]byte("b")) {
		t.Error("different inputs produced the same digest")
	}
}

func TestHashSHA512(t *testing.T) {
	got := HashSHA512([]byte("hello"))
	if len(got) != 128 {
		t.Errorf("digest hex length = %d, want 128", len(got))
	}
	if got != HashSHA512([]byte("hello")) {
		t.Error("digest is not deterministic")
	}
}

func TestHMACSHA256(t *testing.T) {
	key := []byte("key")
	data := []byte("payload")

	sig := HMACSHA256(key, data)
	if len(sig) != 64 {
		t.Errorf("signature hex length = %d, want 64", len(sig))
	}

	if !VerifyHMACSHA256(key, data, sig) {
		t.Error("VerifyHMACSHA256 rejected a valid signature")
	}
	if VerifyHMACSHA256([]byte("other"), data, sig) {
		t.Error("VerifyHMACSHA256 accepted a signature under the wrong key")
	}
	if VerifyHMACSHA256(key, []byte("tampered"), sig) {
		t.Error("VerifyHMACSHA256 accepted a signature for tampered data")
	}
}

func TestConstantTimeEqual(t *testing.T) {
	if !ConstantTimeEqual("abc", "abc") {
		t.Error("equal strings compared unequal")
	}
	if ConstantTimeEqual("abc", "abd") {
		t.Error("different strings compared equal")
	}
	if ConstantTimeEqual("abc", "abcd") {
		t.Error("different-length strings compared equal")
	}
}

func TestRandomToken(t *testing.T) {
	tok, err := RandomToken(16)
	if err != nil {
		t.Fatalf("RandomToken error: %v", err)
	}
	if len(tok) != 32 {
		t.Errorf("token length = %d, want 32 hex chars", len(tok))
	}
	if strings.ToLower(tok) != tok {
		t.Errorf("token is not lowercase hex: %q", tok)
	}

	other, err := RandomToken(16)
	if err != nil {
		t.Fatalf("RandomToken error: %v", err)
	}
	if tok == other {
		t.Error("two tokens were identical")
	}
}

func TestRandomToken_InvalidLength(t *testing.T) {
	if _, err := RandomToken(0); err == nil {
		t.Error("RandomToken(0) did not fail")
	}
	if _, err := RandomToken(-1); err == nil {
		t.Error("RandomToken(-1) did not fail")
	}
}

func TestRandomID(t *testing.T) {
	id := RandomID()
	if len(id) != 32 {
		t.Errorf("id length = %d, want 32", len(id))
	}
	if id == RandomID() {
		t.Error("two ids were identical")
	}
}
