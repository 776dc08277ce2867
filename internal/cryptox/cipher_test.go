package cryptox

import (
	"bytes"
	"errors"
	"testing"
)

func testKey() []byte {
	return bytes.Repeat([]byte{0x42}, 32)
}

func TestCipher_RoundTrip(t *testing.T) {
	c, err := New(testKey())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	token, err := c.Encrypt("bonjour")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if token == "bonjour" {
		t.Fatal("token equals plaintext")
	}

	got, err := c.Decrypt(token)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if got != "bonjour" {
		t.Errorf("expected %q, got %q", "bonjour", got)
	}
}

func TestCipher_FreshNoncePerEncryption(t *testing.T) {
	c, _ := New(testKey())

	t1, err := c.Encrypt("x")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	t2, err := c.Encrypt("x")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if t1 == t2 {
		t.Error("expected different tokens for same plaintext")
	}
}

func TestCipher_WrongKeyFails(t *testing.T) {
	c1, _ := New(testKey())
	c2, _ := New(bytes.Repeat([]byte{0x43}, 32))

	token, _ := c1.Encrypt("secret")
	if _, err := c2.Decrypt(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCipher_GarbageTokenFails(t *testing.T) {
	c, _ := New(testKey())

	for _, token := range []string{"", "not base64!!", "QUJD"} {
		if _, err := c.Decrypt(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestNewFromBase64(t *testing.T) {
	// The original deployment shipped its key in URL-safe base64.
	if _, err := NewFromBase64("5Gimyni-XZiHb88wmXggl9_6CUguMlDffo0I3DQBrpM="); err != nil {
		t.Fatalf("NewFromBase64 error: %v", err)
	}
	if _, err := NewFromBase64("@@@"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
}
