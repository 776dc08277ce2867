// Package cryptox implements the symmetric cipher applied to message
// bodies before they reach any store. Messages are encrypted with
// AES-256-GCM under a single static key and carried as URL-safe base64
// tokens, so ciphertext stays opaque text for every other component.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

const nonceSize = 12

var ErrInvalidToken = errors.New("invalid cipher token")

// Cipher encrypts and decrypts message bodies. Safe for concurrent use.
type Cipher struct {
	aead cipher.AEAD
}

// New builds a Cipher from a raw AES key (16, 24, or 32 bytes).
func New(key []byte) (*Cipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Cipher{aead: aead}, nil
}

// NewFromBase64 builds a Cipher from a URL-safe base64 encoded key, the
// form the key takes in configuration.
func NewFromBase64(encoded string) (*Cipher, error) {
	key, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding cipher key: %w", err)
	}
	return New(key)
}

// Encrypt seals plaintext with a fresh random nonce and returns the token
// base64(nonce‖ciphertext). Two encryptions of the same plaintext yield
// different tokens.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.URLEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. It returns ErrInvalidToken for anything that
// is not a well-formed, authentic token produced under the same key.
func (c *Cipher) Decrypt(token string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	if len(raw) < nonceSize {
		return "", ErrInvalidToken
	}

	plaintext, err := c.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", ErrInvalidToken
	}

	return string(plaintext), nil
}
