package users

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/mlajnef/rpc-messenger/internal/common"
)

// saltBytes is the number of random bytes per salt; the stored salt is
// its hex form, so twice as many characters.
const saltBytes = 16

// HashPassword returns "salt$digest" with a fresh random salt, where
// digest = sha256(salt ‖ password) in hex.
func HashPassword(password string) (string, error) {
	salt, err := common.MakeRandHexString(saltBytes)
	if err != nil {
		return "", err
	}
	return salt + "$" + digest(salt, password), nil
}

// VerifyPassword checks a candidate password against a stored hash.
// Records without a '$' separator are legacy entries hashed without a
// salt; they are verified as sha256(password) for backward
// compatibility.
func VerifyPassword(stored, candidate string) bool {
	salt, want, ok := strings.Cut(stored, "$")
	if !ok {
		return equal(stored, digest("", candidate))
	}
	return equal(want, digest(salt, candidate))
}

func digest(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
