// pkg/crypto/password.go

package crypto

import (
	"crypto/rand"
	"math/big"

	cerr "github.com/cockroachdb/errors"
)

const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	// Symbols is the full ASCII punctuation set.
	Symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// BuildPool assembles the sampling pool. Letters are always included, so the
// result is never empty.
func BuildPool(includeNumbers, includeSymbols bool) string {
	pool := Lowercase + Uppercase
	if includeNumbers {
		pool += Digits
	}
	if includeSymbols {
		pool += Symbols
	}
	return pool
}

// GeneratePassword draws length characters independently and uniformly from
// pool using crypto/rand. There is no guaranteed per-class representation;
// every position is an unbiased draw over the whole pool.
func GeneratePassword(length int, pool string) (string, error) {
	if length < 1 {
		return "", cerr.Newf("password length must be >= 1, got %d", length)
	}
	if len(pool) == 0 {
		return "", cerr.New("character pool is empty")
	}

	pw := make([]byte, length)
	for i := range pw {
		c, err := randomChar(pool)
		if err != nil {
			return "", err
		}
		pw[i] = c
	}
	return string(pw), nil
}

func randomChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, cerr.Wrap(err, "read from secure random source")
	}
	return charset[n.Int64()], nil
}
