package auth

import (
	"crypto/rand"
	"math/big"
)

const digits = "0123456789"
const alphanum = "abcdefghijklmnopqrstuvwxyz0123456789"

// randomString draws n characters from charset using crypto/rand.
func randomString(charset string, n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(charset)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// rand.Reader failing means the platform entropy source is
			// broken; there is no sane fallback for credential material.
			panic(err)
		}
		out[i] = charset[idx.Int64()]
	}
	return string(out)
}

// RandomPassword generates the throwaway password assigned to federated
// accounts. It is hashed immediately and never surfaced.
func RandomPassword() string {
	return randomString(alphanum, 16)
}

// usernameSuffix is appended to synthesized usernames. Uniqueness is not
// checked; a collision surfaces as a store conflict.
func usernameSuffix() string {
	return randomString(digits, 4)
}
