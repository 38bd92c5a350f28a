// Package keys derives the cookie signing, cookie encryption and CSRF keys
// from the single configured session secret.
package keys

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Set holds one key per purpose. Each is 32 bytes.
type Set struct {
	SessionHash  []byte
	SessionBlock []byte
	CSRF         []byte
}

// Derive expands secret into a Set with HKDF-SHA256. An empty secret is
// replaced by random bytes, which makes the keys valid for this process only.
func Derive(secret string) (*Set, error) {
	ikm := []byte(secret)
	if len(ikm) == 0 {
		ikm = make([]byte, 32)
		if _, err := rand.Read(ikm); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
	}

	set := &Set{}
	for _, k := range []struct {
		info string
		dst  *[]byte
	}{
		{"blogpress session hash", &set.SessionHash},
		{"blogpress session block", &set.SessionBlock},
		{"blogpress csrf", &set.CSRF},
	} {
		key := make([]byte, 32)
		if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, nil, []byte(k.info)), key); err != nil {
			return nil, fmt.Errorf("failed to derive %s key: %w", k.info, err)
		}
		*k.dst = key
	}

	return set, nil
}
