// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package keystore

import (
	"io"
	mrand "math/rand/v2"

	"github.com/toeirei/keydash/internal/logging"
	"github.com/toeirei/keydash/internal/security"
)

const (
	keyPrefix    = "sk-"
	maskMarker   = "****"
	secretLength = 32
	visibleTail  = 4
	// maxIdleReads bounds the reads in a row that yield no usable byte.
	maxIdleReads = 16
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// generateSecret builds "sk-" followed by secretLength base36 characters
// drawn from r. Bytes at or above the largest multiple of len(alphabet) are
// rejected to keep the distribution uniform. If r fails, or keeps returning
// only rejected bytes, the remaining characters come from math/rand; the
// keys are mock data.
func generateSecret(r io.Reader) security.Secret {
	out := make([]byte, 0, len(keyPrefix)+secretLength)
	out = append(out, keyPrefix...)

	limit := byte(256 / len(alphabet) * len(alphabet))
	buf := make([]byte, secretLength)
	idle := 0
	for len(out) < cap(out) {
		n, err := r.Read(buf)
		before := len(out)
		for _, b := range buf[:n] {
			if b >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == cap(out) {
				break
			}
		}
		if len(out) == before {
			idle++
		} else {
			idle = 0
		}
		if len(out) < cap(out) && (err != nil || n == 0 || idle >= maxIdleReads) {
			logging.Warnf("key generator: random source unusable (err=%v, idle reads=%d), falling back to math/rand", err, idle)
			for len(out) < cap(out) {
				out = append(out, alphabet[mrand.IntN(len(alphabet))])
			}
		}
	}
	return security.Secret(out)
}

// maskSecret derives the display form from the full value: the prefix, the
// mask marker and the last few characters.
func maskSecret(s security.Secret) string {
	return keyPrefix + maskMarker + s.Last(visibleTail)
}
