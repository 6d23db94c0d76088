// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package security holds the redacting wrapper used for full API key values.
package security

import (
	"encoding/json"
	"fmt"
	"io"
)

const redacted = "[SECRET]"

// Secret holds sensitive material such as a full API key. Formatting, JSON
// and text encoding all redact the value so it never ends up in logs by
// accident; callers that really need the value use Reveal.
type Secret []byte

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return redacted }

// Format implements fmt.Formatter so `%v`, `%#v`, `%q` and friends are redacted.
func (s Secret) Format(f fmt.State, c rune) {
	_, _ = io.WriteString(f, redacted)
}

// Reveal returns the plain value. It is the only way to get the value out
// as a string.
func (s Secret) Reveal() string { return string(s) }

// Bytes returns a copy of the underlying bytes.
func (s Secret) Bytes() []byte {
	out := make([]byte, len(s))
	copy(out, s)
	return out
}

// Clone returns an independent copy, so snapshots never alias store memory.
func (s Secret) Clone() Secret {
	if s == nil {
		return nil
	}
	return Secret(s.Bytes())
}

// Zero overwrites the underlying byte slice with zeros.
func (s *Secret) Zero() {
	if s == nil || *s == nil {
		return
	}
	for i := range *s {
		(*s)[i] = 0
	}
}

// Last returns the trailing n characters of the value, used to build the
// masked display form. It returns the whole value when it is shorter.
func (s Secret) Last(n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return string(s)
	}
	return string(s[len(s)-n:])
}

// MarshalJSON redacts secrets in JSON marshaling.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

// MarshalText redacts secrets for text encoding.
func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// FromString creates a Secret from a string input.
func FromString(in string) Secret { return Secret([]byte(in)) }
