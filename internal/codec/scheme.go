package codec

import "fmt"

// Scheme identifies how a terminal encodes its payload. A terminal is
// configured with exactly one scheme and requests are never probed against
// the others.
type Scheme string

const (
	// BlockCipherHex is AES-CBC with a fresh IV per request, both hex encoded.
	BlockCipherHex Scheme = "aes-cbc-hex"
	// BlockCipherB64 is AES-CBC under an all-zero IV with a base64url payload.
	// Deprecated: the IV never changes, so equal plaintexts give equal
	// ciphertexts. Kept only for terminals that cannot be reflashed.
	BlockCipherB64 Scheme = "aes-cbc-b64"
	// AuthenticatedXor is the HMAC-authenticated XOR envelope, hex encoded.
	AuthenticatedXor Scheme = "xor-hmac"
	// AuthenticatedXorB64 is the same envelope as unpadded base64url.
	AuthenticatedXorB64 Scheme = "xor-hmac-b64"
)

// Schemes lists every supported scheme.
var Schemes = []Scheme{BlockCipherHex, BlockCipherB64, AuthenticatedXor, AuthenticatedXorB64}

// Policy says what a repeated payment identity means.
type Policy int

const (
	// PolicyStrict rejects a second quote for an identity already on record.
	PolicyStrict Policy = iota
	// PolicyReuse returns the existing record for a repeated identity.
	PolicyReuse
)

func (p Policy) String() string {
	if p == PolicyReuse {
		return "reuse"
	}
	return "strict"
}

// ParseScheme validates a scheme tag.
func ParseScheme(s string) (Scheme, error) {
	sc := Scheme(s)
	if !sc.Valid() {
		return "", fmt.Errorf("unknown payload scheme %q", s)
	}
	return sc, nil
}

// Valid reports whether s is one of the supported tags.
func (s Scheme) Valid() bool {
	switch s {
	case BlockCipherHex, BlockCipherB64, AuthenticatedXor, AuthenticatedXorB64:
		return true
	}
	return false
}

// Legacy reports whether terminals on this scheme expect plain HTTP error
// statuses rather than the LNURL error envelope.
func (s Scheme) Legacy() bool {
	return s == AuthenticatedXor || s == AuthenticatedXorB64
}

// Deprecated reports whether the scheme has a known cryptographic weakness.
func (s Scheme) Deprecated() bool {
	return s == BlockCipherB64
}

// NeedsIV reports whether requests carry a separate iv parameter.
func (s Scheme) NeedsIV() bool {
	return s == BlockCipherHex
}

// Policy returns the identity policy for the scheme.
func (s Scheme) Policy() Policy {
	if s == BlockCipherB64 {
		return PolicyReuse
	}
	return PolicyStrict
}

func (s Scheme) String() string { return string(s) }
