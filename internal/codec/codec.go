// Package codec decodes and authenticates the PIN and amount tokens that
// LNPoS terminals embed in their LNURL links.
package codec

import (
	"crypto/aes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Payload is the authenticated content of a terminal token. Amount is in
// minor units of the terminal currency (cents, or sats for native
// terminals) and may carry a fraction on block-cipher schemes.
type Payload struct {
	PIN    int64
	Amount decimal.Decimal
}

// Precheck runs the structural length checks that need no key. It fails
// with ErrInvalidPayloadLength or ErrInvalidIVLength so a misconfigured
// terminal is told apart from a forged one.
func Precheck(scheme Scheme, p, iv string) error {
	switch scheme {
	case BlockCipherHex:
		if len(p) == 0 || len(p)%(2*aes.BlockSize) != 0 {
			return ErrInvalidPayloadLength
		}
		if len(iv) != 2*aes.BlockSize {
			return ErrInvalidIVLength
		}
	case BlockCipherB64:
		if iv != "" {
			return ErrInvalidIVLength
		}
		raw, err := decodeB64(p)
		if err != nil {
			return err
		}
		if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
			return ErrInvalidPayloadLength
		}
	case AuthenticatedXor:
		if len(p) == 0 || len(p)%2 != 0 {
			return ErrInvalidPayloadLength
		}
	case AuthenticatedXorB64:
		if len(p) == 0 {
			return ErrInvalidPayloadLength
		}
	default:
		return ErrUnsupportedScheme
	}
	return nil
}

// Identity returns the payment identity a token maps to and the policy for
// a repeated identity. XOR identities come from the unauthenticated nonce;
// callers must still Decode before acting on anything else in the token.
func Identity(scheme Scheme, p, iv string) (string, Policy, error) {
	switch scheme {
	case BlockCipherHex:
		if _, err := hex.DecodeString(iv); err != nil {
			return "", PolicyStrict, fmt.Errorf("%w: iv: %v", ErrMalformedEncoding, err)
		}
		return strings.ToLower(iv), PolicyStrict, nil
	case BlockCipherB64:
		raw, err := decodeB64(p)
		if err != nil {
			return "", PolicyReuse, err
		}
		return base64.RawURLEncoding.EncodeToString(raw), PolicyReuse, nil
	case AuthenticatedXor, AuthenticatedXorB64:
		blob, err := xorBlob(scheme, p)
		if err != nil {
			return "", PolicyStrict, err
		}
		env, err := parseEnvelope(blob)
		if err != nil {
			return "", PolicyStrict, err
		}
		return hex.EncodeToString(env.nonce), PolicyStrict, nil
	}
	return "", PolicyStrict, ErrUnsupportedScheme
}

// Decode authenticates and decrypts a token with the terminal's raw key.
func Decode(scheme Scheme, key []byte, p, iv string) (Payload, error) {
	if err := Precheck(scheme, p, iv); err != nil {
		return Payload{}, err
	}

	switch scheme {
	case BlockCipherHex:
		ct, err := hex.DecodeString(p)
		if err != nil {
			return Payload{}, fmt.Errorf("%w: payload: %v", ErrMalformedEncoding, err)
		}
		ivb, err := hex.DecodeString(iv)
		if err != nil {
			return Payload{}, fmt.Errorf("%w: iv: %v", ErrMalformedEncoding, err)
		}
		return decryptBlockCipher(key, ct, ivb)
	case BlockCipherB64:
		ct, err := decodeB64(p)
		if err != nil {
			return Payload{}, err
		}
		return decryptBlockCipher(key, ct, zeroIV)
	case AuthenticatedXor, AuthenticatedXorB64:
		blob, err := xorBlob(scheme, p)
		if err != nil {
			return Payload{}, err
		}
		return decodeXor(key, blob)
	}
	return Payload{}, ErrUnsupportedScheme
}

// Encode produces the p and iv query values a terminal would send. For
// BlockCipherHex nonce is the IV; for the XOR schemes it is the envelope
// nonce; BlockCipherB64 ignores it.
func Encode(scheme Scheme, key, nonce []byte, payload Payload) (p string, iv string, err error) {
	switch scheme {
	case BlockCipherHex:
		ct, err := EncryptBlockCipher(key, nonce, payload)
		if err != nil {
			return "", "", err
		}
		return hex.EncodeToString(ct), hex.EncodeToString(nonce), nil
	case BlockCipherB64:
		ct, err := EncryptBlockCipher(key, nil, payload)
		if err != nil {
			return "", "", err
		}
		return base64.URLEncoding.EncodeToString(ct), "", nil
	case AuthenticatedXor, AuthenticatedXorB64:
		if !payload.Amount.IsInteger() || payload.Amount.IsNegative() || payload.PIN < 0 {
			return "", "", fmt.Errorf("%w: xor schemes carry whole non-negative cents", ErrMalformedPlaintext)
		}
		blob, err := SealXor(key, nonce, uint64(payload.PIN), payload.Amount.BigInt().Uint64(), DefaultMacLen)
		if err != nil {
			return "", "", err
		}
		if scheme == AuthenticatedXorB64 {
			return EncodeXorB64(blob), "", nil
		}
		return hex.EncodeToString(blob), "", nil
	}
	return "", "", ErrUnsupportedScheme
}

// EncodeXorB64 renders an envelope the way constrained terminals send it:
// base64url without padding.
func EncodeXorB64(blob []byte) string {
	return base64.RawURLEncoding.EncodeToString(blob)
}

func xorBlob(scheme Scheme, p string) ([]byte, error) {
	if scheme == AuthenticatedXor {
		blob, err := hex.DecodeString(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
		}
		return blob, nil
	}
	return decodeB64(p)
}

// decodeB64 re-pads an unpadded base64url string and decodes it. Non-zero
// padding bits are rejected so each ciphertext has exactly one spelling.
func decodeB64(p string) ([]byte, error) {
	p = strings.TrimRight(p, "=")
	if rem := len(p) % 4; rem != 0 {
		p += strings.Repeat("=", 4-rem)
	}
	raw, err := base64.URLEncoding.Strict().DecodeString(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return raw, nil
}
