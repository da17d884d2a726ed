package codec

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	xorVersion    = 1
	minNonceLen   = 8
	maxPayloadLen = 32
	minMacLen     = 8
	DefaultMacLen = 8
	dataPrefix    = "Data:"
	roundPrefix   = "Round secret:"
)

// envelope is the parsed, not yet authenticated, XOR blob:
// version | nonce_len | nonce | payload_len | payload | mac
type envelope struct {
	nonce   []byte
	payload []byte
	signed  []byte
	mac     []byte
}

func parseEnvelope(b []byte) (*envelope, error) {
	if len(b) < 1 || b[0] != xorVersion {
		return nil, ErrUnsupportedVariant
	}
	if len(b) < 2 {
		return nil, ErrTruncatedNonce
	}
	nonceLen := int(b[1])
	if nonceLen < minNonceLen {
		return nil, ErrNonceTooShort
	}
	off := 2
	if len(b) < off+nonceLen {
		return nil, ErrTruncatedNonce
	}
	nonce := b[off : off+nonceLen]
	off += nonceLen

	if len(b) < off+1 {
		return nil, ErrTruncatedPayload
	}
	payloadLen := int(b[off])
	if payloadLen > maxPayloadLen {
		return nil, ErrPayloadTooLong
	}
	off++
	if len(b) < off+payloadLen {
		return nil, ErrTruncatedPayload
	}
	payload := b[off : off+payloadLen]
	off += payloadLen

	mac := b[off:]
	if len(mac) < minMacLen {
		return nil, ErrMacTooShort
	}
	return &envelope{nonce: nonce, payload: payload, signed: b[:off], mac: mac}, nil
}

func mac(key []byte, prefix string, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(prefix))
	h.Write(data)
	return h.Sum(nil)
}

// open authenticates the envelope and returns the decrypted payload.
func (e *envelope) open(key []byte) ([]byte, error) {
	expected := mac(key, dataPrefix, e.signed)
	if len(e.mac) > len(expected) || !hmac.Equal(e.mac, expected[:len(e.mac)]) {
		return nil, ErrMacInvalid
	}

	secret := mac(key, roundPrefix, e.nonce)
	plain := make([]byte, len(e.payload))
	for i := range e.payload {
		plain[i] = e.payload[i] ^ secret[i]
	}
	return plain, nil
}

func decodeXor(key, blob []byte) (Payload, error) {
	env, err := parseEnvelope(blob)
	if err != nil {
		return Payload{}, err
	}
	plain, err := env.open(key)
	if err != nil {
		return Payload{}, err
	}

	pin, n, ok := readCompactSize(plain)
	if !ok {
		return Payload{}, fmt.Errorf("%w: pin", ErrMalformedPlaintext)
	}
	cents, _, ok := readCompactSize(plain[n:])
	if !ok {
		return Payload{}, fmt.Errorf("%w: amount", ErrMalformedPlaintext)
	}
	if pin > math.MaxInt64 {
		return Payload{}, fmt.Errorf("%w: pin out of range", ErrMalformedPlaintext)
	}
	return Payload{PIN: int64(pin), Amount: decimalFromUint(cents)}, nil
}

func decimalFromUint(v uint64) decimal.Decimal {
	if v <= math.MaxInt64 {
		return decimal.NewFromInt(int64(v))
	}
	return decimal.RequireFromString(fmt.Sprintf("%d", v))
}

// SealXor builds an authenticated XOR envelope carrying pin and cents.
// macLen truncates the tag and must be between 8 and 32.
func SealXor(key, nonce []byte, pin, cents uint64, macLen int) ([]byte, error) {
	if len(nonce) < minNonceLen || len(nonce) > math.MaxUint8 {
		return nil, ErrNonceTooShort
	}
	if macLen < minMacLen || macLen > sha256.Size {
		return nil, ErrMacTooShort
	}

	plain := appendCompactSize(nil, pin)
	plain = appendCompactSize(plain, cents)
	if len(plain) > maxPayloadLen {
		return nil, ErrPayloadTooLong
	}

	secret := mac(key, roundPrefix, nonce)
	blob := []byte{xorVersion, byte(len(nonce))}
	blob = append(blob, nonce...)
	blob = append(blob, byte(len(plain)))
	for i := range plain {
		blob = append(blob, plain[i]^secret[i])
	}
	tag := mac(key, dataPrefix, blob)
	return append(blob, tag[:macLen]...), nil
}
