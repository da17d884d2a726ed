package codec

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testKey   = []byte("0123456789abcdefghijklmnopqrstuv") // 32 chars, AES-256
	testNonce = []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04}
	testIV    = []byte("fedcba9876543210")
)

func payload(pin int64, amount string) Payload {
	return Payload{PIN: pin, Amount: decimal.RequireFromString(amount)}
}

func TestRoundTrip_AllSchemes(t *testing.T) {
	cases := []Payload{
		payload(0, "0"),
		payload(4242, "500"),
		payload(252, "252"),
		payload(253, "253"),
		payload(65535, "65536"),
		payload(1234, "4294967296"),
	}

	for _, scheme := range Schemes {
		for _, want := range cases {
			t.Run(scheme.String()+"/"+want.Amount.String(), func(t *testing.T) {
				nonce := testNonce
				if scheme == BlockCipherHex {
					nonce = testIV
				}
				p, iv, err := Encode(scheme, testKey, nonce, want)
				require.NoError(t, err)

				require.NoError(t, Precheck(scheme, p, iv))
				got, err := Decode(scheme, testKey, p, iv)
				require.NoError(t, err)
				assert.Equal(t, want.PIN, got.PIN)
				assert.True(t, want.Amount.Equal(got.Amount), "amount %s != %s", want.Amount, got.Amount)
			})
		}
	}
}

func TestRoundTrip_BlockCipherDecimalAmount(t *testing.T) {
	want := payload(77, "12.5")
	p, iv, err := Encode(BlockCipherHex, testKey, testIV, want)
	require.NoError(t, err)

	got, err := Decode(BlockCipherHex, testKey, p, iv)
	require.NoError(t, err)
	assert.Equal(t, "12.5", got.Amount.String())
}

func TestEncode_XorRejectsFractionalCents(t *testing.T) {
	_, _, err := Encode(AuthenticatedXor, testKey, testNonce, payload(1, "1.5"))
	assert.ErrorIs(t, err, ErrMalformedPlaintext)
}

func TestDecode_WrongKeyIsInvalidPayload(t *testing.T) {
	otherKey := []byte("vutsrqponmlkjihgfedcba9876543210")

	for _, scheme := range Schemes {
		t.Run(scheme.String(), func(t *testing.T) {
			nonce := testNonce
			if scheme == BlockCipherHex {
				nonce = testIV
			}
			p, iv, err := Encode(scheme, testKey, nonce, payload(4242, "500"))
			require.NoError(t, err)

			_, err = Decode(scheme, otherKey, p, iv)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestXor_MacBitFlipsAreRejected(t *testing.T) {
	blob, err := SealXor(testKey, testNonce, 4242, 500, 16)
	require.NoError(t, err)
	macStart := len(blob) - 16

	for i := macStart; i < len(blob); i++ {
		for bit := 0; bit < 8; bit++ {
			tampered := append([]byte(nil), blob...)
			tampered[i] ^= 1 << bit
			_, err := decodeXor(testKey, tampered)
			require.ErrorIs(t, err, ErrMacInvalid, "byte %d bit %d", i, bit)
		}
	}
}

func TestXor_PayloadBitFlipsNeverValidate(t *testing.T) {
	blob, err := SealXor(testKey, testNonce, 4242, 500, DefaultMacLen)
	require.NoError(t, err)

	payloadStart := 2 + len(testNonce) + 1
	payloadLen := int(blob[payloadStart-1])

	for i := payloadStart; i < payloadStart+payloadLen; i++ {
		for bit := 0; bit < 8; bit++ {
			tampered := append([]byte(nil), blob...)
			tampered[i] ^= 1 << bit
			_, err := decodeXor(testKey, tampered)
			require.ErrorIs(t, err, ErrMacInvalid, "byte %d bit %d", i, bit)
		}
	}
}

func TestXor_FullLengthMacAccepted(t *testing.T) {
	blob, err := SealXor(testKey, testNonce, 9, 10, 32)
	require.NoError(t, err)

	got, err := decodeXor(testKey, blob)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.PIN)
}

func TestXor_MacLongerThanDigestIsInvalid(t *testing.T) {
	blob, err := SealXor(testKey, testNonce, 9, 10, 32)
	require.NoError(t, err)

	_, err = decodeXor(testKey, append(blob, 0x00))
	assert.ErrorIs(t, err, ErrMacInvalid)
}

// rawEnvelope assembles an envelope without any validation.
func rawEnvelope(version byte, nonce []byte, declaredLen byte, payload, mac []byte) []byte {
	b := []byte{version, byte(len(nonce))}
	b = append(b, nonce...)
	b = append(b, declaredLen)
	b = append(b, payload...)
	return append(b, mac...)
}

func TestXor_ValidationOrder(t *testing.T) {
	mac8 := make([]byte, 8)
	short := make([]byte, 7)

	tests := []struct {
		name string
		blob []byte
		want error
	}{
		{"empty", nil, ErrUnsupportedVariant},
		{"version 2", rawEnvelope(2, testNonce, 2, []byte{1, 2}, mac8), ErrUnsupportedVariant},
		{"version 2 beats short nonce", rawEnvelope(2, short, 2, []byte{1, 2}, mac8), ErrUnsupportedVariant},
		{"only version byte", []byte{1}, ErrTruncatedNonce},
		{"nonce 7 bytes", rawEnvelope(1, short, 2, []byte{1, 2}, mac8), ErrNonceTooShort},
		{"nonce declared longer than blob", []byte{1, 20, 1, 2, 3, 4, 5, 6, 7, 8}, ErrTruncatedNonce},
		{"no payload length byte", append([]byte{1, 8}, testNonce...), ErrTruncatedPayload},
		{"payload 33 bytes", rawEnvelope(1, testNonce, 33, make([]byte, 33), mac8), ErrPayloadTooLong},
		{"too long beats short mac", rawEnvelope(1, testNonce, 33, nil, nil), ErrPayloadTooLong},
		{"payload truncated", rawEnvelope(1, testNonce, 10, []byte{1, 2, 3}, nil), ErrTruncatedPayload},
		{"mac 7 bytes", rawEnvelope(1, testNonce, 2, []byte{1, 2}, make([]byte, 7)), ErrMacTooShort},
		{"mac wrong", rawEnvelope(1, testNonce, 2, []byte{1, 2}, mac8), ErrMacInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeXor(testKey, tt.blob)
			require.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestXor_PayloadOf32BytesAllowed(t *testing.T) {
	env, err := parseEnvelope(rawEnvelope(1, testNonce, 32, make([]byte, 32), make([]byte, 8)))
	require.NoError(t, err)
	assert.Len(t, env.payload, 32)
}

func TestXor_MalformedPlaintext(t *testing.T) {
	// A correctly authenticated envelope whose plaintext is a lone escape byte.
	secret := mac(testKey, roundPrefix, testNonce)
	blob := []byte{1, byte(len(testNonce))}
	blob = append(blob, testNonce...)
	blob = append(blob, 1, 0xfd^secret[0])
	tag := mac(testKey, dataPrefix, blob)
	blob = append(blob, tag[:8]...)

	_, err := decodeXor(testKey, blob)
	assert.ErrorIs(t, err, ErrMalformedPlaintext)
}

func TestXor_TrailingPlaintextBytesIgnored(t *testing.T) {
	secret := mac(testKey, roundPrefix, testNonce)
	plain := []byte{7, 8, 0xaa, 0xbb}
	blob := []byte{1, byte(len(testNonce))}
	blob = append(blob, testNonce...)
	blob = append(blob, byte(len(plain)))
	for i := range plain {
		blob = append(blob, plain[i]^secret[i])
	}
	tag := mac(testKey, dataPrefix, blob)
	blob = append(blob, tag[:8]...)

	got, err := decodeXor(testKey, blob)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.PIN)
	assert.Equal(t, "8", got.Amount.String())
}

func TestXorB64_AcceptsUnpaddedAndPadded(t *testing.T) {
	blob, err := SealXor(testKey, testNonce, 4242, 500, DefaultMacLen)
	require.NoError(t, err)

	unpadded := EncodeXorB64(blob)
	assert.NotContains(t, unpadded, "=")
	padded := base64.URLEncoding.EncodeToString(blob)

	for _, p := range []string{unpadded, padded} {
		got, err := Decode(AuthenticatedXorB64, testKey, p, "")
		require.NoError(t, err)
		assert.Equal(t, int64(4242), got.PIN)
	}
}

func TestPrecheck_LengthBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		scheme Scheme
		p, iv  string
		want   error
	}{
		{"hex 15 bytes", BlockCipherHex, strings.Repeat("ab", 15), hex.EncodeToString(testIV), ErrInvalidPayloadLength},
		{"hex 16 bytes", BlockCipherHex, strings.Repeat("ab", 16), hex.EncodeToString(testIV), nil},
		{"hex 17 bytes", BlockCipherHex, strings.Repeat("ab", 17), hex.EncodeToString(testIV), ErrInvalidPayloadLength},
		{"hex empty", BlockCipherHex, "", hex.EncodeToString(testIV), ErrInvalidPayloadLength},
		{"hex iv 15 bytes", BlockCipherHex, strings.Repeat("ab", 16), strings.Repeat("cd", 15), ErrInvalidIVLength},
		{"hex iv missing", BlockCipherHex, strings.Repeat("ab", 16), "", ErrInvalidIVLength},
		{"b64 20 bytes", BlockCipherB64, base64.RawURLEncoding.EncodeToString(make([]byte, 20)), "", ErrInvalidPayloadLength},
		{"b64 32 bytes", BlockCipherB64, base64.RawURLEncoding.EncodeToString(make([]byte, 32)), "", nil},
		{"b64 with iv", BlockCipherB64, base64.RawURLEncoding.EncodeToString(make([]byte, 32)), "00", ErrInvalidIVLength},
		{"xor odd hex", AuthenticatedXor, "abc", "", ErrInvalidPayloadLength},
		{"xor empty", AuthenticatedXor, "", "", ErrInvalidPayloadLength},
		{"xor b64 empty", AuthenticatedXorB64, "", "", ErrInvalidPayloadLength},
		{"unknown scheme", Scheme("rot13"), "abcd", "", ErrUnsupportedScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Precheck(tt.scheme, tt.p, tt.iv)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_LengthErrorIsNotInvalidPayload(t *testing.T) {
	_, err := Decode(BlockCipherHex, testKey, strings.Repeat("ab", 15), hex.EncodeToString(testIV))
	require.ErrorIs(t, err, ErrInvalidPayloadLength)
	assert.False(t, errors.Is(err, ErrInvalidPayload))
}

func TestDecode_BadKeySize(t *testing.T) {
	p, iv, err := Encode(BlockCipherHex, testKey, testIV, payload(1, "1"))
	require.NoError(t, err)

	_, err = Decode(BlockCipherHex, []byte("short"), p, iv)
	assert.ErrorIs(t, err, ErrBadKey)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestParsePinAmount(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
		pin     int64
		amount  string
	}{
		{"4242:500", false, 4242, "500"},
		{"1:0.25", false, 1, "0.25"},
		{"4242", true, 0, ""},
		{"1:2:3", true, 0, ""},
		{"abc:12", true, 0, ""},
		{"12:abc", true, 0, ""},
		{":12", true, 0, ""},
		{"12:-1", true, 0, ""},
		{"-5:1", true, 0, ""},
		{"\xff\xfe:1", true, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePinAmount([]byte(tt.in))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedPlaintext)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pin, got.PIN)
			assert.Equal(t, tt.amount, got.Amount.String())
		})
	}
}

func TestIdentity(t *testing.T) {
	t.Run("block cipher hex uses lower-case iv", func(t *testing.T) {
		id, pol, err := Identity(BlockCipherHex, "00", "ABCDEF0123456789ABCDEF0123456789")
		require.NoError(t, err)
		assert.Equal(t, "abcdef0123456789abcdef0123456789", id)
		assert.Equal(t, PolicyStrict, pol)
	})

	t.Run("block cipher hex rejects non-hex iv", func(t *testing.T) {
		_, _, err := Identity(BlockCipherHex, "00", strings.Repeat("zz", 16))
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("block cipher b64 uses payload without padding", func(t *testing.T) {
		id, pol, err := Identity(BlockCipherB64, "abcd==", "")
		require.NoError(t, err)
		assert.Equal(t, "abcd", id)
		assert.Equal(t, PolicyReuse, pol)
	})

	t.Run("xor encodings share the nonce identity", func(t *testing.T) {
		blob, err := SealXor(testKey, testNonce, 1, 2, DefaultMacLen)
		require.NoError(t, err)

		idHex, _, err := Identity(AuthenticatedXor, hex.EncodeToString(blob), "")
		require.NoError(t, err)
		idB64, pol, err := Identity(AuthenticatedXorB64, EncodeXorB64(blob), "")
		require.NoError(t, err)

		assert.Equal(t, "deadbeef01020304", idHex)
		assert.Equal(t, idHex, idB64)
		assert.Equal(t, PolicyStrict, pol)
	})

	t.Run("xor structural failure", func(t *testing.T) {
		_, _, err := Identity(AuthenticatedXor, "0207", "")
		assert.ErrorIs(t, err, ErrUnsupportedVariant)
	})
}

func TestBlockCipherB64_OneSpellingPerCiphertext(t *testing.T) {
	p, _, err := Encode(BlockCipherB64, testKey, nil, payload(7, "100"))
	require.NoError(t, err)
	canonical := strings.TrimRight(p, "=")

	// A 16-byte block leaves unused bits in the last character; set one of them.
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	last := strings.IndexByte(alphabet, canonical[len(canonical)-1])
	require.GreaterOrEqual(t, last, 0)
	variant := canonical[:len(canonical)-1] + string(alphabet[last^1])
	require.NotEqual(t, canonical, variant)

	id, _, err := Identity(BlockCipherB64, p, "")
	require.NoError(t, err)
	assert.Equal(t, canonical, id)

	_, _, err = Identity(BlockCipherB64, variant, "")
	assert.ErrorIs(t, err, ErrInvalidPayload)
	_, err = Decode(BlockCipherB64, testKey, variant, "")
	assert.ErrorIs(t, err, ErrInvalidPayload)

	got, err := Decode(BlockCipherB64, testKey, canonical, "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.PIN)
}

func TestBlockCipherB64_ZeroIVIsDeterministic(t *testing.T) {
	p1, _, err := Encode(BlockCipherB64, testKey, nil, payload(1, "100"))
	require.NoError(t, err)
	p2, _, err := Encode(BlockCipherB64, testKey, nil, payload(1, "100"))
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.True(t, BlockCipherB64.Deprecated())
}

func TestCompactSize(t *testing.T) {
	tests := []struct {
		v    uint64
		size int
	}{
		{0, 1},
		{252, 1},
		{253, 3},
		{math.MaxUint16, 3},
		{math.MaxUint16 + 1, 5},
		{math.MaxUint32, 5},
		{math.MaxUint32 + 1, 9},
		{math.MaxUint64, 9},
	}

	for _, tt := range tests {
		enc := appendCompactSize(nil, tt.v)
		assert.Len(t, enc, tt.size, "value %d", tt.v)

		got, n, ok := readCompactSize(enc)
		require.True(t, ok)
		assert.Equal(t, tt.size, n)
		assert.Equal(t, tt.v, got)
	}

	_, _, ok := readCompactSize([]byte{0xfe, 1, 2})
	assert.False(t, ok)
}

func TestParseScheme(t *testing.T) {
	for _, s := range Schemes {
		got, err := ParseScheme(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseScheme("aes-ecb")
	assert.Error(t, err)

	assert.True(t, AuthenticatedXor.Legacy())
	assert.False(t, BlockCipherHex.Legacy())
	assert.True(t, BlockCipherHex.NeedsIV())
}
