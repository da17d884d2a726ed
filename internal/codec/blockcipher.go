package codec

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var zeroIV = make([]byte, aes.BlockSize)

// decryptBlockCipher decrypts an AES-CBC payload and parses "<pin>:<amount>".
func decryptBlockCipher(key, ciphertext, iv []byte) (Payload, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return Payload{}, ErrInvalidPayloadLength
	}
	if len(iv) != aes.BlockSize {
		return Payload{}, ErrInvalidIVLength
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrBadKey, err)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	if i := bytes.IndexByte(plain, 0); i >= 0 {
		plain = plain[:i]
	}
	return parsePinAmount(plain)
}

func parsePinAmount(plain []byte) (Payload, error) {
	if !utf8.Valid(plain) {
		return Payload{}, fmt.Errorf("%w: not utf-8", ErrMalformedPlaintext)
	}
	text := string(plain)
	if strings.Count(text, ":") != 1 {
		return Payload{}, fmt.Errorf("%w: want exactly one separator", ErrMalformedPlaintext)
	}
	pinText, amountText, _ := strings.Cut(text, ":")

	pin, err := strconv.ParseInt(pinText, 10, 64)
	if err != nil || pin < 0 {
		return Payload{}, fmt.Errorf("%w: pin", ErrMalformedPlaintext)
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil || amount.IsNegative() {
		return Payload{}, fmt.Errorf("%w: amount", ErrMalformedPlaintext)
	}
	return Payload{PIN: pin, Amount: amount}, nil
}

// EncryptBlockCipher zero-pads "<pin>:<amount>" to the block size and
// encrypts it with AES-CBC. A nil iv means the all-zero IV.
func EncryptBlockCipher(key, iv []byte, p Payload) ([]byte, error) {
	if iv == nil {
		iv = zeroIV
	}
	if len(iv) != aes.BlockSize {
		return nil, ErrInvalidIVLength
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadKey, err)
	}

	plain := []byte(strconv.FormatInt(p.PIN, 10) + ":" + p.Amount.String())
	if pad := len(plain) % aes.BlockSize; pad != 0 {
		plain = append(plain, make([]byte, aes.BlockSize-pad)...)
	}

	out := make([]byte, len(plain))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, plain)
	return out, nil
}
