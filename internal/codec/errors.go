package codec

import "errors"

// ErrInvalidPayload is the umbrella for every authentication and decoding
// failure. All the specific errors below wrap it.
var ErrInvalidPayload = errors.New("invalid payload")

// Structural length errors, reported before any decryption is attempted.
var (
	ErrInvalidPayloadLength = errors.New("invalid payload length")
	ErrInvalidIVLength      = errors.New("invalid iv length")
)

var (
	ErrUnsupportedScheme  = wrap("unsupported scheme")
	ErrMalformedEncoding  = wrap("malformed transport encoding")
	ErrBadKey             = wrap("unusable terminal key")
	ErrMalformedPlaintext = wrap("malformed plaintext")

	ErrUnsupportedVariant = wrap("unsupported envelope version")
	ErrNonceTooShort      = wrap("nonce too short")
	ErrTruncatedNonce     = wrap("truncated nonce")
	ErrPayloadTooLong     = wrap("payload too long")
	ErrTruncatedPayload   = wrap("truncated payload")
	ErrMacTooShort        = wrap("mac too short")
	ErrMacInvalid         = wrap("mac invalid")
)

type codecError struct {
	msg string
}

func (e *codecError) Error() string { return e.msg }

func (e *codecError) Unwrap() error { return ErrInvalidPayload }

func wrap(msg string) error {
	return &codecError{msg: msg}
}
