package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another AppError by code, so errors.Is(err, ErrAlreadyClaimed()) works.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Terminals (TRM) ----

func ErrTerminalNotFound(id string) *AppError {
	return New("TRM_001", fmt.Sprintf("lnpos %s not found on this server", id), http.StatusNotFound)
}

func ErrSchemeMismatch() *AppError {
	return New("TRM_002", "Terminal is not configured for this endpoint", http.StatusBadRequest)
}

// ---- LNURL protocol (LNP) ----

func ErrRequestNotFound() *AppError {
	return New("LNP_001", "lnpos_payment not found", http.StatusNotFound)
}

func ErrInvalidPayloadLength() *AppError {
	return New("LNP_002", "Invalid payload length", http.StatusBadRequest)
}

func ErrInvalidIVLength() *AppError {
	return New("LNP_002", "Invalid IV length", http.StatusBadRequest)
}

// ErrInvalidPayload is deliberately low-detail: it never says why decoding failed.
func ErrInvalidPayload() *AppError {
	return New("LNP_003", "Invalid payload", http.StatusBadRequest)
}

func ErrNotYourPayment() *AppError {
	return New("LNP_004", "Not your payment", http.StatusBadRequest)
}

func ErrAlreadyClaimed() *AppError {
	return New("LNP_005", "Payment already claimed", http.StatusBadRequest)
}

func ErrAlreadyRegistered() *AppError {
	return New("LNP_006", "Payment already registered", http.StatusConflict)
}

func ErrAmountMismatch() *AppError {
	return New("LNP_007", "Invoice amount does not match the quoted price", http.StatusBadRequest)
}

func ErrWrongRequestKind() *AppError {
	return New("LNP_008", "Request does not support this operation", http.StatusBadRequest)
}

// ---- Pricing (PRC) ----

func ErrPriceUnavailable() *AppError {
	return New("PRC_001", "Price fetch error", http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_005", "Not allowed to access this resource", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

func ErrUpstreamUnavailable(err error) *AppError {
	return Wrap("SYS_004", "Upstream service unavailable", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_002-style validation error.
func Validation(message string) *AppError {
	return New("PAY_002", message, http.StatusBadRequest)
}

// ErrNotFound is the generic not-found error for admin resources.
func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}
