package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"lnpos-gateway/internal/codec"
	"lnpos-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

// EncryptionService seals terminal keys at rest (AES-256-GCM).
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// TokenService handles JWT token operations for the admin API.
type TokenService interface {
	Generate(subject string, wallets []string, admin bool) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Wallets []string
	Admin   bool
}

// Caller is the authenticated principal of an admin request.
type Caller struct {
	Subject string
	Wallets []string
	Admin   bool
}

// OwnsWallet reports whether the caller may act on terminals of wallet.
func (c Caller) OwnsWallet(wallet string) bool {
	for _, w := range c.Wallets {
		if w == wallet {
			return true
		}
	}
	return false
}

// --- Service Ports (Business Logic) ---

// PricingService turns a terminal amount into sats.
type PricingService interface {
	Quote(ctx context.Context, amount decimal.Decimal, currency string, markup decimal.Decimal) (*domain.Price, error)
}

// QuoteRequest is the quote-phase input taken from the terminal's URL.
type QuoteRequest struct {
	TerminalID string
	P          string
	IV         string
}

// QuoteResult is a priced payment and the terminal it belongs to.
type QuoteResult struct {
	Terminal *domain.Terminal
	Payment  *domain.Payment
}

// CallbackResult is the invoice issued for a quoted payment.
type CallbackResult struct {
	Terminal *domain.Terminal
	Payment  *domain.Payment
	Invoice  string
}

// WithdrawRequest is the ATM callback input. Exactly one of Invoice and
// Address is set.
type WithdrawRequest struct {
	PaymentID string
	K1        string
	Invoice   string
	Address   string
}

// LnurlService drives the quote, callback and withdraw phases.
type LnurlService interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error)
	Callback(ctx context.Context, paymentID string) (*CallbackResult, error)
	Withdraw(ctx context.Context, req WithdrawRequest) error
}

// LegacyError marks a quote failure for a terminal that expects plain HTTP
// error statuses instead of the LNURL error envelope.
type LegacyError struct {
	Err error
}

func (e *LegacyError) Error() string { return e.Err.Error() }

func (e *LegacyError) Unwrap() error { return e.Err }

// IsLegacy reports whether err carries a LegacyError.
func IsLegacy(err error) bool {
	var le *LegacyError
	return errors.As(err, &le)
}

// PinResult is what the PIN page may show.
type PinResult struct {
	Title string
	Sats  domain.Sats
	Paid  bool
	PIN   int64 // zero unless Paid
}

// PinService reveals a PIN once the payment settled.
type PinService interface {
	Reveal(ctx context.Context, paymentID string) (*PinResult, error)
}

// CreateTerminalInput holds validated input for terminal creation.
type CreateTerminalInput struct {
	Title    string
	Wallet   string
	Currency string
	Markup   decimal.Decimal
	Scheme   codec.Scheme
	Device   domain.Device
}

// CreatedTerminal carries the plaintext key, shown only at creation.
type CreatedTerminal struct {
	Terminal *domain.Terminal
	Key      string
}

// TerminalService is terminal administration.
type TerminalService interface {
	Create(ctx context.Context, caller Caller, in CreateTerminalInput) (*CreatedTerminal, error)
	Get(ctx context.Context, caller Caller, id string) (*domain.Terminal, error)
	List(ctx context.Context, caller Caller) ([]domain.Terminal, error)
	Update(ctx context.Context, caller Caller, id string, upd domain.TerminalUpdate) (*domain.Terminal, error)
	Delete(ctx context.Context, caller Caller, id string) error
}

// PaymentListParams filters the payments report.
type PaymentListParams struct {
	TerminalID string // optional
	Limit      int
}

// ReportingService lists payments of the caller's terminals.
type ReportingService interface {
	ListPayments(ctx context.Context, caller Caller, params PaymentListParams) ([]domain.Payment, error)
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
