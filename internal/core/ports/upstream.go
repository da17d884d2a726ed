package ports

//go:generate mockgen -source=upstream.go -destination=mocks/mock_upstream.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"lnpos-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

var (
	// ErrRateUnavailable means the oracle answered but has no usable rate.
	ErrRateUnavailable = errors.New("rate unavailable")
	// ErrUpstreamUnavailable means a collaborator could not be reached.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrInvoiceRejected means the issuer refused the request.
	ErrInvoiceRejected = errors.New("invoice rejected")
)

// RateOracle converts fiat amounts in major units to sats.
type RateOracle interface {
	Convert(ctx context.Context, fiat decimal.Decimal, currency string) (decimal.Decimal, error)
}

// RateCache holds recently fetched BTC prices per currency.
type RateCache interface {
	Get(ctx context.Context, currency string) (decimal.Decimal, bool, error)
	Set(ctx context.Context, currency string, price decimal.Decimal, ttl time.Duration) error
}

// InvoiceRequest describes an inbound invoice to create.
type InvoiceRequest struct {
	Wallet          string
	Amount          domain.Sats
	Memo            string
	DescriptionHash []byte
	Extra           map[string]interface{}
}

// Invoice is an issued or paid invoice.
type Invoice struct {
	PaymentHash    string
	PaymentRequest string
}

// DecodedInvoice is the part of a bolt11 invoice the withdraw flow checks.
type DecodedInvoice struct {
	PaymentHash string
	AmountMsat  int64
}

// PayoutRequest describes an outward payment.
type PayoutRequest struct {
	Wallet    string
	Bolt11    string
	MaxAmount domain.Sats
	Extra     map[string]interface{}
}

// InvoiceIssuer is the settlement collaborator.
type InvoiceIssuer interface {
	CreateInvoice(ctx context.Context, req InvoiceRequest) (*Invoice, error)
	CheckSettlement(ctx context.Context, paymentHash string) (bool, error)
	PayInvoice(ctx context.Context, req PayoutRequest) (*Invoice, error)
	DecodeInvoice(ctx context.Context, bolt11 string) (*DecodedInvoice, error)
}

// SwapRequest describes an on-chain payout through a swap provider.
type SwapRequest struct {
	Wallet  string
	Address string
	Amount  domain.Sats
	Extra   map[string]interface{}
}

// SwapProvider pays sats out to an on-chain address.
type SwapProvider interface {
	// SwapOut returns the identifier of the swap, used as the payment hash.
	SwapOut(ctx context.Context, req SwapRequest) (string, error)
}

// NonceStore reserves payment identities so a token cannot be quoted twice.
type NonceStore interface {
	// CheckAndSet returns true if the nonce was free and is now reserved.
	CheckAndSet(ctx context.Context, terminalID string, nonce string, ttl time.Duration) (bool, error)
}
