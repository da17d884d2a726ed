package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentKind distinguishes pay requests from ATM withdraw requests.
type PaymentKind string

const (
	PaymentKindPay      PaymentKind = "pay"
	PaymentKindWithdraw PaymentKind = "withdraw"
)

// PaymentState is derived from the stored hash, never stored itself.
type PaymentState string

const (
	PaymentStateQuoted      PaymentState = "QUOTED"
	PaymentStateInvoiced    PaymentState = "INVOICED"
	PaymentStateSwapPending PaymentState = "SWAP_PENDING"
	PaymentStateSwapFailed  PaymentState = "SWAP_FAILED"
)

// Transitional payment hash values used while an outward payment is in flight.
const (
	SentinelPending = "pending"
	SentinelError   = "error"
)

var (
	ErrHashAlreadySet = errors.New("payment hash already set")
	ErrPayoutInFlight = errors.New("payout already in flight")
	ErrNotPending     = errors.New("payment is not pending")
	ErrEmptyHash      = errors.New("empty payment hash")
)

// Payment is one priced request created from a terminal token.
type Payment struct {
	ID           string           `json:"id"`
	TerminalID   string           `json:"terminal_id"`
	Kind         PaymentKind      `json:"kind"`
	Sats         Sats             `json:"sats"`
	PIN          int64            `json:"-"`
	PaymentHash  *string          `json:"payment_hash,omitempty"`
	Invoice      *string          `json:"-"`
	FiatAmount   *decimal.Decimal `json:"fiat_amount,omitempty"`
	FiatCurrency *string          `json:"fiat_currency,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// IsSentinel reports whether h is one of the transitional hash values.
func IsSentinel(h string) bool {
	return h == SentinelPending || h == SentinelError
}

// State derives the lifecycle state from the payment hash.
func (p *Payment) State() PaymentState {
	switch {
	case p.PaymentHash == nil:
		return PaymentStateQuoted
	case *p.PaymentHash == SentinelPending:
		return PaymentStateSwapPending
	case *p.PaymentHash == SentinelError:
		return PaymentStateSwapFailed
	default:
		return PaymentStateInvoiced
	}
}

// HasSettlementHash reports whether a real payment hash is attached.
func (p *Payment) HasSettlementHash() bool {
	return p.PaymentHash != nil && !IsSentinel(*p.PaymentHash)
}

// AttachPaymentHash records the hash of the invoice issued or paid for this
// request. Once a real hash is set it never changes; attaching the same
// hash again is a no-op.
func (p *Payment) AttachPaymentHash(hash, invoice string) error {
	if hash == "" || IsSentinel(hash) {
		return ErrEmptyHash
	}
	if p.HasSettlementHash() {
		if *p.PaymentHash == hash {
			return nil
		}
		return ErrHashAlreadySet
	}
	p.PaymentHash = &hash
	if invoice != "" {
		p.Invoice = &invoice
	}
	return nil
}

// MarkPending moves a withdraw into the in-flight state. A failed payout
// may be retried.
func (p *Payment) MarkPending() error {
	switch p.State() {
	case PaymentStateQuoted, PaymentStateSwapFailed:
		s := SentinelPending
		p.PaymentHash = &s
		return nil
	case PaymentStateSwapPending:
		return ErrPayoutInFlight
	default:
		return ErrHashAlreadySet
	}
}

// MarkFailed records a failed payout so it can be retried.
func (p *Payment) MarkFailed() error {
	if p.State() != PaymentStateSwapPending {
		return ErrNotPending
	}
	s := SentinelError
	p.PaymentHash = &s
	return nil
}
