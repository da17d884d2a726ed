package domain

import (
	"crypto/sha256"
	"encoding/json"
	"strings"
	"time"

	"lnpos-gateway/internal/codec"

	"github.com/shopspring/decimal"
)

// Device says which LNURL flow a terminal drives.
type Device string

const (
	DevicePOS Device = "pos"
	DeviceATM Device = "atm"
)

// Terminal is a merchant-configured LNPoS device.
type Terminal struct {
	ID        string          `json:"id"`
	KeySealed string          `json:"-"` // AES-256-GCM sealed terminal key
	Title     string          `json:"title"`
	Wallet    string          `json:"wallet"`
	Currency  string          `json:"currency"`
	Markup    decimal.Decimal `json:"markup"` // percent; negative is a discount
	Scheme    codec.Scheme    `json:"scheme"`
	Device    Device          `json:"device"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IsNative reports whether amounts are already in sats.
func (t *Terminal) IsNative() bool {
	return strings.EqualFold(t.Currency, NativeCurrency)
}

// PaymentKind returns the kind of request the terminal's quotes create.
func (t *Terminal) PaymentKind() PaymentKind {
	if t.Device == DeviceATM {
		return PaymentKindWithdraw
	}
	return PaymentKindPay
}

// LnurlPayMetadata is the metadata string advertised in payRequest
// descriptors. The invoice description hash is computed over these exact bytes.
func (t *Terminal) LnurlPayMetadata() string {
	b, _ := json.Marshal([][]string{{"text/plain", t.Title}})
	return string(b)
}

// DescriptionHash is sha256 of LnurlPayMetadata.
func (t *Terminal) DescriptionHash() []byte {
	sum := sha256.Sum256([]byte(t.LnurlPayMetadata()))
	return sum[:]
}

// TerminalUpdate lists the only fields an update may change.
type TerminalUpdate struct {
	Title    *string
	Wallet   *string
	Currency *string
	Markup   *decimal.Decimal
}

// Apply copies the set fields onto t.
func (u TerminalUpdate) Apply(t *Terminal) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Wallet != nil {
		t.Wallet = *u.Wallet
	}
	if u.Currency != nil {
		t.Currency = *u.Currency
	}
	if u.Markup != nil {
		t.Markup = *u.Markup
	}
}
