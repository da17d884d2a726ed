package dto

import (
	"time"

	"lnpos-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateTerminalRequest is the request body for terminal creation.
type CreateTerminalRequest struct {
	Title    string          `json:"title" binding:"required,min=1,max=100"`
	Wallet   string          `json:"wallet" binding:"required,max=64,safe_id"`
	Currency string          `json:"currency" binding:"required,currency"`
	Markup   decimal.Decimal `json:"markup"`
	Scheme   string          `json:"scheme" binding:"required,scheme"`
	Device   string          `json:"device" binding:"omitempty,device"`
}

// UpdateTerminalRequest changes the mutable terminal fields. Absent fields
// are left alone.
type UpdateTerminalRequest struct {
	Title    *string          `json:"title,omitempty" binding:"omitempty,min=1,max=100"`
	Wallet   *string          `json:"wallet,omitempty" binding:"omitempty,max=64,safe_id"`
	Currency *string          `json:"currency,omitempty" binding:"omitempty,currency"`
	Markup   *decimal.Decimal `json:"markup,omitempty"`
}

// TerminalResponse is the admin view of a terminal. The key never appears.
type TerminalResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Wallet    string    `json:"wallet"`
	Currency  string    `json:"currency"`
	Markup    string    `json:"markup"`
	Scheme    string    `json:"scheme"`
	Device    string    `json:"device"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatedTerminalResponse includes the plaintext key. It is returned once.
type CreatedTerminalResponse struct {
	TerminalResponse
	Key string `json:"key"`
	// LnurlBase is the URL the terminal firmware is configured with.
	LnurlBase string `json:"lnurl_base"`
}

// NewTerminalResponse maps a domain terminal to its admin view.
func NewTerminalResponse(t *domain.Terminal) TerminalResponse {
	return TerminalResponse{
		ID:        t.ID,
		Title:     t.Title,
		Wallet:    t.Wallet,
		Currency:  t.Currency,
		Markup:    t.Markup.String(),
		Scheme:    t.Scheme.String(),
		Device:    string(t.Device),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// PaymentResponse is the reporting view of a payment. It has no PIN field.
type PaymentResponse struct {
	ID           string  `json:"id"`
	TerminalID   string  `json:"terminal_id"`
	Kind         string  `json:"kind"`
	State        string  `json:"state"`
	Sats         int64   `json:"sats"`
	PaymentHash  *string `json:"payment_hash,omitempty"`
	FiatAmount   *string `json:"fiat_amount,omitempty"`
	FiatCurrency *string `json:"fiat_currency,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// NewPaymentResponse maps a domain payment to its reporting view.
func NewPaymentResponse(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:           p.ID,
		TerminalID:   p.TerminalID,
		Kind:         string(p.Kind),
		State:        string(p.State()),
		Sats:         int64(p.Sats),
		PaymentHash:  p.PaymentHash,
		FiatCurrency: p.FiatCurrency,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
	if p.FiatAmount != nil {
		s := p.FiatAmount.String()
		resp.FiatAmount = &s
	}
	return resp
}

// PaymentListQuery is the query string of the payments report.
type PaymentListQuery struct {
	TerminalID string `form:"terminal_id" binding:"omitempty,max=64,safe_id"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// PaymentListResponse wraps the payments report.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Count    int               `json:"count"`
}

// --- LNURL documents ---

// PayRequest is the LUD-06 descriptor returned by the quote route.
type PayRequest struct {
	Tag         string `json:"tag"`
	Callback    string `json:"callback"`
	MinSendable int64  `json:"minSendable"`
	MaxSendable int64  `json:"maxSendable"`
	Metadata    string `json:"metadata"`
}

// WithdrawRequest is the LUD-03 descriptor returned for ATM terminals.
type WithdrawRequest struct {
	Tag                string `json:"tag"`
	Callback           string `json:"callback"`
	K1                 string `json:"k1"`
	MinWithdrawable    int64  `json:"minWithdrawable"`
	MaxWithdrawable    int64  `json:"maxWithdrawable"`
	DefaultDescription string `json:"defaultDescription"`
}

// SuccessAction points the wallet at the PIN page.
type SuccessAction struct {
	Tag         string `json:"tag"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// InvoiceResponse is the pay callback answer.
type InvoiceResponse struct {
	PR            string        `json:"pr"`
	SuccessAction SuccessAction `json:"successAction"`
	Routes        []string      `json:"routes"`
}

// WithdrawCallbackQuery is the ATM callback query string. Exactly one of PR
// and Address must be set.
type WithdrawCallbackQuery struct {
	K1      string `form:"k1" binding:"required"`
	PR      string `form:"pr"`
	Address string `form:"address"`
}
