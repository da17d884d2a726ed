package lightning

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"

	"lnpos-gateway/internal/core/ports"
)

// Client implements ports.InvoiceIssuer against an LNbits-style wallet API.
type Client struct {
	api
}

// NewClient creates an invoice issuer client.
func NewClient(baseURL, apiKey string, httpClient HTTPClient) *Client {
	return &Client{api: newAPI(baseURL, apiKey, httpClient)}
}

type createInvoiceRequest struct {
	Out             bool                   `json:"out"`
	Wallet          string                 `json:"wallet"`
	Amount          int64                  `json:"amount"`
	Memo            string                 `json:"memo"`
	DescriptionHash string                 `json:"description_hash,omitempty"`
	Extra           map[string]interface{} `json:"extra,omitempty"`
}

type payInvoiceRequest struct {
	Out    bool                   `json:"out"`
	Wallet string                 `json:"wallet"`
	Bolt11 string                 `json:"bolt11"`
	Max    int64                  `json:"max_sat,omitempty"`
	Extra  map[string]interface{} `json:"extra,omitempty"`
}

type paymentResponse struct {
	PaymentHash    string `json:"payment_hash"`
	PaymentRequest string `json:"payment_request"`
	Bolt11         string `json:"bolt11"`
}

// CreateInvoice issues an inbound invoice committed to req.DescriptionHash.
func (c *Client) CreateInvoice(ctx context.Context, req ports.InvoiceRequest) (*ports.Invoice, error) {
	var resp paymentResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/payments", createInvoiceRequest{
		Wallet:          req.Wallet,
		Amount:          int64(req.Amount),
		Memo:            req.Memo,
		DescriptionHash: hex.EncodeToString(req.DescriptionHash),
		Extra:           req.Extra,
	}, &resp)
	if err != nil {
		return nil, err
	}

	pr := resp.PaymentRequest
	if pr == "" {
		pr = resp.Bolt11
	}
	if resp.PaymentHash == "" || pr == "" {
		return nil, fmt.Errorf("%w: invoice response without hash or request", ports.ErrUpstreamUnavailable)
	}
	return &ports.Invoice{PaymentHash: resp.PaymentHash, PaymentRequest: pr}, nil
}

// CheckSettlement reports whether the invoice with paymentHash was paid.
func (c *Client) CheckSettlement(ctx context.Context, paymentHash string) (bool, error) {
	var resp struct {
		Paid bool `json:"paid"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/payments/"+url.PathEscape(paymentHash), nil, &resp); err != nil {
		return false, err
	}
	return resp.Paid, nil
}

// PayInvoice pays a bolt11 invoice from the terminal's wallet.
func (c *Client) PayInvoice(ctx context.Context, req ports.PayoutRequest) (*ports.Invoice, error) {
	var resp paymentResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/payments", payInvoiceRequest{
		Out:    true,
		Wallet: req.Wallet,
		Bolt11: req.Bolt11,
		Max:    int64(req.MaxAmount),
		Extra:  req.Extra,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.PaymentHash == "" {
		return nil, fmt.Errorf("%w: payout response without hash", ports.ErrUpstreamUnavailable)
	}
	return &ports.Invoice{PaymentHash: resp.PaymentHash, PaymentRequest: req.Bolt11}, nil
}

// DecodeInvoice returns the hash and amount of a bolt11 invoice.
func (c *Client) DecodeInvoice(ctx context.Context, bolt11 string) (*ports.DecodedInvoice, error) {
	var resp struct {
		PaymentHash string `json:"payment_hash"`
		AmountMsat  int64  `json:"amount_msat"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/payments/decode", map[string]string{"data": bolt11}, &resp); err != nil {
		return nil, err
	}
	return &ports.DecodedInvoice{PaymentHash: resp.PaymentHash, AmountMsat: resp.AmountMsat}, nil
}
