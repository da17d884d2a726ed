package lightning

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lnpos-gateway/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	apiKey string
	body   map[string]interface{}
}

func backend(t *testing.T, status int, reply string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.apiKey = r.Header.Get("X-Api-Key")
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&rec.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestClient_CreateInvoice(t *testing.T) {
	srv, rec := backend(t, http.StatusCreated, `{"payment_hash":"ab12","payment_request":"lnbc5u1p..."}`)
	c := NewClient(srv.URL, "secret", srv.Client())

	inv, err := c.CreateInvoice(context.Background(), ports.InvoiceRequest{
		Wallet:          "wallet-1",
		Amount:          500,
		Memo:            "Corner Shop",
		DescriptionHash: []byte{0xde, 0xad},
		Extra:           map[string]interface{}{"tag": "lnpos"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ab12", inv.PaymentHash)
	assert.Equal(t, "lnbc5u1p...", inv.PaymentRequest)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/v1/payments", rec.path)
	assert.Equal(t, "secret", rec.apiKey)
	assert.Equal(t, false, rec.body["out"])
	assert.Equal(t, float64(500), rec.body["amount"])
	assert.Equal(t, "dead", rec.body["description_hash"])
	assert.Equal(t, "lnpos", rec.body["extra"].(map[string]interface{})["tag"])
}

func TestClient_CreateInvoice_Bolt11Field(t *testing.T) {
	srv, _ := backend(t, http.StatusOK, `{"payment_hash":"ab12","bolt11":"lnbc1..."}`)
	c := NewClient(srv.URL, "", srv.Client())

	inv, err := c.CreateInvoice(context.Background(), ports.InvoiceRequest{Wallet: "w", Amount: 1})
	require.NoError(t, err)
	assert.Equal(t, "lnbc1...", inv.PaymentRequest)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		reply  string
		want   error
	}{
		{"rejected", http.StatusBadRequest, `{"detail":"amount too small"}`, ports.ErrInvoiceRejected},
		{"unauthorized", http.StatusUnauthorized, `{}`, ports.ErrInvoiceRejected},
		{"backend down", http.StatusInternalServerError, ``, ports.ErrUpstreamUnavailable},
		{"missing fields", http.StatusOK, `{}`, ports.ErrUpstreamUnavailable},
		{"not json", http.StatusOK, `oops`, ports.ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := backend(t, tt.status, tt.reply)
			c := NewClient(srv.URL, "k", srv.Client())

			_, err := c.CreateInvoice(context.Background(), ports.InvoiceRequest{Wallet: "w", Amount: 1})
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestClient_RejectionCarriesDetail(t *testing.T) {
	srv, _ := backend(t, http.StatusBadRequest, `{"detail":"amount too small"}`)
	c := NewClient(srv.URL, "k", srv.Client())

	_, err := c.CreateInvoice(context.Background(), ports.InvoiceRequest{Wallet: "w", Amount: 1})
	assert.Contains(t, err.Error(), "amount too small")
}

func TestClient_CheckSettlement(t *testing.T) {
	srv, rec := backend(t, http.StatusOK, `{"paid":true}`)
	c := NewClient(srv.URL, "k", srv.Client())

	paid, err := c.CheckSettlement(context.Background(), "ab12")
	require.NoError(t, err)
	assert.True(t, paid)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/api/v1/payments/ab12", rec.path)
}

func TestClient_PayInvoice(t *testing.T) {
	srv, rec := backend(t, http.StatusCreated, `{"payment_hash":"out1"}`)
	c := NewClient(srv.URL, "k", srv.Client())

	inv, err := c.PayInvoice(context.Background(), ports.PayoutRequest{Wallet: "w", Bolt11: "lnbc1", MaxAmount: 500})
	require.NoError(t, err)
	assert.Equal(t, "out1", inv.PaymentHash)
	assert.Equal(t, true, rec.body["out"])
	assert.Equal(t, "lnbc1", rec.body["bolt11"])
	assert.Equal(t, float64(500), rec.body["max_sat"])
}

func TestClient_DecodeInvoice(t *testing.T) {
	srv, rec := backend(t, http.StatusOK, `{"payment_hash":"h","amount_msat":500000}`)
	c := NewClient(srv.URL, "k", srv.Client())

	dec, err := c.DecodeInvoice(context.Background(), "lnbc5u1")
	require.NoError(t, err)
	assert.Equal(t, int64(500000), dec.AmountMsat)
	assert.Equal(t, "/api/v1/payments/decode", rec.path)
	assert.Equal(t, "lnbc5u1", rec.body["data"])
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, "k", http.DefaultClient)
	_, err := c.CheckSettlement(context.Background(), "h")
	assert.ErrorIs(t, err, ports.ErrUpstreamUnavailable)
}

func TestSwapClient_SwapOut(t *testing.T) {
	srv, rec := backend(t, http.StatusOK, `{"id":"swap-7"}`)
	c := NewSwapClient(srv.URL, "k", srv.Client())

	id, err := c.SwapOut(context.Background(), ports.SwapRequest{Wallet: "w", Address: "bc1qxyz", Amount: 2500})
	require.NoError(t, err)
	assert.Equal(t, "swap-7", id)
	assert.Equal(t, "/api/v1/swap/out", rec.path)
	assert.Equal(t, "bc1qxyz", rec.body["onchain_address"])
	assert.Equal(t, float64(2500), rec.body["amount"])
}

func TestSwapClient_Rejected(t *testing.T) {
	srv, _ := backend(t, http.StatusUnprocessableEntity, `{"detail":"address invalid"}`)
	c := NewSwapClient(srv.URL, "k", srv.Client())

	_, err := c.SwapOut(context.Background(), ports.SwapRequest{Wallet: "w", Address: "nope", Amount: 1})
	assert.ErrorIs(t, err, ports.ErrInvoiceRejected)
}
