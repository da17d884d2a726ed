package lightning

import (
	"context"
	"fmt"
	"net/http"

	"lnpos-gateway/internal/core/ports"
)

// SwapClient implements ports.SwapProvider: it pays sats from a wallet to
// an on-chain address through a submarine swap service.
type SwapClient struct {
	api
}

// NewSwapClient creates a swap provider client.
func NewSwapClient(baseURL, apiKey string, httpClient HTTPClient) *SwapClient {
	return &SwapClient{api: newAPI(baseURL, apiKey, httpClient)}
}

type swapOutRequest struct {
	Wallet  string                 `json:"wallet"`
	Address string                 `json:"onchain_address"`
	Amount  int64                  `json:"amount"`
	Extra   map[string]interface{} `json:"extra,omitempty"`
}

// SwapOut starts the swap and returns its id.
func (c *SwapClient) SwapOut(ctx context.Context, req ports.SwapRequest) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/v1/swap/out", swapOutRequest{
		Wallet:  req.Wallet,
		Address: req.Address,
		Amount:  int64(req.Amount),
		Extra:   req.Extra,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", fmt.Errorf("%w: swap response without id", ports.ErrUpstreamUnavailable)
	}
	return resp.ID, nil
}
