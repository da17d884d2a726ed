package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"lnpos-gateway/internal/codec"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type simOptions struct {
	baseURL    string
	terminalID string
	key        string
	scheme     string
	pin        int64
	amount     string
	nonce      string
}

func simCmd() *cobra.Command {
	var opts simOptions
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Print the quote URL a terminal would show for a PIN and amount",
		Long: `Encodes a PIN and amount the way terminal firmware does and prints
the resulting LNURL quote URL. The amount is in the terminal's minor unit:
cents for fiat terminals, sats for sat terminals.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := buildQuoteURL(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.baseURL, "url", "u", "http://localhost:8080", "Gateway public URL")
	cmd.Flags().StringVarP(&opts.terminalID, "terminal", "t", "", "Terminal id")
	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "Terminal key as returned at creation")
	cmd.Flags().StringVarP(&opts.scheme, "scheme", "s", string(codec.AuthenticatedXor), "Payload scheme")
	cmd.Flags().Int64Var(&opts.pin, "pin", 0, "PIN to embed")
	cmd.Flags().StringVarP(&opts.amount, "amount", "a", "", "Amount in minor units")
	cmd.Flags().StringVar(&opts.nonce, "nonce", "", "Hex nonce or IV (random when empty)")
	_ = cmd.MarkFlagRequired("terminal")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func buildQuoteURL(opts simOptions) (string, error) {
	scheme, err := codec.ParseScheme(opts.scheme)
	if err != nil {
		return "", err
	}
	amount, err := decimal.NewFromString(opts.amount)
	if err != nil {
		return "", fmt.Errorf("parse amount: %w", err)
	}

	nonce, err := simNonce(scheme, opts.nonce)
	if err != nil {
		return "", err
	}

	p, iv, err := codec.Encode(scheme, []byte(opts.key), nonce, codec.Payload{PIN: opts.pin, Amount: amount})
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	q := url.Values{}
	q.Set("p", p)
	if iv != "" {
		q.Set("iv", iv)
	}
	return fmt.Sprintf("%s/lnpos/api/v1/lnurl/%s?%s", strings.TrimRight(opts.baseURL, "/"), url.PathEscape(opts.terminalID), q.Encode()), nil
}

func simNonce(scheme codec.Scheme, raw string) ([]byte, error) {
	if raw != "" {
		b, err := hex.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("parse nonce: %w", err)
		}
		return b, nil
	}

	n := 8
	if scheme.NeedsIV() {
		n = 16
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
