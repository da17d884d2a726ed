package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Sats is an amount in whole satoshis, the only unit used internally.
type Sats int64

// MaxSats is the largest amount whose msat value still fits in an int64.
const MaxSats Sats = math.MaxInt64 / 1000

// Msat converts to millisatoshis for LNURL and invoice APIs.
func (s Sats) Msat() int64 {
	return int64(s) * 1000
}

// NativeCurrency is the settlement currency code for sat-denominated terminals.
const NativeCurrency = "sat"

// Price is the outcome of pricing one terminal amount.
type Price struct {
	Sats Sats
	// Fiat is the original fiat amount in major units; nil for native terminals.
	Fiat     *decimal.Decimal
	Currency string
}
