package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSats_Msat(t *testing.T) {
	assert.Equal(t, int64(0), Sats(0).Msat())
	assert.Equal(t, int64(1100000), Sats(1100).Msat())
	assert.Equal(t, int64(9223372036854775000), MaxSats.Msat())
}

func TestTerminal_IsNative(t *testing.T) {
	tests := []struct {
		currency string
		want     bool
	}{
		{"sat", true},
		{"SAT", true},
		{"USD", false},
		{"eur", false},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			term := &Terminal{Currency: tt.currency}
			assert.Equal(t, tt.want, term.IsNative())
		})
	}
}

func TestTerminal_PaymentKind(t *testing.T) {
	assert.Equal(t, PaymentKindPay, (&Terminal{Device: DevicePOS}).PaymentKind())
	assert.Equal(t, PaymentKindWithdraw, (&Terminal{Device: DeviceATM}).PaymentKind())
}

func TestTerminal_MetadataAndDescriptionHash(t *testing.T) {
	term := &Terminal{Title: `Bob's "Bar"`}

	meta := term.LnurlPayMetadata()
	assert.Equal(t, `[["text/plain","Bob's \"Bar\""]]`, meta)

	sum := sha256.Sum256([]byte(meta))
	assert.Equal(t, hex.EncodeToString(sum[:]), hex.EncodeToString(term.DescriptionHash()))
}

func TestTerminalUpdate_Apply_OnlyConfigFields(t *testing.T) {
	markup := decimal.NewFromInt(-5)
	term := &Terminal{ID: "abcd1234", KeySealed: "sealed", Title: "old", Wallet: "w1", Currency: "sat"}

	TerminalUpdate{Title: strPtr("new"), Markup: &markup}.Apply(term)

	assert.Equal(t, "new", term.Title)
	assert.Equal(t, "w1", term.Wallet)
	assert.Equal(t, "sat", term.Currency)
	assert.True(t, markup.Equal(term.Markup))
	assert.Equal(t, "abcd1234", term.ID)
	assert.Equal(t, "sealed", term.KeySealed)
}

func TestPayment_State(t *testing.T) {
	tests := []struct {
		name string
		hash *string
		want PaymentState
	}{
		{"no hash", nil, PaymentStateQuoted},
		{"pending", strPtr(SentinelPending), PaymentStateSwapPending},
		{"error", strPtr(SentinelError), PaymentStateSwapFailed},
		{"real hash", strPtr("ab12"), PaymentStateInvoiced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Payment{PaymentHash: tt.hash}
			assert.Equal(t, tt.want, p.State())
		})
	}
}

func TestPayment_AttachPaymentHash_Monotonic(t *testing.T) {
	p := &Payment{}

	require.NoError(t, p.AttachPaymentHash("hash-1", "lnbc1"))
	assert.Equal(t, PaymentStateInvoiced, p.State())
	assert.Equal(t, "lnbc1", *p.Invoice)

	assert.NoError(t, p.AttachPaymentHash("hash-1", "lnbc1"), "same hash is idempotent")
	assert.ErrorIs(t, p.AttachPaymentHash("hash-2", "lnbc2"), ErrHashAlreadySet)
	assert.Equal(t, "hash-1", *p.PaymentHash)
}

func TestPayment_AttachPaymentHash_RejectsSentinels(t *testing.T) {
	p := &Payment{}
	assert.ErrorIs(t, p.AttachPaymentHash(SentinelPending, ""), ErrEmptyHash)
	assert.ErrorIs(t, p.AttachPaymentHash("", ""), ErrEmptyHash)
	assert.Nil(t, p.PaymentHash)
}

func TestPayment_WithdrawLifecycle(t *testing.T) {
	p := &Payment{Kind: PaymentKindWithdraw}

	assert.ErrorIs(t, p.MarkFailed(), ErrNotPending)

	require.NoError(t, p.MarkPending())
	assert.Equal(t, PaymentStateSwapPending, p.State())
	assert.ErrorIs(t, p.MarkPending(), ErrPayoutInFlight)

	require.NoError(t, p.MarkFailed())
	assert.Equal(t, PaymentStateSwapFailed, p.State())
	assert.False(t, p.HasSettlementHash())

	// A failed payout may be retried.
	require.NoError(t, p.MarkPending())
	require.NoError(t, p.AttachPaymentHash("real", ""))
	assert.True(t, p.HasSettlementHash())
	assert.Nil(t, p.Invoice)

	assert.ErrorIs(t, p.MarkPending(), ErrHashAlreadySet)
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel("pending"))
	assert.True(t, IsSentinel("error"))
	assert.False(t, IsSentinel("00ff"))
}
