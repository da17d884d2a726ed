package service

import (
	"context"
	"fmt"
	"time"

	"lnpos-gateway/internal/core/domain"
	"lnpos-gateway/internal/core/ports"
	"lnpos-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

type pinService struct {
	terminals ports.TerminalRepository
	payments  ports.PaymentRepository
	issuer    ports.InvoiceIssuer
	timeout   time.Duration
	log       zerolog.Logger
}

// NewPinService creates the PIN reveal service.
func NewPinService(
	terminals ports.TerminalRepository,
	payments ports.PaymentRepository,
	issuer ports.InvoiceIssuer,
	timeout time.Duration,
	log zerolog.Logger,
) ports.PinService {
	return &pinService{terminals: terminals, payments: payments, issuer: issuer, timeout: timeout, log: log}
}

// Reveal returns the PIN only once the payment is settled. Pay requests are
// checked against the issuer on every read; withdraw requests are settled
// once the payout hash is recorded.
func (s *pinService) Reveal(ctx context.Context, paymentID string) (*ports.PinResult, error) {
	payment, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrRequestNotFound()
	}

	term, err := s.terminals.GetByID(ctx, payment.TerminalID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get terminal: %w", err))
	}
	if term == nil {
		return nil, apperror.ErrTerminalNotFound(payment.TerminalID)
	}

	res := &ports.PinResult{Title: term.Title, Sats: payment.Sats}
	if !payment.HasSettlementHash() {
		return res, nil
	}

	paid := payment.Kind == domain.PaymentKindWithdraw
	if !paid {
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		paid, err = s.issuer.CheckSettlement(ctx, *payment.PaymentHash)
		if err != nil {
			s.log.Error().Err(err).Str("payment_id", payment.ID).Msg("settlement check failed")
			return nil, apperror.ErrUpstreamUnavailable(err)
		}
	}

	if paid {
		res.Paid = true
		res.PIN = payment.PIN
	}
	return res, nil
}
