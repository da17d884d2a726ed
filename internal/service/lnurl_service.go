package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lnpos-gateway/internal/codec"
	"lnpos-gateway/internal/core/domain"
	"lnpos-gateway/internal/core/ports"
	"lnpos-gateway/internal/obs"
	"lnpos-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LnurlConfig tunes the orchestrator.
type LnurlConfig struct {
	// NonceTTL is how long a quoted identity stays reserved in the nonce store.
	NonceTTL time.Duration
	// UpstreamTimeout bounds each invoice issuer or swap call.
	UpstreamTimeout time.Duration
}

// LnurlServiceImpl implements ports.LnurlService.
type LnurlServiceImpl struct {
	terminals ports.TerminalRepository
	payments  ports.PaymentRepository
	pricing   ports.PricingService
	issuer    ports.InvoiceIssuer
	swap      ports.SwapProvider
	nonces    ports.NonceStore
	vault     ports.EncryptionService
	audit     ports.AuditService
	metrics   *obs.LnurlMetrics
	cfg       LnurlConfig
	log       zerolog.Logger
}

// NewLnurlService creates the orchestrator. swap, nonces, audit and metrics
// may be nil.
func NewLnurlService(
	terminals ports.TerminalRepository,
	payments ports.PaymentRepository,
	pricing ports.PricingService,
	issuer ports.InvoiceIssuer,
	swap ports.SwapProvider,
	nonces ports.NonceStore,
	vault ports.EncryptionService,
	audit ports.AuditService,
	metrics *obs.LnurlMetrics,
	cfg LnurlConfig,
	log zerolog.Logger,
) *LnurlServiceImpl {
	return &LnurlServiceImpl{
		terminals: terminals,
		payments:  payments,
		pricing:   pricing,
		issuer:    issuer,
		swap:      swap,
		nonces:    nonces,
		vault:     vault,
		audit:     audit,
		metrics:   metrics,
		cfg:       cfg,
		log:       log,
	}
}

// Quote authenticates a terminal token, prices it and records the payment.
func (s *LnurlServiceImpl) Quote(ctx context.Context, req ports.QuoteRequest) (*ports.QuoteResult, error) {
	term, err := s.terminals.GetByID(ctx, req.TerminalID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get terminal: %w", err))
	}
	if term == nil {
		return nil, apperror.ErrTerminalNotFound(req.TerminalID)
	}

	res, err := s.quote(ctx, term, req)
	s.metrics.ObserveQuote(term.Scheme.String(), outcome(err))
	if err != nil {
		if term.Scheme.Legacy() {
			return nil, &ports.LegacyError{Err: err}
		}
		return nil, err
	}
	return res, nil
}

func (s *LnurlServiceImpl) quote(ctx context.Context, term *domain.Terminal, req ports.QuoteRequest) (*ports.QuoteResult, error) {
	log := s.log.With().Str("terminal_id", term.ID).Str("scheme", term.Scheme.String()).Logger()

	if err := codec.Precheck(term.Scheme, req.P, req.IV); err != nil {
		log.Debug().Err(err).Msg("payload failed length precheck")
		return nil, codecError(err)
	}

	id, policy, err := codec.Identity(term.Scheme, req.P, req.IV)
	if err != nil {
		log.Debug().Err(err).Msg("payload identity unreadable")
		return nil, codecError(err)
	}

	existing, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get payment: %w", err))
	}
	if existing != nil {
		if existing.TerminalID != term.ID {
			return nil, apperror.ErrNotYourPayment()
		}
		if policy == codec.PolicyReuse {
			return &ports.QuoteResult{Terminal: term, Payment: existing}, nil
		}
		if existing.PaymentHash != nil {
			return nil, apperror.ErrAlreadyClaimed()
		}
		return nil, apperror.ErrAlreadyRegistered()
	}

	key, err := s.vault.Decrypt(term.KeySealed)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("unseal terminal key: %w", err))
	}

	payload, err := codec.Decode(term.Scheme, []byte(key), req.P, req.IV)
	if err != nil {
		log.Debug().Err(err).Str("payment_id", id).Msg("payload rejected")
		return nil, codecError(err)
	}

	price, err := s.pricing.Quote(ctx, payload.Amount, term.Currency, term.Markup)
	if err != nil {
		return nil, err
	}

	// Layer 1: Redis reservation. Survives deletion of the payment row.
	if policy == codec.PolicyStrict && s.nonces != nil {
		fresh, err := s.nonces.CheckAndSet(ctx, term.ID, id, s.cfg.NonceTTL)
		if err != nil {
			log.Warn().Err(err).Msg("nonce store unavailable, falling through to DB")
		} else if !fresh {
			return nil, apperror.ErrAlreadyRegistered()
		}
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:         id,
		TerminalID: term.ID,
		Kind:       term.PaymentKind(),
		Sats:       price.Sats,
		PIN:        payload.PIN,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if price.Fiat != nil {
		currency := term.Currency
		payment.FiatAmount = price.Fiat
		payment.FiatCurrency = &currency
	}

	// Layer 2: primary key. Decides concurrent quotes for the same identity.
	if err := s.payments.Create(ctx, payment); err != nil {
		if !errors.Is(err, ports.ErrDuplicateID) {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("create payment: %w", err))
		}
		if policy == codec.PolicyReuse {
			winner, gerr := s.payments.GetByID(ctx, id)
			if gerr == nil && winner != nil && winner.TerminalID == term.ID {
				return &ports.QuoteResult{Terminal: term, Payment: winner}, nil
			}
		}
		return nil, apperror.ErrAlreadyRegistered()
	}

	log.Info().
		Str("payment_id", payment.ID).
		Int64("sats", int64(payment.Sats)).
		Str("kind", string(payment.Kind)).
		Msg("payment quoted")
	return &ports.QuoteResult{Terminal: term, Payment: payment}, nil
}

// Callback issues the invoice for a quoted pay request. A request that
// already has an invoice gets the same invoice back.
func (s *LnurlServiceImpl) Callback(ctx context.Context, paymentID string) (*ports.CallbackResult, error) {
	res, err := s.callback(ctx, paymentID)
	s.metrics.ObserveInvoice(outcome(err))
	return res, err
}

func (s *LnurlServiceImpl) callback(ctx context.Context, paymentID string) (*ports.CallbackResult, error) {
	payment, term, err := s.resolve(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Kind != domain.PaymentKindPay {
		return nil, apperror.ErrWrongRequestKind()
	}

	if payment.PaymentHash != nil {
		if payment.Invoice != nil {
			return &ports.CallbackResult{Terminal: term, Payment: payment, Invoice: *payment.Invoice}, nil
		}
		return nil, apperror.ErrAlreadyClaimed()
	}

	extra := map[string]interface{}{
		"tag":         "lnpos",
		"terminal_id": term.ID,
		"payment_id":  payment.ID,
	}
	if payment.FiatAmount != nil && payment.FiatCurrency != nil {
		extra["fiat_amount"] = payment.FiatAmount.String()
		extra["fiat_currency"] = *payment.FiatCurrency
	}

	uctx, cancel := s.upstreamContext(ctx)
	inv, err := s.issuer.CreateInvoice(uctx, ports.InvoiceRequest{
		Wallet:          term.Wallet,
		Amount:          payment.Sats,
		Memo:            term.Title,
		DescriptionHash: term.DescriptionHash(),
		Extra:           extra,
	})
	cancel()
	if err != nil {
		s.log.Error().Err(err).Str("payment_id", payment.ID).Msg("invoice creation failed")
		return nil, apperror.ErrUpstreamUnavailable(err)
	}

	if err := payment.AttachPaymentHash(inv.PaymentHash, inv.PaymentRequest); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("attach payment hash: %w", err))
	}
	payment.UpdatedAt = time.Now().UTC()

	if err := s.payments.Update(ctx, payment, nil); err != nil {
		if errors.Is(err, domain.ErrHashAlreadySet) {
			// A concurrent callback attached first; hand out its invoice.
			return s.storedInvoice(ctx, term, paymentID)
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update payment: %w", err))
	}

	s.log.Info().
		Str("payment_id", payment.ID).
		Str("payment_hash", inv.PaymentHash).
		Msg("invoice issued")
	return &ports.CallbackResult{Terminal: term, Payment: payment, Invoice: inv.PaymentRequest}, nil
}

func (s *LnurlServiceImpl) storedInvoice(ctx context.Context, term *domain.Terminal, paymentID string) (*ports.CallbackResult, error) {
	current, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("reload payment: %w", err))
	}
	if current == nil || current.Invoice == nil {
		return nil, apperror.ErrAlreadyClaimed()
	}
	return &ports.CallbackResult{Terminal: term, Payment: current, Invoice: *current.Invoice}, nil
}

// Withdraw pays a quoted ATM request out to the invoice or address the
// wallet presented. The record goes to the pending sentinel before the
// outward call and always ends on a real hash or the error sentinel.
func (s *LnurlServiceImpl) Withdraw(ctx context.Context, req ports.WithdrawRequest) error {
	method := "bolt11"
	if req.Invoice == "" && req.Address != "" {
		method = "onchain"
	}
	err := s.withdraw(ctx, method, req)
	s.metrics.ObserveWithdraw(method, outcome(err))
	return err
}

func (s *LnurlServiceImpl) withdraw(ctx context.Context, method string, req ports.WithdrawRequest) error {
	if (req.Invoice == "") == (req.Address == "") {
		return apperror.Validation("exactly one of pr or address is required")
	}

	payment, term, err := s.resolve(ctx, req.PaymentID)
	if err != nil {
		return err
	}
	if payment.Kind != domain.PaymentKindWithdraw {
		return apperror.ErrWrongRequestKind()
	}
	if req.K1 != payment.ID {
		return apperror.Validation("k1 does not match this withdraw request")
	}

	switch payment.State() {
	case domain.PaymentStateInvoiced, domain.PaymentStateSwapPending:
		return apperror.ErrAlreadyClaimed()
	}

	if req.Address != "" {
		if s.swap == nil {
			return apperror.Validation("on-chain withdrawals are not enabled")
		}
	} else if err := s.checkInvoiceAmount(ctx, payment, req.Invoice); err != nil {
		return err
	}

	var prev *string
	if payment.PaymentHash != nil {
		h := *payment.PaymentHash
		prev = &h
	}
	if err := payment.MarkPending(); err != nil {
		return apperror.ErrAlreadyClaimed()
	}
	payment.UpdatedAt = time.Now().UTC()
	if err := s.payments.Update(ctx, payment, prev); err != nil {
		if errors.Is(err, domain.ErrHashAlreadySet) {
			return apperror.ErrAlreadyClaimed()
		}
		return apperror.ErrDatabaseError(fmt.Errorf("mark payout pending: %w", err))
	}

	hash, payErr := s.payout(ctx, term, payment, req)

	// The outcome is written even if the caller has gone away.
	wctx := context.WithoutCancel(ctx)
	pending := domain.SentinelPending
	if payErr != nil {
		s.log.Error().Err(payErr).Str("payment_id", payment.ID).Str("method", method).Msg("payout failed")
		_ = payment.MarkFailed()
		payment.UpdatedAt = time.Now().UTC()
		if err := s.payments.Update(wctx, payment, &pending); err != nil {
			s.log.Error().Err(err).Str("payment_id", payment.ID).Msg("failed to record payout failure")
		}
		return apperror.ErrUpstreamUnavailable(payErr)
	}

	if err := payment.AttachPaymentHash(hash, req.Invoice); err != nil {
		return apperror.InternalError(fmt.Errorf("attach payout hash: %w", err))
	}
	payment.UpdatedAt = time.Now().UTC()
	if err := s.payments.Update(wctx, payment, &pending); err != nil {
		s.log.Error().Err(err).Str("payment_id", payment.ID).Str("payment_hash", hash).Msg("payout sent but not recorded")
		return apperror.ErrDatabaseError(fmt.Errorf("record payout: %w", err))
	}

	s.log.Info().Str("payment_id", payment.ID).Str("method", method).Str("payment_hash", hash).Msg("payout sent")
	return nil
}

func (s *LnurlServiceImpl) checkInvoiceAmount(ctx context.Context, payment *domain.Payment, bolt11 string) error {
	uctx, cancel := s.upstreamContext(ctx)
	defer cancel()

	decoded, err := s.issuer.DecodeInvoice(uctx, bolt11)
	if err != nil {
		if errors.Is(err, ports.ErrInvoiceRejected) {
			return apperror.Validation("invalid invoice")
		}
		return apperror.ErrUpstreamUnavailable(err)
	}
	if decoded.AmountMsat != payment.Sats.Msat() {
		return apperror.ErrAmountMismatch()
	}
	return nil
}

func (s *LnurlServiceImpl) payout(ctx context.Context, term *domain.Terminal, payment *domain.Payment, req ports.WithdrawRequest) (string, error) {
	uctx, cancel := s.upstreamContext(ctx)
	defer cancel()

	extra := map[string]interface{}{
		"tag":         "lnpos",
		"terminal_id": term.ID,
		"payment_id":  payment.ID,
	}

	if req.Address != "" {
		return s.swap.SwapOut(uctx, ports.SwapRequest{
			Wallet:  term.Wallet,
			Address: req.Address,
			Amount:  payment.Sats,
			Extra:   extra,
		})
	}

	inv, err := s.issuer.PayInvoice(uctx, ports.PayoutRequest{
		Wallet:    term.Wallet,
		Bolt11:    req.Invoice,
		MaxAmount: payment.Sats,
		Extra:     extra,
	})
	if err != nil {
		return "", err
	}
	return inv.PaymentHash, nil
}

// resolve loads a payment and its terminal. A payment whose terminal is
// gone is deleted.
func (s *LnurlServiceImpl) resolve(ctx context.Context, paymentID string) (*domain.Payment, *domain.Terminal, error) {
	payment, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("get payment: %w", err))
	}
	if payment == nil {
		return nil, nil, apperror.ErrRequestNotFound()
	}

	term, err := s.terminals.GetByID(ctx, payment.TerminalID)
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("get terminal: %w", err))
	}
	if term == nil {
		s.cleanupOrphan(ctx, payment)
		return nil, nil, apperror.ErrTerminalNotFound(payment.TerminalID)
	}
	return payment, term, nil
}

func (s *LnurlServiceImpl) cleanupOrphan(ctx context.Context, payment *domain.Payment) {
	if err := s.payments.Delete(ctx, payment.ID); err != nil {
		s.log.Warn().Err(err).Str("payment_id", payment.ID).Msg("failed to delete orphaned payment")
		return
	}
	s.log.Info().Str("payment_id", payment.ID).Str("terminal_id", payment.TerminalID).Msg("deleted orphaned payment")
	if s.audit != nil {
		s.audit.Log(ctx, &domain.AuditLog{
			ID:           uuid.New(),
			Action:       domain.AuditActionOrphanCleanup,
			ResourceType: "payment",
			ResourceID:   payment.ID,
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func (s *LnurlServiceImpl) upstreamContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.UpstreamTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.UpstreamTimeout)
}

// codecError maps codec failures to the caller-facing taxonomy. Everything
// except the structural length errors collapses to InvalidPayload.
func codecError(err error) error {
	switch {
	case errors.Is(err, codec.ErrInvalidPayloadLength):
		return apperror.ErrInvalidPayloadLength()
	case errors.Is(err, codec.ErrInvalidIVLength):
		return apperror.ErrInvalidIVLength()
	default:
		return apperror.ErrInvalidPayload()
	}
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "error"
}
