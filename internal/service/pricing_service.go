package service

import (
	"context"
	"errors"
	"time"

	"lnpos-gateway/internal/core/domain"
	"lnpos-gateway/internal/core/ports"
	"lnpos-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
	maxSats = decimal.NewFromInt(int64(domain.MaxSats))
)

type pricingService struct {
	oracle  ports.RateOracle
	timeout time.Duration
	log     zerolog.Logger
}

// NewPricingService creates the pricing converter. Each oracle call is
// bounded by timeout.
func NewPricingService(oracle ports.RateOracle, timeout time.Duration, log zerolog.Logger) ports.PricingService {
	return &pricingService{oracle: oracle, timeout: timeout, log: log}
}

// Quote prices amount for a terminal. Native amounts are rounded up to whole
// sats; fiat amounts are cents converted through the oracle. The markup is
// applied last and the result floored. A result outside [0, MaxSats] means
// the terminal sent an amount no invoice can carry.
func (s *pricingService) Quote(ctx context.Context, amount decimal.Decimal, currency string, markup decimal.Decimal) (*domain.Price, error) {
	price := &domain.Price{Currency: currency}

	var base decimal.Decimal
	if (&domain.Terminal{Currency: currency}).IsNative() {
		base = amount.Ceil()
	} else {
		fiat := amount.Div(hundred)
		sats, err := s.convert(ctx, fiat, currency)
		if err != nil {
			return nil, err
		}
		base = sats
		price.Fiat = &fiat
	}

	final := base.Mul(one.Add(markup.Div(hundred))).Floor()
	if final.IsNegative() || final.GreaterThan(maxSats) {
		s.log.Debug().Str("sats", final.String()).Str("currency", currency).Msg("priced amount out of range")
		return nil, apperror.ErrInvalidPayload()
	}
	price.Sats = domain.Sats(final.IntPart())
	return price, nil
}

func (s *pricingService) convert(ctx context.Context, fiat decimal.Decimal, currency string) (decimal.Decimal, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	sats, err := s.oracle.Convert(ctx, fiat, currency)
	if err != nil {
		if errors.Is(err, ports.ErrRateUnavailable) {
			s.log.Warn().Err(err).Str("currency", currency).Msg("no rate for currency")
			return decimal.Zero, apperror.ErrPriceUnavailable()
		}
		s.log.Error().Err(err).Str("currency", currency).Msg("rate oracle call failed")
		return decimal.Zero, apperror.ErrUpstreamUnavailable(err)
	}
	return sats, nil
}
