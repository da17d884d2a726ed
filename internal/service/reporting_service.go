package service

import (
	"context"
	"fmt"

	"lnpos-gateway/internal/core/domain"
	"lnpos-gateway/internal/core/ports"
	"lnpos-gateway/pkg/apperror"
)

const (
	defaultPaymentLimit = 100
	maxPaymentLimit     = 1000
)

// reportingService implements ports.ReportingService.
type reportingService struct {
	terminals ports.TerminalRepository
	payments  ports.PaymentRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(terminals ports.TerminalRepository, payments ports.PaymentRepository) ports.ReportingService {
	return &reportingService{terminals: terminals, payments: payments}
}

// ListPayments returns payments of the caller's terminals, newest first as
// stored. A terminal filter outside the caller's wallets yields nothing.
func (s *reportingService) ListPayments(ctx context.Context, caller ports.Caller, params ports.PaymentListParams) ([]domain.Payment, error) {
	if len(caller.Wallets) == 0 {
		return []domain.Payment{}, nil
	}

	terms, err := s.terminals.ListByWallets(ctx, caller.Wallets)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list terminals: %w", err))
	}

	ids := make([]string, 0, len(terms))
	for _, t := range terms {
		if params.TerminalID == "" || params.TerminalID == t.ID {
			ids = append(ids, t.ID)
		}
	}
	if len(ids) == 0 {
		return []domain.Payment{}, nil
	}

	payments, err := s.payments.ListByTerminalIDs(ctx, ids)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list payments: %w", err))
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPaymentLimit
	}
	if limit > maxPaymentLimit {
		limit = maxPaymentLimit
	}
	if len(payments) > limit {
		payments = payments[:limit]
	}
	return payments, nil
}
