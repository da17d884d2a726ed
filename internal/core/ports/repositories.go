package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"errors"

	"lnpos-gateway/internal/core/domain"
)

// ErrDuplicateID is returned by Create when the primary key already exists.
var ErrDuplicateID = errors.New("duplicate id")

// TerminalRepository defines persistence operations for terminals.
// Get methods return (nil, nil) when the row does not exist.
type TerminalRepository interface {
	Create(ctx context.Context, terminal *domain.Terminal) error
	GetByID(ctx context.Context, id string) (*domain.Terminal, error)
	ListByWallets(ctx context.Context, wallets []string) ([]domain.Terminal, error)
	// Update writes only title, wallet, currency, markup and updated_at.
	Update(ctx context.Context, terminal *domain.Terminal) error
	Delete(ctx context.Context, id string) error
}

// PaymentRepository is the payment ledger.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	// Update writes payment_hash, invoice and updated_at, but only while the
	// stored hash still equals expectedHash (nil meaning unset). A lost race
	// returns domain.ErrHashAlreadySet.
	Update(ctx context.Context, payment *domain.Payment, expectedHash *string) error
	ListByTerminalIDs(ctx context.Context, terminalIDs []string) ([]domain.Payment, error)
	Delete(ctx context.Context, id string) error
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}
