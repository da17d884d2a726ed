package postgres

import (
	"context"
	"errors"
	"fmt"

	"lnpos-gateway/internal/codec"
	"lnpos-gateway/internal/core/domain"
	"lnpos-gateway/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const terminalColumns = `id, key_sealed, title, wallet, currency, markup::text, scheme, device, created_at, updated_at`

// TerminalRepo implements ports.TerminalRepository.
type TerminalRepo struct {
	pool Pool
}

// NewTerminalRepo creates a new TerminalRepo.
func NewTerminalRepo(pool Pool) *TerminalRepo {
	return &TerminalRepo{pool: pool}
}

// Create inserts a new terminal.
func (r *TerminalRepo) Create(ctx context.Context, t *domain.Terminal) error {
	query := `INSERT INTO terminals (id, key_sealed, title, wallet, currency, markup, scheme, device, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.KeySealed, t.Title, t.Wallet, t.Currency,
		t.Markup.String(), string(t.Scheme), string(t.Device),
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert terminal %s: %w", t.ID, ports.ErrDuplicateID)
		}
		return fmt.Errorf("insert terminal: %w", err)
	}
	return nil
}

// GetByID fetches a terminal. Returns nil, nil if it does not exist.
func (r *TerminalRepo) GetByID(ctx context.Context, id string) (*domain.Terminal, error) {
	query := `SELECT ` + terminalColumns + ` FROM terminals WHERE id = $1`

	t, err := scanTerminal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get terminal by id: %w", err)
	}
	return t, nil
}

// ListByWallets returns the terminals of the given wallets, newest first.
func (r *TerminalRepo) ListByWallets(ctx context.Context, wallets []string) ([]domain.Terminal, error) {
	query := `SELECT ` + terminalColumns + ` FROM terminals WHERE wallet = ANY($1) ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, wallets)
	if err != nil {
		return nil, fmt.Errorf("list terminals: %w", err)
	}
	defer rows.Close()

	terms := []domain.Terminal{}
	for rows.Next() {
		t, err := scanTerminal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan terminal: %w", err)
		}
		terms = append(terms, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list terminals: %w", err)
	}
	return terms, nil
}

// Update writes the mutable configuration fields only.
func (r *TerminalRepo) Update(ctx context.Context, t *domain.Terminal) error {
	query := `UPDATE terminals
		SET title=$1, wallet=$2, currency=$3, markup=$4, updated_at=$5
		WHERE id=$6`
	_, err := r.pool.Exec(ctx, query,
		t.Title, t.Wallet, t.Currency, t.Markup.String(), t.UpdatedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update terminal: %w", err)
	}
	return nil
}

// Delete removes a terminal. Its payments are left for orphan cleanup.
func (r *TerminalRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM terminals WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete terminal: %w", err)
	}
	return nil
}

func scanTerminal(row pgx.Row) (*domain.Terminal, error) {
	var (
		t              domain.Terminal
		markup         string
		scheme, device string
	)
	if err := row.Scan(
		&t.ID, &t.KeySealed, &t.Title, &t.Wallet, &t.Currency,
		&markup, &scheme, &device, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	m, err := decimal.NewFromString(markup)
	if err != nil {
		return nil, fmt.Errorf("terminal %s markup %q: %w", t.ID, markup, err)
	}
	t.Markup = m
	t.Scheme = codec.Scheme(scheme)
	t.Device = domain.Device(device)
	return &t, nil
}
