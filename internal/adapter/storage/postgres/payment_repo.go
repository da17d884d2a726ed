package postgres

import (
	"context"
	"errors"
	"fmt"

	"lnpos-gateway/internal/core/domain"
	"lnpos-gateway/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const paymentColumns = `id, terminal_id, kind, sats, pin, payment_hash, invoice, fiat_amount::text, fiat_currency, created_at, updated_at`

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Create inserts a quoted payment. The primary key is the payment identity,
// so a second insert for the same identity returns ports.ErrDuplicateID.
func (r *PaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (id, terminal_id, kind, sats, pin, payment_hash, invoice, fiat_amount, fiat_currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var fiat *string
	if p.FiatAmount != nil {
		s := p.FiatAmount.String()
		fiat = &s
	}
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.TerminalID, string(p.Kind), int64(p.Sats), p.PIN,
		p.PaymentHash, p.Invoice, fiat, p.FiatCurrency,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert payment %s: %w", p.ID, ports.ErrDuplicateID)
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID fetches a payment. Returns nil, nil if it does not exist.
func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	p, err := scanPayment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment by id: %w", err)
	}
	return p, nil
}

// Update is a compare-and-set on payment_hash: the row changes only while
// the stored hash still equals expectedHash.
func (r *PaymentRepo) Update(ctx context.Context, p *domain.Payment, expectedHash *string) error {
	query := `UPDATE payments
		SET payment_hash=$1, invoice=COALESCE($2, invoice), updated_at=$3
		WHERE id=$4 AND payment_hash IS NOT DISTINCT FROM $5`

	tag, err := r.pool.Exec(ctx, query,
		p.PaymentHash, p.Invoice, p.UpdatedAt, p.ID, expectedHash,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrHashAlreadySet
	}
	return nil
}

// ListByTerminalIDs returns payments of the given terminals, newest first.
func (r *PaymentRepo) ListByTerminalIDs(ctx context.Context, terminalIDs []string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE terminal_id = ANY($1) ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, terminalIDs)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// Delete removes a payment.
func (r *PaymentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var (
		p          domain.Payment
		kind       string
		sats       int64
		fiatAmount *string
	)
	if err := row.Scan(
		&p.ID, &p.TerminalID, &kind, &sats, &p.PIN,
		&p.PaymentHash, &p.Invoice, &fiatAmount, &p.FiatCurrency,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Kind = domain.PaymentKind(kind)
	p.Sats = domain.Sats(sats)
	if fiatAmount != nil {
		d, err := decimal.NewFromString(*fiatAmount)
		if err != nil {
			return nil, fmt.Errorf("payment %s fiat amount %q: %w", p.ID, *fiatAmount, err)
		}
		p.FiatAmount = &d
	}
	return &p, nil
}
