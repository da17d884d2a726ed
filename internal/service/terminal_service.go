package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"lnpos-gateway/internal/core/domain"
	"lnpos-gateway/internal/core/ports"
	"lnpos-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	terminalIDLen  = 8
	terminalKeyLen = 32
	urlSafeChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

var minMarkup = decimal.NewFromInt(-100)

type terminalService struct {
	repo  ports.TerminalRepository
	vault ports.EncryptionService
	log   zerolog.Logger
}

// NewTerminalService creates terminal administration.
func NewTerminalService(repo ports.TerminalRepository, vault ports.EncryptionService, log zerolog.Logger) ports.TerminalService {
	return &terminalService{repo: repo, vault: vault, log: log}
}

// Create generates the terminal id and key. The key is returned once in
// plaintext and stored sealed.
func (s *terminalService) Create(ctx context.Context, caller ports.Caller, in ports.CreateTerminalInput) (*ports.CreatedTerminal, error) {
	if !caller.Admin || !caller.OwnsWallet(in.Wallet) {
		return nil, apperror.ErrForbidden()
	}
	if !in.Scheme.Valid() {
		return nil, apperror.Validation("unknown payload scheme")
	}
	if in.Markup.LessThanOrEqual(minMarkup) {
		return nil, apperror.Validation("markup must be greater than -100")
	}
	device := in.Device
	if device == "" {
		device = domain.DevicePOS
	}

	id, err := randomString(terminalIDLen)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	key, err := randomString(terminalKeyLen)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	sealed, err := s.vault.Encrypt(key)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("seal terminal key: %w", err))
	}

	now := time.Now().UTC()
	term := &domain.Terminal{
		ID:        id,
		KeySealed: sealed,
		Title:     in.Title,
		Wallet:    in.Wallet,
		Currency:  in.Currency,
		Markup:    in.Markup,
		Scheme:    in.Scheme,
		Device:    device,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, term); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create terminal: %w", err))
	}

	ev := s.log.Info()
	if in.Scheme.Deprecated() {
		ev = s.log.Warn().Bool("deprecated_scheme", true)
	}
	ev.Str("terminal_id", id).Str("scheme", in.Scheme.String()).Str("actor", caller.Subject).Msg("terminal created")

	return &ports.CreatedTerminal{Terminal: term, Key: key}, nil
}

// Get returns a terminal the caller owns.
func (s *terminalService) Get(ctx context.Context, caller ports.Caller, id string) (*domain.Terminal, error) {
	term, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get terminal: %w", err))
	}
	if term == nil || !caller.OwnsWallet(term.Wallet) {
		return nil, apperror.ErrTerminalNotFound(id)
	}
	return term, nil
}

// List returns the terminals of all wallets in the caller's token.
func (s *terminalService) List(ctx context.Context, caller ports.Caller) ([]domain.Terminal, error) {
	if len(caller.Wallets) == 0 {
		return []domain.Terminal{}, nil
	}
	terms, err := s.repo.ListByWallets(ctx, caller.Wallets)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list terminals: %w", err))
	}
	return terms, nil
}

// Update changes title, wallet, currency or markup. Identity, key, scheme
// and device never change.
func (s *terminalService) Update(ctx context.Context, caller ports.Caller, id string, upd domain.TerminalUpdate) (*domain.Terminal, error) {
	if !caller.Admin {
		return nil, apperror.ErrForbidden()
	}
	term, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if upd.Wallet != nil && !caller.OwnsWallet(*upd.Wallet) {
		return nil, apperror.ErrForbidden()
	}
	if upd.Markup != nil && upd.Markup.LessThanOrEqual(minMarkup) {
		return nil, apperror.Validation("markup must be greater than -100")
	}

	upd.Apply(term)
	term.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, term); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update terminal: %w", err))
	}
	return term, nil
}

// Delete removes a terminal. Its payments become orphans and are cleaned
// up on their next callback.
func (s *terminalService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if !caller.Admin {
		return apperror.ErrForbidden()
	}
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("delete terminal: %w", err))
	}
	return nil
}

// randomString draws n characters from the URL-safe alphabet. The alphabet
// has 64 symbols so masking a byte keeps the draw uniform.
func randomString(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	for i := range buf {
		buf[i] = urlSafeChars[buf[i]&63]
	}
	return string(buf), nil
}
