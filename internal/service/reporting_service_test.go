package service

import (
	"context"
	"errors"
	"testing"

	"lnpos-gateway/internal/codec"
	"lnpos-gateway/internal/core/domain"
	"lnpos-gateway/internal/core/ports"
	"lnpos-gateway/internal/core/ports/mocks"
	"lnpos-gateway/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupReporting(t *testing.T) (*mocks.MockTerminalRepository, *mocks.MockPaymentRepository, ports.ReportingService) {
	ctrl := gomock.NewController(t)
	terms := mocks.NewMockTerminalRepository(ctrl)
	pays := mocks.NewMockPaymentRepository(ctrl)
	return terms, pays, NewReportingService(terms, pays)
}

func ownedTerminals() []domain.Terminal {
	a := testTerminal(codec.AuthenticatedXor, domain.DevicePOS)
	b := testTerminal(codec.BlockCipherHex, domain.DeviceATM)
	b.ID = "term0002"
	return []domain.Terminal{*a, *b}
}

func TestReportingService_ListPayments_AllTerminals(t *testing.T) {
	terms, pays, svc := setupReporting(t)
	terms.EXPECT().ListByWallets(gomock.Any(), adminCaller.Wallets).Return(ownedTerminals(), nil)
	pays.EXPECT().ListByTerminalIDs(gomock.Any(), []string{"term0001", "term0002"}).Return([]domain.Payment{{ID: "a"}, {ID: "b"}}, nil)

	got, err := svc.ListPayments(context.Background(), adminCaller, ports.PaymentListParams{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReportingService_ListPayments_FilterAndLimit(t *testing.T) {
	terms, pays, svc := setupReporting(t)
	terms.EXPECT().ListByWallets(gomock.Any(), gomock.Any()).Return(ownedTerminals(), nil)
	pays.EXPECT().ListByTerminalIDs(gomock.Any(), []string{"term0002"}).Return([]domain.Payment{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)

	got, err := svc.ListPayments(context.Background(), adminCaller, ports.PaymentListParams{TerminalID: "term0002", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReportingService_ListPayments_ForeignTerminalFilter(t *testing.T) {
	terms, _, svc := setupReporting(t)
	terms.EXPECT().ListByWallets(gomock.Any(), gomock.Any()).Return(ownedTerminals(), nil)

	got, err := svc.ListPayments(context.Background(), adminCaller, ports.PaymentListParams{TerminalID: "elsewhere"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReportingService_ListPayments_NoWallets(t *testing.T) {
	_, _, svc := setupReporting(t)

	got, err := svc.ListPayments(context.Background(), ports.Caller{}, ports.PaymentListParams{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReportingService_ListPayments_DBError(t *testing.T) {
	terms, _, svc := setupReporting(t)
	terms.EXPECT().ListByWallets(gomock.Any(), gomock.Any()).Return(nil, errors.New("conn reset"))

	_, err := svc.ListPayments(context.Background(), adminCaller, ports.PaymentListParams{})
	assert.ErrorIs(t, err, apperror.ErrDatabaseError(nil))
}
