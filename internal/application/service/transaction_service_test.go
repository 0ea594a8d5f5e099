package service

import (
	"context"
	"testing"

	"github.com/prasety/kasirku-api/internal/domain/enum"
	"github.com/prasety/kasirku-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactionFixture(t *testing.T) (*TransactionService, *CartService, *mockTransactionRepo, *mockEarningRepo) {
	t.Helper()
	carts := NewCartService(newMockSnapshotStore())
	transactions := newMockTransactionRepo()
	earnings := &mockEarningRepo{}
	return NewTransactionService(transactions, earnings, carts), carts, transactions, earnings
}

func TestFinalizeEmptyCart(t *testing.T) {
	svc, _, _, _ := newTransactionFixture(t)

	_, err := svc.Finalize(context.Background(), "main", "50000")
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
}

func TestFinalizeInsufficientPayment(t *testing.T) {
	svc, carts, _, _ := newTransactionFixture(t)
	ctx := context.Background()

	_, err := carts.Add(ctx, "main", "Kopi", "15000")
	require.NoError(t, err)
	_, err = carts.Add(ctx, "main", "Kopi", "15000")
	require.NoError(t, err)

	_, err = svc.Finalize(ctx, "main", "10000")
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, int64(20_000), appErr.Shortage)
	assert.Equal(t, "Uang kurang Rp 20.000", appErr.Message)
}

func TestFinalizeFreezesRecordAndKeepsCart(t *testing.T) {
	svc, carts, transactions, _ := newTransactionFixture(t)
	ctx := context.Background()

	_, err := carts.Add(ctx, "main", "Kopi", "15000")
	require.NoError(t, err)
	_, err = carts.Add(ctx, "main", "Kopi", "15000")
	require.NoError(t, err)

	transaction, err := svc.Finalize(ctx, "main", "50000")
	require.NoError(t, err)
	assert.Equal(t, int64(30_000), transaction.Total)
	assert.Equal(t, int64(50_000), transaction.Tendered)
	assert.Equal(t, int64(20_000), transaction.Change)
	assert.Equal(t, enum.TransactionStatusFinalized, transaction.Status)
	assert.Contains(t, transaction.TransactionNo, "TRX-")
	require.Len(t, transaction.Lines, 1)

	// The cart survives finalization untouched.
	assert.Equal(t, int64(30_000), carts.Get(ctx, "main").Total)

	// Mutating the cart afterwards cannot alter the frozen record.
	_, err = carts.Add(ctx, "main", "Teh", "8000")
	require.NoError(t, err)
	stored, err := transactions.GetByID(ctx, transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30_000), stored.Total)
}

func TestFinalizeSurvivesLedgerFailure(t *testing.T) {
	svc, carts, transactions, _ := newTransactionFixture(t)
	ctx := context.Background()
	transactions.createErr = assert.AnError

	_, err := carts.Add(ctx, "main", "Kopi", "15000")
	require.NoError(t, err)

	transaction, err := svc.Finalize(ctx, "main", "15000")
	require.NoError(t, err, "history is best-effort, the sale still goes through")
	assert.Equal(t, int64(15_000), transaction.Total)
}

func TestCloseIsTwoStepAndRecordsEarningOnce(t *testing.T) {
	svc, carts, _, earnings := newTransactionFixture(t)
	ctx := context.Background()

	_, err := carts.Add(ctx, "main", "Kopi", "15000")
	require.NoError(t, err)
	_, err = carts.Add(ctx, "main", "Kopi", "15000")
	require.NoError(t, err)

	transaction, err := svc.Finalize(ctx, "main", "50000")
	require.NoError(t, err)

	confirmation, err := svc.RequestClose(ctx, "main", transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, ConfirmActionNewTransact, confirmation.Action)
	assert.Equal(t, "Transaksi berhasil! Mulai transaksi baru?", confirmation.Message)

	// The request alone does not touch the cart.
	assert.Equal(t, int64(30_000), carts.Get(ctx, "main").Total)

	outcome, err := svc.ConfirmClose(ctx, "main", confirmation.Token)
	require.NoError(t, err)
	assert.Empty(t, outcome.Cart.Lines)
	require.NotNil(t, outcome.Transaction)
	assert.Equal(t, enum.TransactionStatusClosed, outcome.Transaction.Status)
	require.NotNil(t, outcome.Transaction.ClosedAt)

	require.Len(t, earnings.earnings, 1)
	assert.Equal(t, int64(30_000), earnings.earnings[0].Amount)
	assert.Equal(t, enum.EarningSourceSale, earnings.earnings[0].Source)
	require.NotNil(t, earnings.earnings[0].TransactionID)
	assert.Equal(t, transaction.ID, *earnings.earnings[0].TransactionID)

	// Replaying the token fails and cannot double-count.
	_, err = svc.ConfirmClose(ctx, "main", confirmation.Token)
	assert.ErrorIs(t, err, apperror.ErrInvalidConfirmToken)
	assert.Len(t, earnings.earnings, 1)
}

func TestConfirmCloseLoadFailureKeepsSaleBookable(t *testing.T) {
	svc, carts, transactions, earnings := newTransactionFixture(t)
	ctx := context.Background()

	_, err := carts.Add(ctx, "main", "Kopi", "15000")
	require.NoError(t, err)

	transaction, err := svc.Finalize(ctx, "main", "15000")
	require.NoError(t, err)

	confirmation, err := svc.RequestClose(ctx, "main", transaction.ID)
	require.NoError(t, err)

	// The ledger is unreachable while the close is confirmed. The record
	// must stay finalized so the income entry is not lost for good.
	transactions.getErr = assert.AnError
	outcome, err := svc.ConfirmClose(ctx, "main", confirmation.Token)
	require.NoError(t, err)
	assert.Nil(t, outcome.Transaction)
	assert.Empty(t, earnings.earnings)

	transactions.getErr = nil
	stored, err := transactions.GetByID(ctx, transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.TransactionStatusFinalized, stored.Status)

	// A fresh close books the sale exactly once.
	retry, err := svc.RequestClose(ctx, "main", transaction.ID)
	require.NoError(t, err)
	_, err = svc.ConfirmClose(ctx, "main", retry.Token)
	require.NoError(t, err)
	require.Len(t, earnings.earnings, 1)
	assert.Equal(t, int64(15_000), earnings.earnings[0].Amount)
}

func TestCloseAlreadyClosedTransaction(t *testing.T) {
	svc, carts, _, earnings := newTransactionFixture(t)
	ctx := context.Background()

	_, err := carts.Add(ctx, "main", "Kopi", "15000")
	require.NoError(t, err)

	transaction, err := svc.Finalize(ctx, "main", "15000")
	require.NoError(t, err)

	first, err := svc.RequestClose(ctx, "main", transaction.ID)
	require.NoError(t, err)
	_, err = svc.ConfirmClose(ctx, "main", first.Token)
	require.NoError(t, err)

	// A second close request is rejected outright.
	_, err = svc.RequestClose(ctx, "main", transaction.ID)
	require.Error(t, err)
	assert.Len(t, earnings.earnings, 1)
}

func TestRequestCloseForeignRegister(t *testing.T) {
	svc, carts, _, _ := newTransactionFixture(t)
	ctx := context.Background()

	_, err := carts.Add(ctx, "kasir-1", "Kopi", "15000")
	require.NoError(t, err)

	transaction, err := svc.Finalize(ctx, "kasir-1", "15000")
	require.NoError(t, err)

	_, err = svc.RequestClose(ctx, "kasir-2", transaction.ID)
	require.Error(t, err)
}
