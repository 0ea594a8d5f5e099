package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prasety/kasirku-api/internal/domain/entity"
	"github.com/prasety/kasirku-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartServiceAddAndMerge(t *testing.T) {
	store := newMockSnapshotStore()
	svc := NewCartService(store)
	ctx := context.Background()

	result, err := svc.Add(ctx, "main", "Kopi", "15000")
	require.NoError(t, err)
	assert.False(t, result.Merged)
	assert.Equal(t, "Kopi ditambahkan ke keranjang", result.Message)
	assert.Equal(t, int64(15_000), result.Cart.Total)

	result, err = svc.Add(ctx, "main", "  kopi ", "15000")
	require.NoError(t, err)
	assert.True(t, result.Merged)
	assert.Equal(t, "Jumlah Kopi ditambahkan", result.Message)
	assert.Equal(t, int64(30_000), result.Cart.Total)
	assert.Len(t, result.Cart.Lines, 1)
}

func TestCartServiceAddValidation(t *testing.T) {
	svc := NewCartService(newMockSnapshotStore())
	ctx := context.Background()

	_, err := svc.Add(ctx, "main", "  ", "abc")
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 2)
	assert.Equal(t, "Nama barang wajib diisi", appErr.Errors[0].Message)
	assert.Equal(t, "Harga barang wajib diisi", appErr.Errors[1].Message)

	// Nothing was persisted for a rejected candidate.
	view := svc.Get(ctx, "main")
	assert.Empty(t, view.Lines)
}

func TestCartServiceRestoreNoticeShownOnce(t *testing.T) {
	store := newMockSnapshotStore()
	store.saved["main"] = []entity.CartLine{
		{ID: "a", Name: "Kopi", UnitPrice: 15_000, Quantity: 2},
	}

	svc := NewCartService(store)
	ctx := context.Background()

	view := svc.Get(ctx, "main")
	assert.True(t, view.Restored)
	assert.Equal(t, int64(30_000), view.Total)

	view = svc.Get(ctx, "main")
	assert.False(t, view.Restored, "notice is consumed by the first view")
}

func TestCartServiceRestoreCompletesBeforeFirstMutation(t *testing.T) {
	store := newMockSnapshotStore()
	store.saved["main"] = []entity.CartLine{
		{ID: "a", Name: "Kopi", UnitPrice: 15_000, Quantity: 2},
	}
	gated := newGatedSnapshotStore(store)
	svc := NewCartService(gated)
	ctx := context.Background()

	viewCh := make(chan *CartView, 1)
	go func() {
		viewCh <- svc.Get(ctx, "main")
	}()
	<-gated.started

	// A second request arrives while the restore is still in flight. It
	// must wait for the snapshot instead of mutating an empty cart and
	// saving over the stored lines.
	addErr := make(chan error, 1)
	addResult := make(chan *AddResult, 1)
	go func() {
		result, err := svc.Add(ctx, "main", "Teh", "8000")
		addErr <- err
		addResult <- result
	}()

	time.Sleep(20 * time.Millisecond)
	close(gated.release)

	<-viewCh
	require.NoError(t, <-addErr)
	result := <-addResult
	require.Len(t, result.Cart.Lines, 2)
	assert.Equal(t, "Kopi", result.Cart.Lines[0].Name)
	assert.Equal(t, 2, result.Cart.Lines[0].Quantity)
	assert.Equal(t, int64(38_000), result.Cart.Total)

	// The persisted snapshot holds both lines as well.
	store.m.Lock()
	defer store.m.Unlock()
	require.Len(t, store.saved["main"], 2)
}

func TestCartServiceLoadErrorDegradesToEmptyCart(t *testing.T) {
	store := newMockSnapshotStore()
	store.loadErr = errors.New("connection refused")

	svc := NewCartService(store)
	view := svc.Get(context.Background(), "main")
	assert.Empty(t, view.Lines)
	assert.False(t, view.Restored)
}

func TestCartServiceSaveErrorIsSwallowed(t *testing.T) {
	store := newMockSnapshotStore()
	store.saveErr = errors.New("connection refused")

	svc := NewCartService(store)
	result, err := svc.Add(context.Background(), "main", "Kopi", "15000")
	require.NoError(t, err, "persistence failure must not surface")
	assert.Equal(t, int64(15_000), result.Cart.Total)
}

func TestCartServiceRemoveLineIsTwoStep(t *testing.T) {
	store := newMockSnapshotStore()
	svc := NewCartService(store)
	ctx := context.Background()

	result, err := svc.Add(ctx, "main", "Kopi", "15000")
	require.NoError(t, err)
	lineID := result.Line.ID

	confirmation, err := svc.RequestRemoveLine(ctx, "main", lineID)
	require.NoError(t, err)
	assert.Equal(t, ConfirmActionRemoveLine, confirmation.Action)
	assert.Equal(t, "Hapus Kopi dari keranjang?", confirmation.Message)

	// The request alone changes nothing.
	assert.Len(t, svc.Get(ctx, "main").Lines, 1)

	outcome, err := svc.Confirm(ctx, "main", confirmation.Token)
	require.NoError(t, err)
	assert.Empty(t, outcome.Cart.Lines)

	// Tokens are single-use.
	_, err = svc.Confirm(ctx, "main", confirmation.Token)
	assert.ErrorIs(t, err, apperror.ErrInvalidConfirmToken)
}

func TestCartServiceClearIsTwoStep(t *testing.T) {
	svc := NewCartService(newMockSnapshotStore())
	ctx := context.Background()

	_, err := svc.RequestClear(ctx, "main")
	require.Error(t, err, "clearing an empty cart is rejected")

	_, err = svc.Add(ctx, "main", "Kopi", "15000")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "main", "Kopi", "15000")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "main", "Teh", "8000")
	require.NoError(t, err)

	confirmation, err := svc.RequestClear(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, "Yakin ingin mengosongkan keranjang? (3 item akan dihapus)", confirmation.Message)

	outcome, err := svc.Confirm(ctx, "main", confirmation.Token)
	require.NoError(t, err)
	assert.Empty(t, outcome.Cart.Lines)
	assert.Zero(t, outcome.Cart.Total)
}

func TestCartServiceConfirmRejectsForeignRegister(t *testing.T) {
	svc := NewCartService(newMockSnapshotStore())
	ctx := context.Background()

	_, err := svc.Add(ctx, "kasir-1", "Kopi", "15000")
	require.NoError(t, err)

	confirmation, err := svc.RequestClear(ctx, "kasir-1")
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, "kasir-2", confirmation.Token)
	assert.ErrorIs(t, err, apperror.ErrInvalidConfirmToken)

	_, err = svc.Confirm(ctx, "kasir-1", uuid.New())
	assert.ErrorIs(t, err, apperror.ErrInvalidConfirmToken)
}

func TestCartServiceRegistersAreIsolated(t *testing.T) {
	store := newMockSnapshotStore()
	svc := NewCartService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, "kasir-1", "Kopi", "15000")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "kasir-2", "Teh", "8000")
	require.NoError(t, err)

	assert.Equal(t, int64(15_000), svc.Get(ctx, "kasir-1").Total)
	assert.Equal(t, int64(8_000), svc.Get(ctx, "kasir-2").Total)
}

func TestCartServiceSavesAfterEveryMutation(t *testing.T) {
	store := newMockSnapshotStore()
	svc := NewCartService(store)
	ctx := context.Background()

	result, err := svc.Add(ctx, "main", "Kopi", "15000")
	require.NoError(t, err)
	svc.IncreaseQuantity(ctx, "main", result.Line.ID)
	svc.DecreaseQuantity(ctx, "main", result.Line.ID)

	assert.Equal(t, 3, store.saves)
	require.Len(t, store.saved["main"], 1)
	assert.Equal(t, 1, store.saved["main"][0].Quantity)
}
