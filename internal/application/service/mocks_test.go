package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prasety/kasirku-api/internal/domain/entity"
	"github.com/prasety/kasirku-api/internal/domain/enum"
	domainRepo "github.com/prasety/kasirku-api/internal/domain/repository"
	"github.com/prasety/kasirku-api/pkg/pagination"
)

// mockSnapshotStore is an in-memory stand-in for the redis snapshot store.
type mockSnapshotStore struct {
	m       sync.Mutex
	saved   map[string][]entity.CartLine
	saveErr error
	loadErr error
	saves   int
}

func newMockSnapshotStore() *mockSnapshotStore {
	return &mockSnapshotStore{saved: make(map[string][]entity.CartLine)}
}

func (m *mockSnapshotStore) Save(_ context.Context, registerID string, lines []entity.CartLine) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := make([]entity.CartLine, len(lines))
	copy(cp, lines)
	m.saved[registerID] = cp
	return nil
}

func (m *mockSnapshotStore) Load(_ context.Context, registerID string) ([]entity.CartLine, bool, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.loadErr != nil {
		return nil, false, m.loadErr
	}
	lines, ok := m.saved[registerID]
	if !ok {
		return nil, false, nil
	}
	cp := make([]entity.CartLine, len(lines))
	copy(cp, lines)
	return cp, true, nil
}

var _ domainRepo.SnapshotStore = (*mockSnapshotStore)(nil)

// gatedSnapshotStore holds Load open until released, to pin a session
// restore mid-flight. Load must be reached at most once.
type gatedSnapshotStore struct {
	*mockSnapshotStore
	started chan struct{}
	release chan struct{}
}

func newGatedSnapshotStore(inner *mockSnapshotStore) *gatedSnapshotStore {
	return &gatedSnapshotStore{
		mockSnapshotStore: inner,
		started:           make(chan struct{}),
		release:           make(chan struct{}),
	}
}

func (g *gatedSnapshotStore) Load(ctx context.Context, registerID string) ([]entity.CartLine, bool, error) {
	close(g.started)
	<-g.release
	return g.mockSnapshotStore.Load(ctx, registerID)
}

// mockTransactionRepo keeps frozen transactions in a map.
type mockTransactionRepo struct {
	m            sync.Mutex
	transactions map[uuid.UUID]*entity.Transaction
	createErr    error
	getErr       error
}

func newMockTransactionRepo() *mockTransactionRepo {
	return &mockTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (m *mockTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	cp := *transaction
	m.transactions[transaction.ID] = &cp
	return nil
}

func (m *mockTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	transaction, ok := m.transactions[id]
	if !ok {
		return nil, fmt.Errorf("transaction not found")
	}
	cp := *transaction
	return &cp, nil
}

func (m *mockTransactionRepo) MarkClosed(_ context.Context, id uuid.UUID, closedAt time.Time) (bool, error) {
	m.m.Lock()
	defer m.m.Unlock()
	transaction, ok := m.transactions[id]
	if !ok || transaction.Status != enum.TransactionStatusFinalized {
		return false, nil
	}
	transaction.Status = enum.TransactionStatusClosed
	transaction.ClosedAt = &closedAt
	return true, nil
}

func (m *mockTransactionRepo) List(_ context.Context, _ *domainRepo.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	var out []entity.Transaction
	for _, transaction := range m.transactions {
		out = append(out, *transaction)
	}
	return out, int64(len(out)), nil
}

var _ domainRepo.TransactionRepository = (*mockTransactionRepo)(nil)

// mockEarningRepo records income entries in order.
type mockEarningRepo struct {
	m        sync.Mutex
	earnings []entity.Earning
	summary  entity.EarningSummary
}

func (m *mockEarningRepo) Create(_ context.Context, earning *entity.Earning) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.earnings = append(m.earnings, *earning)
	return nil
}

func (m *mockEarningRepo) List(_ context.Context, _ *pagination.PaginationParams) ([]entity.Earning, int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	out := make([]entity.Earning, len(m.earnings))
	copy(out, m.earnings)
	return out, int64(len(out)), nil
}

func (m *mockEarningRepo) Summarize(_ context.Context, _ time.Time) (*entity.EarningSummary, error) {
	m.m.Lock()
	defer m.m.Unlock()
	cp := m.summary
	return &cp, nil
}

var _ domainRepo.EarningRepository = (*mockEarningRepo)(nil)

// mockItemRepo keeps catalog items in a map.
type mockItemRepo struct {
	m     sync.Mutex
	items map[uuid.UUID]*entity.Item
}

func newMockItemRepo() *mockItemRepo {
	return &mockItemRepo{items: make(map[uuid.UUID]*entity.Item)}
}

func (m *mockItemRepo) Create(_ context.Context, item *entity.Item) error {
	m.m.Lock()
	defer m.m.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *mockItemRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Item, error) {
	m.m.Lock()
	defer m.m.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("item not found")
	}
	cp := *item
	return &cp, nil
}

func (m *mockItemRepo) GetByName(_ context.Context, name string) (*entity.Item, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for _, item := range m.items {
		if strings.EqualFold(item.Name, name) {
			cp := *item
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("item not found")
}

func (m *mockItemRepo) Update(_ context.Context, item *entity.Item) error {
	m.m.Lock()
	defer m.m.Unlock()
	if _, ok := m.items[item.ID]; !ok {
		return fmt.Errorf("item not found")
	}
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *mockItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.items, id)
	return nil
}

func (m *mockItemRepo) List(_ context.Context, _ *domainRepo.ItemFilterParams) ([]entity.Item, int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	var out []entity.Item
	for _, item := range m.items {
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

var _ domainRepo.ItemRepository = (*mockItemRepo)(nil)
