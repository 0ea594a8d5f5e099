package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prasety/kasirku-api/internal/domain/entity"
	"github.com/prasety/kasirku-api/pkg/pagination"
)

// TransactionRepository defines the interface for the transaction history
// ledger. The ledger is append-only apart from the one-shot close marker.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	// MarkClosed sets the closed status and timestamp exactly once;
	// a transaction already closed is left untouched and reported false.
	MarkClosed(ctx context.Context, id uuid.UUID, closedAt time.Time) (bool, error)
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
}

// TransactionFilterParams contains filtering parameters for history queries
type TransactionFilterParams struct {
	Pagination *pagination.PaginationParams
	RegisterID string
	From       *time.Time
	To         *time.Time
}
