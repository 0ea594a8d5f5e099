package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasety/kasirku-api/internal/domain/entity"
	"github.com/prasety/kasirku-api/pkg/pagination"
)

// ItemRepository defines the interface for catalog item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	// GetByName matches the full name case-insensitively.
	GetByName(ctx context.Context, name string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ItemFilterParams) ([]entity.Item, int64, error)
}

// ItemFilterParams contains filtering parameters for catalog queries
type ItemFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
}
