package repository

import (
	"context"
	"time"

	"github.com/prasety/kasirku-api/internal/domain/entity"
	"github.com/prasety/kasirku-api/pkg/pagination"
)

// EarningRepository defines the interface for the income ledger
type EarningRepository interface {
	Create(ctx context.Context, earning *entity.Earning) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Earning, int64, error)
	// Summarize aggregates income relative to now: weekly is the trailing
	// 7x24h window, monthly is the same calendar month and year.
	Summarize(ctx context.Context, now time.Time) (*entity.EarningSummary, error)
}
