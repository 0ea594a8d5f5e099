package service

import (
	"context"
	"time"

	"github.com/prasety/kasirku-api/internal/domain/entity"
	"github.com/prasety/kasirku-api/internal/domain/enum"
	domainRepo "github.com/prasety/kasirku-api/internal/domain/repository"
	"github.com/prasety/kasirku-api/pkg/apperror"
	"github.com/prasety/kasirku-api/pkg/money"
	"github.com/prasety/kasirku-api/pkg/pagination"
)

// EarningService maintains the append-only income ledger.
type EarningService struct {
	earnings domainRepo.EarningRepository
}

// NewEarningService creates a new earning service
func NewEarningService(earnings domainRepo.EarningRepository) *EarningService {
	return &EarningService{earnings: earnings}
}

// EarningSummaryView is the aggregated panel shown to the operator.
type EarningSummaryView struct {
	Weekly         int64  `json:"weekly"`
	WeeklyDisplay  string `json:"weekly_display"`
	Monthly        int64  `json:"monthly"`
	MonthlyDisplay string `json:"monthly_display"`
}

// AddManual records income entered by hand from the earnings panel.
func (s *EarningService) AddManual(ctx context.Context, amountRaw string) (*entity.Earning, error) {
	amount := money.Parse(amountRaw)
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Masukkan jumlah pemasukan yang valid")
	}

	earning := &entity.Earning{
		Amount:     amount,
		Source:     enum.EarningSourceManual,
		RecordedAt: time.Now(),
	}
	if err := s.earnings.Create(ctx, earning); err != nil {
		return nil, apperror.ErrInternalServer
	}
	return earning, nil
}

// List returns income entries, newest first.
func (s *EarningService) List(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Earning], error) {
	params.Validate()

	earnings, total, err := s.earnings.List(ctx, params)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	meta := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(earnings, meta), nil
}

// Summary aggregates income into the trailing 7 day window and the current
// calendar month.
func (s *EarningService) Summary(ctx context.Context) (*EarningSummaryView, error) {
	summary, err := s.earnings.Summarize(ctx, time.Now())
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	return &EarningSummaryView{
		Weekly:         summary.Weekly,
		WeeklyDisplay:  money.Format(summary.Weekly),
		Monthly:        summary.Monthly,
		MonthlyDisplay: money.Format(summary.Monthly),
	}, nil
}
