package repository

import (
	"context"
	"time"

	"github.com/prasety/kasirku-api/internal/domain/entity"
	domainRepo "github.com/prasety/kasirku-api/internal/domain/repository"
	"github.com/prasety/kasirku-api/pkg/pagination"
	"gorm.io/gorm"
)

type earningRepository struct {
	db *gorm.DB
}

// NewEarningRepository creates a new earning repository
func NewEarningRepository(db *gorm.DB) domainRepo.EarningRepository {
	return &earningRepository{db: db}
}

func (r *earningRepository) Create(ctx context.Context, earning *entity.Earning) error {
	return r.db.WithContext(ctx).Create(earning).Error
}

func (r *earningRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Earning, int64, error) {
	var earnings []entity.Earning
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Earning{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.
		Order("recorded_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&earnings).Error

	return earnings, total, err
}

func (r *earningRepository) Summarize(ctx context.Context, now time.Time) (*entity.EarningSummary, error) {
	var summary entity.EarningSummary

	weekAgo := now.Add(-7 * 24 * time.Hour)
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM earnings
		WHERE recorded_at >= ?
	`, weekAgo).Scan(&summary.Weekly).Error
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	err = r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM earnings
		WHERE recorded_at >= ? AND recorded_at < ?
	`, monthStart, monthEnd).Scan(&summary.Monthly).Error
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
