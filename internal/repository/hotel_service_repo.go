package repository

import (
	"context"

	"gorm.io/gorm"

	"backoffice/internal/domain"
)

type HotelServiceRepository struct {
	db *gorm.DB
}

func NewHotelServiceRepository(db *gorm.DB) *HotelServiceRepository {
	return &HotelServiceRepository{db: db}
}

func (r *HotelServiceRepository) Create(ctx context.Context, s *domain.HotelService) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *HotelServiceRepository) List(ctx context.Context) ([]domain.HotelService, error) {
	var services []domain.HotelService
	err := r.db.WithContext(ctx).Order("name").Find(&services).Error
	return services, err
}

// GetByIDs returns the services in the same order gorm yields them; the
// caller only needs the price sum so ordering does not matter.
func (r *HotelServiceRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.HotelService, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var services []domain.HotelService
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&services).Error
	return services, err
}
