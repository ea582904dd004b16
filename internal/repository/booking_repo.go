package repository

import (
	"context"

	"gorm.io/gorm"

	"backoffice/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Room").
		Preload("Services").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	var bookings []domain.Booking
	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Room").
		Preload("Services").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&bookings).Error
	return bookings, err
}

// Update persists the stored and derived columns together so a reader
// never sees duration or total out of step with the dates.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"check_in":     b.CheckIn,
			"check_out":    b.CheckOut,
			"status":       b.Status,
			"room_id":      b.RoomID,
			"customer_id":  b.CustomerID,
			"duration":     b.Duration,
			"total_amount": b.TotalAmount,
		}
		if err := tx.Model(&domain.Booking{}).Where("id = ?", b.ID).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Model(b).Association("Services").Replace(b.Services)
	})
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}
