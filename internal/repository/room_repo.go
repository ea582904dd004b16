package repository

import (
	"context"

	"gorm.io/gorm"

	"backoffice/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).Preload("Type").First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.WithContext(ctx).Preload("Type").Order("number").Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *RoomRepository) GetPriceByID(ctx context.Context, id int64) (int64, error) {
	var price int64
	tx := r.db.WithContext(ctx).
		Table("rooms").
		Select("price_per_night").
		Where("id = ?", id).
		Scan(&price)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return price, nil
}

func (r *RoomRepository) CreateType(ctx context.Context, t *domain.RoomType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *RoomRepository) ListTypes(ctx context.Context) ([]domain.RoomType, error) {
	var types []domain.RoomType
	err := r.db.WithContext(ctx).Order("name").Find(&types).Error
	return types, err
}
