package hotel

import (
	"context"

	"backoffice/internal/domain"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, limit, offset int) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
	CreateType(ctx context.Context, t *domain.RoomType) error
	ListTypes(ctx context.Context) ([]domain.RoomType, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.HotelService) error
	List(ctx context.Context) ([]domain.HotelService, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.HotelService, error)
}

// EventSink receives record-activity events for the live dashboard feed.
// A nil sink is fine; publishing is best effort.
type EventSink interface {
	Publish(event string, payload any)
}
