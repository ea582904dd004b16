package hotel

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"backoffice/internal/domain"
	"backoffice/internal/pkg/rules"
)

type Service struct {
	bookings  BookingRepository
	rooms     RoomRepository
	customers CustomerRepository
	services  ServiceRepository
	events    EventSink
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	customers CustomerRepository,
	services ServiceRepository,
	events EventSink,
) *Service {
	return &Service{
		bookings:  bookings,
		rooms:     rooms,
		customers: customers,
		services:  services,
		events:    events,
	}
}

// CreateBooking validates the stay and the room, derives duration and
// total amount and persists everything in one write. Warnings ride along
// with the created booking and never block it.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, []rules.Warning, error) {
	if err := ValidateStay(req.CheckIn, req.CheckOut); err != nil {
		return nil, nil, err
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}

	var warnings []rules.Warning
	warn, err := CheckRoom(room.Status)
	if err != nil {
		return nil, nil, err
	}
	if warn != nil {
		warnings = append(warnings, *warn)
	}

	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		return nil, nil, mapNotFound(err)
	}

	services, err := s.services.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		return nil, nil, err
	}

	code := req.Code
	if code == "" {
		code = uuid.New().String()
	}

	duration := StayDuration(req.CheckIn, req.CheckOut)
	b := &domain.Booking{
		Code:        code,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Status:      domain.BookingDraft,
		CustomerID:  req.CustomerID,
		RoomID:      req.RoomID,
		Duration:    duration,
		TotalAmount: TotalAmount(room.PricePerNight, duration, servicePrices(services)),
		Services:    services,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isUniqueViolation(err) {
			return nil, nil, ErrDuplicate
		}
		return nil, nil, err
	}

	if s.events != nil {
		s.events.Publish("booking.created", b)
	}

	return b, warnings, nil
}

// UpdateBooking applies the requested changes and recomputes the derived
// fields from the post-change inputs before persisting.
func (s *Service) UpdateBooking(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, []rules.Warning, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}

	if req.CheckIn != nil {
		b.CheckIn = req.CheckIn
	}
	if req.CheckOut != nil {
		b.CheckOut = req.CheckOut
	}
	if err := ValidateStay(b.CheckIn, b.CheckOut); err != nil {
		return nil, nil, err
	}

	var warnings []rules.Warning
	if req.RoomID != nil && *req.RoomID != b.RoomID {
		room, err := s.rooms.GetByID(ctx, *req.RoomID)
		if err != nil {
			return nil, nil, mapNotFound(err)
		}
		warn, err := CheckRoom(room.Status)
		if err != nil {
			return nil, nil, err
		}
		if warn != nil {
			warnings = append(warnings, *warn)
		}
		b.RoomID = *req.RoomID
		b.Room = room
	}

	if req.ServiceIDs != nil {
		services, err := s.services.GetByIDs(ctx, *req.ServiceIDs)
		if err != nil {
			return nil, nil, err
		}
		b.Services = services
	}

	room := b.Room
	if room == nil {
		if room, err = s.rooms.GetByID(ctx, b.RoomID); err != nil {
			return nil, nil, mapNotFound(err)
		}
	}

	b.Duration = StayDuration(b.CheckIn, b.CheckOut)
	b.TotalAmount = TotalAmount(room.PricePerNight, b.Duration, servicePrices(b.Services))

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, nil, err
	}
	return b, warnings, nil
}

func (s *Service) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	allowed := b.Status == domain.BookingDraft && status == domain.BookingConfirmed ||
		b.Status == domain.BookingConfirmed && status == domain.BookingDone
	if !allowed {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	b.Status = status

	if s.events != nil {
		s.events.Publish("booking.status_changed", b)
	}
	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.List(ctx, limit, offset)
}

// SuggestCheckOut is the check-in assist: one night by default.
func (s *Service) SuggestCheckOut(checkIn time.Time) time.Time {
	return SuggestCheckOut(checkIn)
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if req.PricePerNight <= 0 {
		return nil, ErrValidation
	}
	status := domain.RoomStatus(req.Status)
	if status == "" {
		status = domain.RoomAvailable
	}
	if !validRoomStatus(status) {
		return nil, ErrValidation
	}

	room := &domain.Room{
		Number:        req.Number,
		Floor:         req.Floor,
		PricePerNight: req.PricePerNight,
		Status:        status,
		TypeID:        req.TypeID,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) UpdateRoomStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	if !validRoomStatus(status) {
		return ErrValidation
	}
	if _, err := s.rooms.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.rooms.UpdateStatus(ctx, id, status)
}

func (s *Service) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (*domain.RoomType, error) {
	t := &domain.RoomType{Name: req.Name, Code: req.Code}
	if err := s.rooms.CreateType(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return s.rooms.ListTypes(ctx)
}

func (s *Service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*domain.Customer, error) {
	c := &domain.Customer{
		Name:         req.Name,
		IdentityCard: req.IdentityCard,
		Phone:        req.Phone,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.HotelService, error) {
	if req.Price <= 0 {
		return nil, ErrValidation
	}
	svc := &domain.HotelService{Name: req.Name, Price: req.Price}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context) ([]domain.HotelService, error) {
	return s.services.List(ctx)
}

func servicePrices(services []domain.HotelService) []int64 {
	prices := make([]int64, 0, len(services))
	for _, svc := range services {
		prices = append(prices, svc.Price)
	}
	return prices
}

func validRoomStatus(s domain.RoomStatus) bool {
	switch s {
	case domain.RoomAvailable, domain.RoomOccupied, domain.RoomMaintenance:
		return true
	}
	return false
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
