package domain

import "time"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

type BookingStatus string

const (
	BookingDraft     BookingStatus = "draft"
	BookingConfirmed BookingStatus = "confirmed"
	BookingDone      BookingStatus = "done"
)

type RoomType struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" validate:"required" gorm:"not null"`
	Code string `json:"code,omitempty"`
}

func (RoomType) TableName() string { return "room_types" }

type Room struct {
	ID            int64      `json:"id" gorm:"primaryKey"`
	Number        string     `json:"number" validate:"required" gorm:"column:number;uniqueIndex;not null"`
	Floor         int        `json:"floor"`
	PricePerNight int64      `json:"price_per_night" validate:"required,gt=0"`
	Status        RoomStatus `json:"status" gorm:"size:20;default:'available'"`
	TypeID        *int64     `json:"type_id,omitempty"`
	Type          *RoomType  `json:"type,omitempty" gorm:"foreignKey:TypeID"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }

// HotelService is an extra billable service attached to a booking
// (breakfast, laundry, airport pickup).
type HotelService struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" validate:"required" gorm:"not null"`
	Price int64  `json:"price" validate:"required,gt=0"`
}

func (HotelService) TableName() string { return "hotel_services" }

type Customer struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" validate:"required" gorm:"not null"`
	IdentityCard string    `json:"identity_card,omitempty" gorm:"uniqueIndex"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

// Booking is the hotel root record. Duration and TotalAmount are derived
// from the dates, the room price and the attached services; they are
// recomputed on every write that touches one of those inputs.
type Booking struct {
	ID         int64         `json:"id" gorm:"primaryKey"`
	Code       string        `json:"code" gorm:"uniqueIndex;not null"`
	CheckIn    *time.Time    `json:"check_in,omitempty"`
	CheckOut   *time.Time    `json:"check_out,omitempty"`
	Status     BookingStatus `json:"status" gorm:"size:20;default:'draft'"`
	CustomerID int64         `json:"customer_id" validate:"required"`
	RoomID     int64         `json:"room_id" validate:"required"`

	Duration    int   `json:"duration"`
	TotalAmount int64 `json:"total_amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Customer *Customer      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Room     *Room          `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Services []HotelService `json:"services,omitempty" gorm:"many2many:booking_services"`
}

func (Booking) TableName() string { return "bookings" }
