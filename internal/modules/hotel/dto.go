package hotel

import "time"

type CreateBookingRequest struct {
	Code       string     `json:"code"`
	CheckIn    *time.Time `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	CustomerID int64      `json:"customer_id" binding:"required"`
	RoomID     int64      `json:"room_id" binding:"required"`
	ServiceIDs []int64    `json:"service_ids"`
}

// UpdateBookingRequest carries only the fields being changed; nil means
// "leave as is". ServiceIDs replaces the whole set when present.
type UpdateBookingRequest struct {
	CheckIn    *time.Time `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	RoomID     *int64     `json:"room_id"`
	ServiceIDs *[]int64   `json:"service_ids"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateRoomRequest struct {
	Number        string `json:"number" binding:"required"`
	Floor         int    `json:"floor"`
	PricePerNight int64  `json:"price_per_night" binding:"required,gt=0"`
	Status        string `json:"status"`
	TypeID        *int64 `json:"type_id"`
}

type CreateRoomTypeRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code"`
}

type CreateServiceRequest struct {
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"required,gt=0"`
}

type CreateCustomerRequest struct {
	Name         string `json:"name" binding:"required"`
	IdentityCard string `json:"identity_card"`
	Phone        string `json:"phone"`
}
