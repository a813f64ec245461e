package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Booking statuses, the states of the reservation lifecycle.
const (
	StatusConfirmed  = "Confirmed"
	StatusDueIn      = "Due In"
	StatusCheckedIn  = "Checked In"
	StatusCheckedOut = "Checked Out"
	StatusCancelled  = "Cancelled"
)

// ActiveStatuses are the statuses that count against room capacity
// when checking a date window for overbooking.
var ActiveStatuses = []string{StatusConfirmed, StatusDueIn, StatusCheckedIn}

// DateLayout is the calendar date format used for check-in/check-out dates.
// Stored as strings so lexicographic comparison matches chronological order.
const DateLayout = "2006-01-02"

type Reservation struct {
	ReservationID string `json:"reservationId" gorm:"column:reservation_id;primaryKey;type:varchar(16)"`

	RoomType      string `json:"roomType" gorm:"column:room_type;index;type:varchar(16)"`
	OrderQuantity int    `json:"orderQuantity" gorm:"column:order_quantity"`

	// RoomIDs is non-empty only while the reservation is Checked In.
	RoomIDs datatypes.JSON `json:"roomIds" gorm:"column:room_ids"`

	CheckInDate  string `json:"checkInDate" gorm:"column:check_in_date;index;type:varchar(10)"`
	CheckOutDate string `json:"checkOutDate" gorm:"column:check_out_date;index;type:varchar(10)"`

	NumberOfGuests int     `json:"numberOfGuests" gorm:"column:number_of_guests"`
	TotalPrice     float64 `json:"totalPrice" gorm:"column:total_price"`

	BookingStatus string `json:"bookingStatus" gorm:"column:booking_status;index;type:varchar(16)"`

	GuestFullName    string `json:"guestFullName" gorm:"column:guest_full_name;index;type:varchar(255)"`
	GuestEmail       string `json:"guestEmail" gorm:"column:guest_email;type:varchar(255)"`
	GuestPhoneNumber string `json:"guestPhoneNumber" gorm:"column:guest_phone_number;type:varchar(32)"`
	GuestDateOfBirth string `json:"guestDateOfBirth" gorm:"column:guest_date_of_birth;type:varchar(10)"`

	UpdatedBy string `json:"updatedBy" gorm:"column:updated_by;type:varchar(128)"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomIDList decodes the JSON room assignment column.
func (r *Reservation) RoomIDList() []string {
	var ids []string
	if len(r.RoomIDs) > 0 {
		_ = json.Unmarshal(r.RoomIDs, &ids)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids
}

func (r *Reservation) SetRoomIDList(ids []string) {
	if ids == nil {
		ids = []string{}
	}
	b, _ := json.Marshal(ids)
	r.RoomIDs = datatypes.JSON(b)
}

// HasRoom reports whether the given room is currently assigned to the reservation.
func (r *Reservation) HasRoom(roomID string) bool {
	for _, id := range r.RoomIDList() {
		if id == roomID {
			return true
		}
	}
	return false
}

// CheckIn assigns the given rooms and moves the reservation to Checked In.
// RoomIDs must be non-empty exactly while the status is Checked In.
func (r *Reservation) CheckIn(rooms []Room) {
	ids := make([]string, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.RoomID)
	}
	r.SetRoomIDList(ids)
	r.BookingStatus = StatusCheckedIn
}

// CheckOut clears the room assignment and moves the reservation to Checked Out.
func (r *Reservation) CheckOut() {
	r.SetRoomIDList(nil)
	r.BookingStatus = StatusCheckedOut
}

// MakeConfirmed clears the room assignment and reverts the reservation to Confirmed.
func (r *Reservation) MakeConfirmed() {
	r.SetRoomIDList(nil)
	r.BookingStatus = StatusConfirmed
}

// MakeDueIn clears the room assignment and reverts the reservation to Due In.
func (r *Reservation) MakeDueIn() {
	r.SetRoomIDList(nil)
	r.BookingStatus = StatusDueIn
}

// MarkCancelled clears the room assignment and cancels the reservation.
func (r *Reservation) MarkCancelled() {
	r.SetRoomIDList(nil)
	r.BookingStatus = StatusCancelled
}

// IsValidBookingStatus reports whether s is one of the five lifecycle states.
func IsValidBookingStatus(s string) bool {
	switch s {
	case StatusConfirmed, StatusDueIn, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}
