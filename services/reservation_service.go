package services

import (
	"fmt"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/repositories"
	"frontdesk-backend/utils"
)

// CreateReservationInput carries the booking request fields.
type CreateReservationInput struct {
	RoomType         string  `json:"roomType"`
	OrderQuantity    int     `json:"orderQuantity"`
	CheckInDate      string  `json:"checkInDate"`
	CheckOutDate     string  `json:"checkOutDate"`
	NumberOfGuests   int     `json:"numberOfGuests"`
	TotalPrice       float64 `json:"totalPrice"`
	GuestFullName    string  `json:"guestFullName"`
	GuestEmail       string  `json:"guestEmail"`
	GuestPhoneNumber string  `json:"guestPhoneNumber"`
	GuestDateOfBirth string  `json:"guestDateOfBirth"`
}

// UpdateReservationInput carries a front-desk edit: guest detail
// changes, date changes, and the target status with the room numbers to
// assign when checking in.
type UpdateReservationInput struct {
	ReservationStatus string   `json:"reservationStatus"`
	RoomNumbers       []string `json:"roomNumbers"`
	CheckInDate       string   `json:"checkInDate"`
	CheckOutDate      string   `json:"checkOutDate"`
	GuestFullName     string   `json:"guestFullName"`
	GuestEmail        string   `json:"guestEmail"`
	GuestPhoneNumber  string   `json:"guestPhoneNumber"`
	GuestDateOfBirth  string   `json:"guestDateOfBirth"`
	UpdatedBy         string   `json:"updatedBy"`
}

// ReservationView is a reservation with its assigned room IDs resolved
// to desk-facing room numbers.
type ReservationView struct {
	ReservationID    string   `json:"reservationId"`
	RoomType         string   `json:"roomType"`
	OrderQuantity    int      `json:"orderQuantity"`
	RoomNumbers      []string `json:"roomNumbers"`
	CheckInDate      string   `json:"checkInDate"`
	CheckOutDate     string   `json:"checkOutDate"`
	NumberOfGuests   int      `json:"numberOfGuests"`
	TotalPrice       float64  `json:"totalPrice"`
	BookingStatus    string   `json:"bookingStatus"`
	GuestFullName    string   `json:"guestFullName"`
	GuestEmail       string   `json:"guestEmail"`
	GuestPhoneNumber string   `json:"guestPhoneNumber"`
	GuestDateOfBirth string   `json:"guestDateOfBirth"`
	UpdatedBy        string   `json:"updatedBy"`
}

// ReservationService coordinates the overbooking guard, the status
// transitioner and the repositories for the reservation lifecycle.
type ReservationService struct {
	Reservations *repositories.ReservationRepository
	Rooms        *repositories.RoomRepository
	Availability *AvailabilityService
	Transitioner *Transitioner

	// Location is the fixed service time zone used for "today" and for
	// creation-time date validation.
	Location *time.Location
}

func NewReservationService(
	reservations *repositories.ReservationRepository,
	rooms *repositories.RoomRepository,
	availability *AvailabilityService,
	transitioner *Transitioner,
	loc *time.Location,
) *ReservationService {
	return &ReservationService{
		Reservations: reservations,
		Rooms:        rooms,
		Availability: availability,
		Transitioner: transitioner,
		Location:     loc,
	}
}

func (s *ReservationService) today() string {
	return time.Now().In(s.Location).Format(models.DateLayout)
}

// Create validates the request, runs the overbooking guard, and persists
// a new reservation in status Confirmed with no rooms assigned.
func (s *ReservationService) Create(input CreateReservationInput) (models.Reservation, error) {
	var reservation models.Reservation

	if !models.IsValidRoomType(input.RoomType) {
		return reservation, fmt.Errorf("%w: unrecognized room type %q", ErrInvalidInput, input.RoomType)
	}
	if input.OrderQuantity <= 0 {
		return reservation, fmt.Errorf("%w: order quantity must be positive", ErrInvalidInput)
	}

	if err := ValidateStayDates(input.CheckInDate, input.CheckOutDate, time.Now().In(s.Location)); err != nil {
		return reservation, err
	}

	if err := s.Availability.CheckAvailability(input.RoomType, input.CheckInDate, input.CheckOutDate, input.OrderQuantity); err != nil {
		return reservation, err
	}

	id, err := utils.NewReservationID()
	if err != nil {
		return reservation, fmt.Errorf("generate reservation id: %w", err)
	}

	reservation = models.Reservation{
		ReservationID:    id,
		RoomType:         input.RoomType,
		OrderQuantity:    input.OrderQuantity,
		CheckInDate:      input.CheckInDate,
		CheckOutDate:     input.CheckOutDate,
		NumberOfGuests:   input.NumberOfGuests,
		TotalPrice:       input.TotalPrice,
		GuestFullName:    input.GuestFullName,
		GuestEmail:       input.GuestEmail,
		GuestPhoneNumber: input.GuestPhoneNumber,
		GuestDateOfBirth: input.GuestDateOfBirth,
	}
	reservation.SetRoomIDList(nil)
	reservation.MakeConfirmed()

	if err := s.Reservations.Save(&reservation); err != nil {
		return reservation, err
	}
	return reservation, nil
}

// Get returns a single reservation with its room numbers resolved.
func (s *ReservationService) Get(id string) (ReservationView, error) {
	reservation, err := s.Reservations.LoadByID(id)
	if err != nil {
		return ReservationView{}, err
	}
	return s.toView(reservation)
}

// GetByGuestName returns all reservations booked under the guest's full name.
func (s *ReservationService) GetByGuestName(name string) ([]ReservationView, error) {
	reservations, err := s.Reservations.QueryByGuestName(name)
	if err != nil {
		return nil, err
	}
	return s.toViews(reservations)
}

// GetForDesk returns the default desk listing: all Due In reservations,
// all Checked In, the Checked Out of the current date, then Confirmed
// reservations with a check-in date from today onward.
func (s *ReservationService) GetForDesk() ([]ReservationView, error) {
	date := s.today()

	var reservations []models.Reservation
	queries := []struct {
		status string
		date   string
	}{
		{models.StatusDueIn, ""},
		{models.StatusCheckedIn, ""},
		{models.StatusCheckedOut, date},
		{models.StatusConfirmed, date},
	}
	for _, q := range queries {
		batch, err := s.Reservations.QueryByStatus(q.status, q.date)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, batch...)
	}

	return s.toViews(reservations)
}

// UpdateStatusAndRooms applies a front-desk edit: guest fields and dates
// are updated (relaxed date validation), then the status transition runs
// and the reservation plus its affected rooms are committed atomically.
// A commit conflict surfaces as ErrCommitConflict for the caller to
// reload and retry.
func (s *ReservationService) UpdateStatusAndRooms(id string, input UpdateReservationInput) (ReservationView, error) {
	if !models.IsValidBookingStatus(input.ReservationStatus) {
		return ReservationView{}, fmt.Errorf("%w: unrecognized status %q", ErrInvalidStatus, input.ReservationStatus)
	}

	reservation, err := s.Reservations.LoadByID(id)
	if err != nil {
		return ReservationView{}, err
	}

	if err := validateDateOrder(input.CheckInDate, input.CheckOutDate); err != nil {
		return ReservationView{}, err
	}

	reservation.GuestFullName = input.GuestFullName
	reservation.GuestEmail = input.GuestEmail
	reservation.GuestPhoneNumber = input.GuestPhoneNumber
	reservation.GuestDateOfBirth = input.GuestDateOfBirth
	reservation.CheckInDate = input.CheckInDate
	reservation.CheckOutDate = input.CheckOutDate
	reservation.UpdatedBy = input.UpdatedBy

	rooms, err := s.Transitioner.Transition(&reservation, input.ReservationStatus, input.RoomNumbers)
	if err != nil {
		return ReservationView{}, err
	}

	if err := s.Reservations.CommitRoomReservation(&reservation, rooms); err != nil {
		return ReservationView{}, err
	}

	return s.toView(reservation)
}

// PromoteDueIn moves every Confirmed reservation whose check-in date is
// today to Due In as one batch transaction, returning how many were
// promoted. Invoked by an external daily trigger.
func (s *ReservationService) PromoteDueIn() (int, error) {
	reservations, err := s.Reservations.QueryConfirmedForDate(s.today())
	if err != nil {
		return 0, err
	}
	if len(reservations) == 0 {
		return 0, nil
	}

	if err := s.Reservations.CommitBatchStatus(reservations, models.StatusDueIn); err != nil {
		return 0, err
	}
	return len(reservations), nil
}

func (s *ReservationService) toView(reservation models.Reservation) (ReservationView, error) {
	roomNumbers := []string{}
	for _, roomID := range reservation.RoomIDList() {
		room, err := s.Rooms.LoadByID(roomID)
		if err != nil {
			return ReservationView{}, err
		}
		roomNumbers = append(roomNumbers, room.RoomNumber)
	}

	return ReservationView{
		ReservationID:    reservation.ReservationID,
		RoomType:         reservation.RoomType,
		OrderQuantity:    reservation.OrderQuantity,
		RoomNumbers:      roomNumbers,
		CheckInDate:      reservation.CheckInDate,
		CheckOutDate:     reservation.CheckOutDate,
		NumberOfGuests:   reservation.NumberOfGuests,
		TotalPrice:       reservation.TotalPrice,
		BookingStatus:    reservation.BookingStatus,
		GuestFullName:    reservation.GuestFullName,
		GuestEmail:       reservation.GuestEmail,
		GuestPhoneNumber: reservation.GuestPhoneNumber,
		GuestDateOfBirth: reservation.GuestDateOfBirth,
		UpdatedBy:        reservation.UpdatedBy,
	}, nil
}

func (s *ReservationService) toViews(reservations []models.Reservation) ([]ReservationView, error) {
	views := make([]ReservationView, 0, len(reservations))
	for _, reservation := range reservations {
		view, err := s.toView(reservation)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
