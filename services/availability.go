package services

import (
	"fmt"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/repositories"
)

// bookingHorizon bounds how far ahead a stay may be booked.
const bookingHorizon = 365 * 24 * time.Hour

// AvailabilityService is the overbooking guard: it counts existing
// date-overlapping demand for a room type against physical room supply.
//
// The read-then-decide sequence is not serialized; concurrent bookings
// for the same type and overlapping dates can race. Callers that need
// strict enforcement must serialize creation per room type.
type AvailabilityService struct {
	Rooms        *repositories.RoomRepository
	Reservations *repositories.ReservationRepository
}

func NewAvailabilityService(rooms *repositories.RoomRepository, reservations *repositories.ReservationRepository) *AvailabilityService {
	return &AvailabilityService{Rooms: rooms, Reservations: reservations}
}

// CheckAvailability rejects a requested quantity that, together with
// overlapping active reservations of the same room type, would exceed
// the physical room count for that type.
func (s *AvailabilityService) CheckAvailability(roomType, checkIn, checkOut string, requestedQuantity int) error {
	overlapping, err := s.Reservations.QueryOverlapCount(roomType, checkIn, checkOut)
	if err != nil {
		return err
	}

	capacity, err := s.Rooms.CountByType(roomType)
	if err != nil {
		return err
	}

	if overlapping+requestedQuantity > capacity {
		return fmt.Errorf("%w: selected dates and/or quantity for room type %s would result in overbooking",
			ErrOverbooking, roomType)
	}
	return nil
}

// AvailableCount returns how many rooms of the type are free for the
// whole date window: physical count minus overlapping active demand,
// floored at zero.
func (s *AvailabilityService) AvailableCount(roomType, checkIn, checkOut string) (int, error) {
	capacity, err := s.Rooms.CountByType(roomType)
	if err != nil {
		return 0, err
	}
	overlapping, err := s.Reservations.QueryOverlapCount(roomType, checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	available := capacity - overlapping
	if available < 0 {
		available = 0
	}
	return available, nil
}

// ValidateStayDates applies the creation-time date rules in the fixed
// service time zone: both dates parse, check-in is not after check-out,
// neither date is in the past, and neither is more than a year out.
func ValidateStayDates(checkIn, checkOut string, now time.Time) error {
	in, err := time.ParseInLocation(models.DateLayout, checkIn, now.Location())
	if err != nil {
		return fmt.Errorf("%w: check-in date must be formatted %s", ErrInvalidDateRange, models.DateLayout)
	}
	out, err := time.ParseInLocation(models.DateLayout, checkOut, now.Location())
	if err != nil {
		return fmt.Errorf("%w: check-out date must be formatted %s", ErrInvalidDateRange, models.DateLayout)
	}

	if out.Before(in) {
		return fmt.Errorf("%w: check-out date precedes check-in date", ErrInvalidDateRange)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if in.Before(today) || out.Before(today) {
		return fmt.Errorf("%w: dates may not be in the past", ErrInvalidDateRange)
	}

	horizon := today.Add(bookingHorizon)
	if in.After(horizon) || out.After(horizon) {
		return fmt.Errorf("%w: dates may not be more than one year ahead", ErrInvalidDateRange)
	}
	return nil
}

// validateDateOrder is the relaxed rule applied when editing an existing
// reservation: only the ordering is enforced.
func validateDateOrder(checkIn, checkOut string) error {
	in, err := time.Parse(models.DateLayout, checkIn)
	if err != nil {
		return fmt.Errorf("%w: check-in date must be formatted %s", ErrInvalidDateRange, models.DateLayout)
	}
	out, err := time.Parse(models.DateLayout, checkOut)
	if err != nil {
		return fmt.Errorf("%w: check-out date must be formatted %s", ErrInvalidDateRange, models.DateLayout)
	}
	if out.Before(in) {
		return fmt.Errorf("%w: check-out date precedes check-in date", ErrInvalidDateRange)
	}
	return nil
}
