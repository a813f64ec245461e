package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"frontdesk-backend/models"
	"frontdesk-backend/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.Reservation{}))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, id, roomType, number string) models.Room {
	t.Helper()

	room := models.Room{
		RoomID:        id,
		RoomTypeID:    roomType,
		RoomNumber:    number,
		PricePerNight: 100,
		MaxOccupancy:  models.RoomTypeCapacity(roomType),
	}
	room.MarkEmpty()
	room.SetImageURLList(nil)
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedReservation(t *testing.T, db *gorm.DB, id, roomType string, quantity int, status, checkIn, checkOut string) models.Reservation {
	t.Helper()

	reservation := models.Reservation{
		ReservationID: id,
		RoomType:      roomType,
		OrderQuantity: quantity,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		BookingStatus: status,
		GuestFullName: "Jane Doe",
	}
	reservation.SetRoomIDList(nil)
	require.NoError(t, db.Create(&reservation).Error)
	return reservation
}

func newAvailabilityService(db *gorm.DB) *AvailabilityService {
	return NewAvailabilityService(
		repositories.NewRoomRepository(db),
		repositories.NewReservationRepository(db),
	)
}

func TestCheckAvailabilityRejectsOverbooking(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, "r1", models.RoomTypeDouble, "201")
	seedRoom(t, db, "r2", models.RoomTypeDouble, "202")
	seedReservation(t, db, "0000000001", models.RoomTypeDouble, 2, models.StatusConfirmed, "2026-10-10", "2026-10-12")

	svc := newAvailabilityService(db)

	err := svc.CheckAvailability(models.RoomTypeDouble, "2026-10-11", "2026-10-13", 1)
	assert.ErrorIs(t, err, ErrOverbooking)
}

func TestCheckAvailabilityAllowsBackToBackStays(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, "r1", models.RoomTypeDouble, "201")
	seedReservation(t, db, "0000000001", models.RoomTypeDouble, 1, models.StatusConfirmed, "2026-10-10", "2026-10-12")

	svc := newAvailabilityService(db)

	// new stay starts the day the existing one checks out
	assert.NoError(t, svc.CheckAvailability(models.RoomTypeDouble, "2026-10-12", "2026-10-14", 1))
}

func TestCheckAvailabilityIgnoresInactiveStatuses(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, "r1", models.RoomTypeDouble, "201")
	seedReservation(t, db, "0000000001", models.RoomTypeDouble, 1, models.StatusCancelled, "2026-10-10", "2026-10-12")
	seedReservation(t, db, "0000000002", models.RoomTypeDouble, 1, models.StatusCheckedOut, "2026-10-10", "2026-10-12")

	svc := newAvailabilityService(db)

	assert.NoError(t, svc.CheckAvailability(models.RoomTypeDouble, "2026-10-10", "2026-10-12", 1))
}

func TestAvailableCountFloorsAtZero(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, "r1", models.RoomTypeSingle, "101")
	seedReservation(t, db, "0000000001", models.RoomTypeSingle, 3, models.StatusCheckedIn, "2026-10-10", "2026-10-12")

	svc := newAvailabilityService(db)

	available, err := svc.AvailableCount(models.RoomTypeSingle, "2026-10-10", "2026-10-12")
	require.NoError(t, err)
	assert.Equal(t, 0, available)
}

func TestValidateStayDates(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
	}{
		{"valid stay", "2026-03-15", "2026-03-18", false},
		{"same-day stay", "2026-03-15", "2026-03-15", false},
		{"starts today", "2026-03-10", "2026-03-11", false},
		{"check-in in the past", "2026-03-09", "2026-03-12", true},
		{"check-out precedes check-in", "2026-03-18", "2026-03-15", true},
		{"beyond one-year horizon", "2027-03-11", "2027-03-12", true},
		{"at one-year horizon", "2027-03-09", "2027-03-10", false},
		{"bad check-in format", "15-03-2026", "2026-03-18", true},
		{"bad check-out format", "2026-03-15", "March 18", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStayDates(tc.checkIn, tc.checkOut, now)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
