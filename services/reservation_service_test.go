package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"frontdesk-backend/models"
	"frontdesk-backend/repositories"
)

func newReservationService(db *gorm.DB) *ReservationService {
	roomRepo := repositories.NewRoomRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	return NewReservationService(
		reservationRepo,
		roomRepo,
		NewAvailabilityService(roomRepo, reservationRepo),
		NewTransitioner(roomRepo),
		time.UTC,
	)
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(models.DateLayout)
}

func TestCreateReservationGuardsOverbooking(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, "r1", models.RoomTypeDouble, "201")

	svc := newReservationService(db)

	input := CreateReservationInput{
		RoomType:       models.RoomTypeDouble,
		OrderQuantity:  1,
		CheckInDate:    futureDate(7),
		CheckOutDate:   futureDate(9),
		NumberOfGuests: 2,
		GuestFullName:  "Jane Doe",
	}

	first, err := svc.Create(input)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, first.BookingStatus)
	assert.Len(t, first.ReservationID, 10)
	assert.Empty(t, first.RoomIDList())

	// the only Double is now spoken for over that window
	_, err = svc.Create(input)
	assert.ErrorIs(t, err, ErrOverbooking)

	// a disjoint window is fine
	input.CheckInDate = futureDate(9)
	input.CheckOutDate = futureDate(11)
	_, err = svc.Create(input)
	assert.NoError(t, err)
}

func TestCreateReservationRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(db)

	_, err := svc.Create(CreateReservationInput{
		RoomType: "Penthouse", OrderQuantity: 1,
		CheckInDate: futureDate(1), CheckOutDate: futureDate(2),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(CreateReservationInput{
		RoomType: models.RoomTypeDouble, OrderQuantity: 0,
		CheckInDate: futureDate(1), CheckOutDate: futureDate(2),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(CreateReservationInput{
		RoomType: models.RoomTypeDouble, OrderQuantity: 1,
		CheckInDate: "2020-01-01", CheckOutDate: "2020-01-02",
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestUpdateStatusAndRoomsLifecycle(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, "r1", models.RoomTypeDouble, "201")
	reservation := seedReservation(t, db, "0000000001", models.RoomTypeDouble, 1, models.StatusDueIn, futureDate(1), futureDate(3))

	svc := newReservationService(db)

	edit := UpdateReservationInput{
		ReservationStatus: models.StatusCheckedIn,
		RoomNumbers:       []string{"201"},
		CheckInDate:       reservation.CheckInDate,
		CheckOutDate:      reservation.CheckOutDate,
		GuestFullName:     "Jane Doe",
		GuestEmail:        "jane@example.com",
		UpdatedBy:         "desk@frontdesk.local",
	}

	view, err := svc.UpdateStatusAndRooms("0000000001", edit)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedIn, view.BookingStatus)
	assert.Equal(t, []string{"201"}, view.RoomNumbers)

	var room models.Room
	require.NoError(t, db.First(&room, "room_id = ?", "r1").Error)
	assert.Equal(t, models.RoomStatusOccupied, room.Status)

	edit.ReservationStatus = models.StatusCheckedOut
	edit.RoomNumbers = nil
	view, err = svc.UpdateStatusAndRooms("0000000001", edit)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedOut, view.BookingStatus)
	assert.Empty(t, view.RoomNumbers)

	require.NoError(t, db.First(&room, "room_id = ?", "r1").Error)
	assert.Equal(t, models.RoomStatusEmpty, room.Status)
}

// Re-submitting the same check-in must succeed: the rooms are already
// held by this reservation and every value written is unchanged.
func TestUpdateStatusAndRoomsRecheckInIsNoOp(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, "r1", models.RoomTypeDouble, "201")
	reservation := seedReservation(t, db, "0000000001", models.RoomTypeDouble, 1, models.StatusDueIn, futureDate(1), futureDate(3))

	svc := newReservationService(db)

	edit := UpdateReservationInput{
		ReservationStatus: models.StatusCheckedIn,
		RoomNumbers:       []string{"201"},
		CheckInDate:       reservation.CheckInDate,
		CheckOutDate:      reservation.CheckOutDate,
		GuestFullName:     "Jane Doe",
		UpdatedBy:         "desk@frontdesk.local",
	}

	_, err := svc.UpdateStatusAndRooms("0000000001", edit)
	require.NoError(t, err)

	view, err := svc.UpdateStatusAndRooms("0000000001", edit)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedIn, view.BookingStatus)
	assert.Equal(t, []string{"201"}, view.RoomNumbers)
}

func TestUpdateStatusAndRoomsRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	reservation := seedReservation(t, db, "0000000001", models.RoomTypeDouble, 1, models.StatusConfirmed, futureDate(1), futureDate(3))

	svc := newReservationService(db)

	_, err := svc.UpdateStatusAndRooms("0000000001", UpdateReservationInput{
		ReservationStatus: "On Hold",
		CheckInDate:       reservation.CheckInDate,
		CheckOutDate:      reservation.CheckOutDate,
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusAndRoomsUnknownReservation(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(db)

	_, err := svc.UpdateStatusAndRooms("nope", UpdateReservationInput{
		ReservationStatus: models.StatusCancelled,
		CheckInDate:       futureDate(1),
		CheckOutDate:      futureDate(2),
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestPromoteDueIn(t *testing.T) {
	db := newTestDB(t)
	today := time.Now().UTC().Format(models.DateLayout)

	seedReservation(t, db, "0000000001", models.RoomTypeDouble, 1, models.StatusConfirmed, today, futureDate(2))
	seedReservation(t, db, "0000000002", models.RoomTypeSingle, 1, models.StatusConfirmed, futureDate(5), futureDate(6))

	svc := newReservationService(db)

	promoted, err := svc.PromoteDueIn()
	require.NoError(t, err)
	assert.Equal(t, 1, promoted)

	stored, err := svc.Reservations.LoadByID("0000000001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDueIn, stored.BookingStatus)

	untouched, err := svc.Reservations.LoadByID("0000000002")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, untouched.BookingStatus)

	// nothing left to promote
	promoted, err = svc.PromoteDueIn()
	require.NoError(t, err)
	assert.Equal(t, 0, promoted)
}
