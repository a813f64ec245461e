package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"frontdesk-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.Reservation{}))
	return db
}

func createRoom(t *testing.T, db *gorm.DB, id, roomType, number string) models.Room {
	t.Helper()

	room := models.Room{RoomID: id, RoomTypeID: roomType, RoomNumber: number}
	room.MarkEmpty()
	room.SetImageURLList(nil)
	require.NoError(t, db.Create(&room).Error)
	return room
}

func createReservation(t *testing.T, db *gorm.DB, id, roomType string, quantity int, status, checkIn, checkOut string) models.Reservation {
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

func TestQueryOverlapCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewReservationRepository(db)

	// two Doubles for 2026-05-10 to 2026-05-12, plus noise that must
	// not count: wrong type, cancelled, checked out
	createReservation(t, db, "0000000001", models.RoomTypeDouble, 2, models.StatusConfirmed, "2026-05-10", "2026-05-12")
	createReservation(t, db, "0000000002", models.RoomTypeTriple, 1, models.StatusConfirmed, "2026-05-10", "2026-05-12")
	createReservation(t, db, "0000000003", models.RoomTypeDouble, 5, models.StatusCancelled, "2026-05-10", "2026-05-12")
	createReservation(t, db, "0000000004", models.RoomTypeDouble, 5, models.StatusCheckedOut, "2026-05-10", "2026-05-12")

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"straddles the stay", "2026-05-11", "2026-05-13", 2},
		{"contains the stay", "2026-05-09", "2026-05-13", 2},
		{"contained by the stay", "2026-05-10", "2026-05-11", 2},
		{"starts on their check-out day", "2026-05-12", "2026-05-14", 0},
		{"ends on their check-in day", "2026-05-08", "2026-05-10", 0},
		{"disjoint window", "2026-06-01", "2026-06-03", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.QueryOverlapCount(models.RoomTypeDouble, tc.checkIn, tc.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCommitRoomReservationPersistsBothSides(t *testing.T) {
	db := newTestDB(t)
	repo := NewReservationRepository(db)

	room := createRoom(t, db, "r1", models.RoomTypeDouble, "201")
	reservation := createReservation(t, db, "0000000001", models.RoomTypeDouble, 1, models.StatusDueIn, "2026-05-10", "2026-05-12")

	room.MarkOccupied()
	room.UpdatedBy = "desk@frontdesk.local"
	reservation.CheckIn([]models.Room{room})
	reservation.UpdatedBy = "desk@frontdesk.local"

	require.NoError(t, repo.CommitRoomReservation(&reservation, []models.Room{room}))

	stored, err := repo.LoadByID("0000000001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedIn, stored.BookingStatus)
	assert.Equal(t, []string{"r1"}, stored.RoomIDList())
	assert.Equal(t, "desk@frontdesk.local", stored.UpdatedBy)

	var storedRoom models.Room
	require.NoError(t, db.First(&storedRoom, "room_id = ?", "r1").Error)
	assert.Equal(t, models.RoomStatusOccupied, storedRoom.Status)
}

func TestCommitRoomReservationUnknownReservation(t *testing.T) {
	db := newTestDB(t)
	repo := NewReservationRepository(db)

	reservation := models.Reservation{ReservationID: "nope", BookingStatus: models.StatusCancelled}
	reservation.SetRoomIDList(nil)

	err := repo.CommitRoomReservation(&reservation, nil)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

// A failing room write must roll back the reservation write too.
func TestCommitRoomReservationRollsBackOnUnknownRoom(t *testing.T) {
	db := newTestDB(t)
	repo := NewReservationRepository(db)

	reservation := createReservation(t, db, "0000000001", models.RoomTypeDouble, 1, models.StatusDueIn, "2026-05-10", "2026-05-12")

	ghost := models.Room{RoomID: "ghost"}
	ghost.MarkOccupied()
	reservation.CheckIn([]models.Room{ghost})

	err := repo.CommitRoomReservation(&reservation, []models.Room{ghost})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	stored, err := repo.LoadByID("0000000001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDueIn, stored.BookingStatus)
	assert.Empty(t, stored.RoomIDList())
}

func TestCommitBatchStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewReservationRepository(db)

	createReservation(t, db, "0000000001", models.RoomTypeDouble, 1, models.StatusConfirmed, "2026-05-10", "2026-05-12")
	createReservation(t, db, "0000000002", models.RoomTypeSingle, 1, models.StatusConfirmed, "2026-05-10", "2026-05-11")

	due, err := repo.QueryConfirmedForDate("2026-05-10")
	require.NoError(t, err)
	require.Len(t, due, 2)

	require.NoError(t, repo.CommitBatchStatus(due, models.StatusDueIn))

	for _, id := range []string{"0000000001", "0000000002"} {
		stored, err := repo.LoadByID(id)
		require.NoError(t, err)
		assert.Equal(t, models.StatusDueIn, stored.BookingStatus)
	}
}

func TestCommitBatchStatusEmptyIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := NewReservationRepository(db)

	assert.NoError(t, repo.CommitBatchStatus(nil, models.StatusDueIn))
}

func TestQueryByStatusDateFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewReservationRepository(db)

	createReservation(t, db, "0000000001", models.RoomTypeDouble, 1, models.StatusCheckedOut, "2026-05-08", "2026-05-10")
	createReservation(t, db, "0000000002", models.RoomTypeDouble, 1, models.StatusCheckedOut, "2026-05-08", "2026-05-11")
	createReservation(t, db, "0000000003", models.RoomTypeDouble, 1, models.StatusConfirmed, "2026-05-09", "2026-05-12")
	createReservation(t, db, "0000000004", models.RoomTypeDouble, 1, models.StatusConfirmed, "2026-05-20", "2026-05-22")

	// Checked Out narrows on the exact check-out date
	out, err := repo.QueryByStatus(models.StatusCheckedOut, "2026-05-10")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "0000000001", out[0].ReservationID)

	// Confirmed narrows to check-in dates from the date onward
	upcoming, err := repo.QueryByStatus(models.StatusConfirmed, "2026-05-10")
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "0000000004", upcoming[0].ReservationID)

	// no date returns everything in the status
	all, err := repo.QueryByStatus(models.StatusConfirmed, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestQueryByGuestName(t *testing.T) {
	db := newTestDB(t)
	repo := NewReservationRepository(db)

	createReservation(t, db, "0000000001", models.RoomTypeDouble, 1, models.StatusConfirmed, "2026-05-10", "2026-05-12")
	other := models.Reservation{
		ReservationID: "0000000002",
		RoomType:      models.RoomTypeSingle,
		OrderQuantity: 1,
		CheckInDate:   "2026-05-10",
		CheckOutDate:  "2026-05-11",
		BookingStatus: models.StatusConfirmed,
		GuestFullName: "John Smith",
	}
	other.SetRoomIDList(nil)
	require.NoError(t, db.Create(&other).Error)

	found, err := repo.QueryByGuestName("Jane Doe")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "0000000001", found[0].ReservationID)
}
