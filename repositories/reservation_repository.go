package repositories

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"frontdesk-backend/models"
)

// ErrReservationNotFound is returned when a reservation ID resolves to nothing.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrCommitConflict marks a concurrent write collision detected by the
// database during a transactional commit. Retryable: the caller should
// reload state and retry once.
var ErrCommitConflict = errors.New("commit conflict")

// ReservationRepository encapsulates retrieval/persistence of guest
// reservations, including the transactional commit of a reservation
// together with its affected rooms.
type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) LoadByID(id string) (models.Reservation, error) {
	var reservation models.Reservation
	if err := r.DB.First(&reservation, "reservation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reservation, ErrReservationNotFound
		}
		return reservation, fmt.Errorf("load reservation %s: %w", id, err)
	}
	return reservation, nil
}

func (r *ReservationRepository) QueryByGuestName(name string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.DB.Where("guest_full_name = ?", name).
		Order("check_in_date").Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("query reservations by guest name: %w", err)
	}
	return reservations, nil
}

// QueryByStatus returns reservations in the given status. The optional
// date narrows the result: Checked Out matches the check-out date exactly,
// Confirmed matches check-in dates from the date onward, and Due In
// matches the check-in date exactly (used by the daily promotion).
func (r *ReservationRepository) QueryByStatus(status string, date string) ([]models.Reservation, error) {
	q := r.DB.Where("booking_status = ?", status)
	if date != "" {
		switch status {
		case models.StatusCheckedOut:
			q = q.Where("check_out_date = ?", date)
		case models.StatusConfirmed:
			q = q.Where("check_in_date >= ?", date)
		default:
			q = q.Where("check_in_date = ?", date)
		}
	}

	var reservations []models.Reservation
	if err := q.Order("check_in_date").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("query reservations by status %s: %w", status, err)
	}
	return reservations, nil
}

// QueryConfirmedForDate returns Confirmed reservations whose check-in
// date equals the given date, the input of the Due-In promotion.
func (r *ReservationRepository) QueryConfirmedForDate(date string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.DB.Where("booking_status = ? AND check_in_date = ?", models.StatusConfirmed, date).
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("query confirmed reservations for %s: %w", date, err)
	}
	return reservations, nil
}

// QueryOverlapCount sums OrderQuantity over active reservations of the
// given room type whose stay interval overlaps [checkIn, checkOut) under
// the half-open comparison: existing.CheckIn < checkOut AND
// existing.CheckOut > checkIn. Dates are YYYY-MM-DD strings, so the
// string comparison in SQL is chronological.
func (r *ReservationRepository) QueryOverlapCount(roomType, checkIn, checkOut string) (int, error) {
	var total int64
	err := r.DB.Model(&models.Reservation{}).
		Select("COALESCE(SUM(order_quantity), 0)").
		Where("room_type = ?", roomType).
		Where("booking_status IN ?", models.ActiveStatuses).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("query overlap count: %w", err)
	}
	return int(total), nil
}

func (r *ReservationRepository) Save(reservation *models.Reservation) error {
	if err := r.DB.Create(reservation).Error; err != nil {
		return fmt.Errorf("save reservation: %w", err)
	}
	return nil
}

// CommitRoomReservation writes the reservation and all affected rooms as
// a single all-or-nothing transaction. A write collision (deadlock or
// lock wait timeout) surfaces as ErrCommitConflict with no partial state
// applied.
func (r *ReservationRepository) CommitRoomReservation(reservation *models.Reservation, rooms []models.Room) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Reservation{}).
			Where("reservation_id = ?", reservation.ReservationID).
			Select("BookingStatus", "RoomIDs", "CheckInDate", "CheckOutDate",
				"GuestFullName", "GuestEmail", "GuestPhoneNumber", "GuestDateOfBirth", "UpdatedBy").
			Updates(reservation)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrReservationNotFound
		}

		for i := range rooms {
			res := tx.Model(&models.Room{}).
				Where("room_id = ?", rooms[i].RoomID).
				Select("Status", "UpdatedBy").
				Updates(&rooms[i])
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrRoomNotFound
			}
		}
		return nil
	})
	return mapCommitError(err)
}

// CommitBatchStatus moves every given reservation to newStatus in one
// transaction, used by the scheduled Confirmed → Due In promotion.
func (r *ReservationRepository) CommitBatchStatus(reservations []models.Reservation, newStatus string) error {
	if len(reservations) == 0 {
		return nil
	}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range reservations {
			result := tx.Model(&models.Reservation{}).
				Where("reservation_id = ?", reservations[i].ReservationID).
				Update("booking_status", newStatus)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrReservationNotFound
			}
		}
		return nil
	})
	return mapCommitError(err)
}

// MySQL error numbers for lock wait timeout and deadlock.
const (
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

func mapCommitError(err error) error {
	if err == nil {
		return nil
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		if mysqlErr.Number == mysqlErrDeadlock || mysqlErr.Number == mysqlErrLockWaitTimeout {
			return fmt.Errorf("%w: %v", ErrCommitConflict, err)
		}
	}
	return err
}
