package services

import (
	"fmt"

	"frontdesk-backend/models"
	"frontdesk-backend/repositories"
)

// roomEffect produces the updated room records for a transition.
type roomEffect func(*repositories.RoomRepository, *models.Reservation, []string) ([]models.Room, error)

// reservationEffect applies the matching reservation-side change.
type reservationEffect func(*models.Reservation, []models.Room)

// transitions maps each target booking status to its paired room-side
// and reservation-side effects. Every status except Checked In releases
// the assigned rooms and clears the assignment, keeping the invariant
// that RoomIDs is non-empty exactly while the status is Checked In.
var transitions = map[string]struct {
	rooms roomEffect
	apply reservationEffect
}{
	models.StatusCheckedIn: {
		rooms: occupyRooms,
		apply: func(r *models.Reservation, rooms []models.Room) { r.CheckIn(rooms) },
	},
	models.StatusCheckedOut: {
		rooms: emptyAssignedRooms,
		apply: func(r *models.Reservation, _ []models.Room) { r.CheckOut() },
	},
	models.StatusDueIn: {
		rooms: emptyAssignedRooms,
		apply: func(r *models.Reservation, _ []models.Room) { r.MakeDueIn() },
	},
	models.StatusConfirmed: {
		rooms: emptyAssignedRooms,
		apply: func(r *models.Reservation, _ []models.Room) { r.MakeConfirmed() },
	},
	models.StatusCancelled: {
		rooms: emptyAssignedRooms,
		apply: func(r *models.Reservation, _ []models.Room) { r.MarkCancelled() },
	},
}

// Transitioner is the reservation state-machine core. It mutates
// in-memory representations only; persistence is delegated to
// ReservationRepository.CommitRoomReservation.
type Transitioner struct {
	Rooms *repositories.RoomRepository
}

func NewTransitioner(rooms *repositories.RoomRepository) *Transitioner {
	return &Transitioner{Rooms: rooms}
}

// Transition moves the reservation to targetStatus, applying the paired
// room-occupancy side effect. roomNumbers is only meaningful for the
// Checked In target, where it names the rooms to assign. The updated
// rooms are returned for the caller to commit atomically together with
// the reservation.
func (t *Transitioner) Transition(reservation *models.Reservation, targetStatus string, roomNumbers []string) ([]models.Room, error) {
	effects, ok := transitions[targetStatus]
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized status %q", ErrInvalidStatus, targetStatus)
	}

	rooms, err := effects.rooms(t.Rooms, reservation, roomNumbers)
	if err != nil {
		return nil, err
	}

	effects.apply(reservation, rooms)
	return rooms, nil
}
