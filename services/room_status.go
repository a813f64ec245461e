package services

import (
	"errors"
	"fmt"

	"frontdesk-backend/models"
	"frontdesk-backend/repositories"
)

// occupyRooms resolves each provided room number and marks the room
// Occupied. A room already Occupied on behalf of a different reservation
// is a conflict; a room already held by this same reservation may be
// re-occupied as a state-wise no-op.
func occupyRooms(repo *repositories.RoomRepository, reservation *models.Reservation, roomNumbers []string) ([]models.Room, error) {
	rooms := make([]models.Room, 0, len(roomNumbers))

	for _, roomNumber := range roomNumbers {
		room, err := repo.LoadByNumber(roomNumber)
		if err != nil {
			if errors.Is(err, repositories.ErrRoomNotFound) {
				return nil, fmt.Errorf("%w: room number %s does not exist", ErrRoomNotFound, roomNumber)
			}
			return nil, err
		}

		if room.IsOccupied() && !reservation.HasRoom(room.RoomID) {
			return nil, fmt.Errorf("%w: room number %s is already assigned to another reservation", ErrRoomConflict, roomNumber)
		}

		room.MarkOccupied()
		room.UpdatedBy = reservation.UpdatedBy
		rooms = append(rooms, room)
	}

	return rooms, nil
}

// emptyAssignedRooms resolves the reservation's currently-assigned room
// IDs and marks each Empty. A room ID that no longer resolves is skipped
// rather than failing the whole operation.
func emptyAssignedRooms(repo *repositories.RoomRepository, reservation *models.Reservation, _ []string) ([]models.Room, error) {
	assigned := reservation.RoomIDList()
	rooms := make([]models.Room, 0, len(assigned))

	for _, roomID := range assigned {
		room, err := repo.LoadByID(roomID)
		if err != nil {
			if errors.Is(err, repositories.ErrRoomNotFound) {
				continue
			}
			return nil, err
		}

		room.MarkEmpty()
		room.UpdatedBy = reservation.UpdatedBy
		rooms = append(rooms, room)
	}

	return rooms, nil
}
