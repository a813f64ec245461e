package services

import (
	"errors"

	"frontdesk-backend/repositories"
)

// Error kinds surfaced to callers. Controllers map them to HTTP status
// codes; the messages they are wrapped with are usable directly as
// user-facing reasons.
var (
	// ErrInvalidDateRange covers check-in after check-out, a date in the
	// past, or a date beyond the one-year booking horizon.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidInput covers malformed request fields other than dates and
	// statuses: unknown room types, missing or negative values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOverbooking marks a creation that would exceed physical room
	// capacity for the requested dates.
	ErrOverbooking = errors.New("overbooking violation")

	// ErrRoomConflict marks a room already assigned to a different active
	// reservation at check-in time.
	ErrRoomConflict = errors.New("room conflict")

	// ErrInvalidStatus marks an unrecognized target booking status.
	ErrInvalidStatus = errors.New("invalid booking status")

	// Not-found and conflict kinds originate in the repositories; aliased
	// here so callers can depend on a single package.
	ErrRoomNotFound        = repositories.ErrRoomNotFound
	ErrReservationNotFound = repositories.ErrReservationNotFound
	ErrCommitConflict      = repositories.ErrCommitConflict
)
