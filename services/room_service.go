package services

import (
	"fmt"
	"strings"

	"frontdesk-backend/models"
	"frontdesk-backend/repositories"
	"frontdesk-backend/utils"
)

// ErrRoomNumberTaken marks a create/update naming a room number already
// in use by another room.
var ErrRoomNumberTaken = fmt.Errorf("room number already in use")

// CreateRoomInput carries the room creation fields; Images are base64
// payloads uploaded alongside.
type CreateRoomInput struct {
	RoomTypeID    string   `json:"roomTypeId"`
	RoomNumber    string   `json:"roomNumber"`
	PricePerNight float64  `json:"pricePerNight"`
	MaxOccupancy  int      `json:"maxOccupancy"`
	Images        []string `json:"images"`
	UpdatedBy     string   `json:"updatedBy"`
}

// UpdateRoomInput carries the editable room fields.
type UpdateRoomInput struct {
	RoomTypeID    string   `json:"roomTypeId"`
	RoomNumber    string   `json:"roomNumber"`
	PricePerNight float64  `json:"pricePerNight"`
	MaxOccupancy  int      `json:"maxOccupancy"`
	Images        []string `json:"images"`
	UpdatedBy     string   `json:"updatedBy"`
}

// RoomService handles room CRUD and the room recommendation query.
type RoomService struct {
	Rooms        *repositories.RoomRepository
	Availability *AvailabilityService
	Images       *ImageService
}

func NewRoomService(rooms *repositories.RoomRepository, availability *AvailabilityService, images *ImageService) *RoomService {
	return &RoomService{Rooms: rooms, Availability: availability, Images: images}
}

// Create persists a new room in status Empty with a generated RoomID,
// enforcing global uniqueness of the human-facing room number.
func (s *RoomService) Create(input CreateRoomInput) (models.Room, error) {
	var room models.Room

	input.RoomNumber = strings.TrimSpace(input.RoomNumber)
	if input.RoomNumber == "" {
		return room, fmt.Errorf("%w: room number is required", ErrInvalidInput)
	}
	if !models.IsValidRoomType(input.RoomTypeID) {
		return room, fmt.Errorf("%w: unrecognized room type %q", ErrInvalidInput, input.RoomTypeID)
	}
	if input.PricePerNight < 0 {
		return room, fmt.Errorf("%w: price per night may not be negative", ErrInvalidInput)
	}
	if input.MaxOccupancy <= 0 {
		input.MaxOccupancy = models.RoomTypeCapacity(input.RoomTypeID)
	}

	taken, err := s.Rooms.ExistsByNumber(input.RoomNumber)
	if err != nil {
		return room, err
	}
	if taken {
		return room, fmt.Errorf("%w: room number %s", ErrRoomNumberTaken, input.RoomNumber)
	}

	id, err := utils.NewRoomID()
	if err != nil {
		return room, fmt.Errorf("generate room id: %w", err)
	}

	urls, err := s.Images.SaveRoomImages(input.Images, id)
	if err != nil {
		return room, err
	}

	room = models.Room{
		RoomID:        id,
		RoomTypeID:    input.RoomTypeID,
		RoomNumber:    input.RoomNumber,
		PricePerNight: input.PricePerNight,
		MaxOccupancy:  input.MaxOccupancy,
		UpdatedBy:     input.UpdatedBy,
	}
	room.MarkEmpty()
	room.SetImageURLList(urls)

	if err := s.Rooms.Save(&room); err != nil {
		return room, err
	}
	return room, nil
}

func (s *RoomService) Get(id string) (models.Room, error) {
	return s.Rooms.LoadByID(id)
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	return s.Rooms.ListAll()
}

func (s *RoomService) GetEmptyByType(roomType string) ([]models.Room, error) {
	if !models.IsValidRoomType(roomType) {
		return nil, fmt.Errorf("%w: unrecognized room type %q", ErrInvalidInput, roomType)
	}
	return s.Rooms.ListEmptyByType(roomType)
}

// Update edits a room's attributes. The room number uniqueness check
// ignores the room being updated so it may keep its own number.
func (s *RoomService) Update(id string, input UpdateRoomInput) (models.Room, error) {
	room, err := s.Rooms.LoadByID(id)
	if err != nil {
		return room, err
	}

	input.RoomNumber = strings.TrimSpace(input.RoomNumber)
	if !models.IsValidRoomType(input.RoomTypeID) {
		return room, fmt.Errorf("%w: unrecognized room type %q", ErrInvalidInput, input.RoomTypeID)
	}

	taken, err := s.Rooms.ExistsByNumberExcluding(input.RoomNumber, id)
	if err != nil {
		return room, err
	}
	if taken {
		return room, fmt.Errorf("%w: room number %s", ErrRoomNumberTaken, input.RoomNumber)
	}

	urls := room.ImageURLList()
	if len(input.Images) > 0 {
		urls, err = s.Images.SaveRoomImages(input.Images, id)
		if err != nil {
			return room, err
		}
	}

	room.RoomTypeID = input.RoomTypeID
	room.RoomNumber = input.RoomNumber
	room.PricePerNight = input.PricePerNight
	room.MaxOccupancy = input.MaxOccupancy
	room.UpdatedBy = input.UpdatedBy
	room.SetImageURLList(urls)

	if err := s.Rooms.Update(&room); err != nil {
		return room, err
	}
	return room, nil
}

// RecommendOptions validates the requested stay and runs the
// recommendation engine against current availability for the window.
func (s *RoomService) RecommendOptions(numGuests, numRooms int, checkIn, checkOut string) (RoomOptions, error) {
	var options RoomOptions

	if numGuests <= 0 || numRooms <= 0 {
		return options, fmt.Errorf("%w: guest and room counts must be positive", ErrInvalidInput)
	}
	if err := validateDateOrder(checkIn, checkOut); err != nil {
		return options, err
	}

	availability := make(map[string]int, len(models.RoomTypes))
	roomsByType := make(map[string][]models.Room, len(models.RoomTypes))
	for _, roomType := range models.RoomTypes {
		rooms, err := s.Rooms.ListByType(roomType)
		if err != nil {
			return options, err
		}
		roomsByType[roomType] = rooms

		available, err := s.Availability.AvailableCount(roomType, checkIn, checkOut)
		if err != nil {
			return options, err
		}
		availability[roomType] = available
	}

	return Recommend(numGuests, numRooms, availability, roomsByType), nil
}
