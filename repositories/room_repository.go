package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"frontdesk-backend/models"
)

// ErrRoomNotFound is returned when a room ID or number resolves to nothing.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepository encapsulates retrieval/persistence of hotel rooms.
type RoomRepository struct {
	DB *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{DB: db}
}

func (r *RoomRepository) LoadByID(id string) (models.Room, error) {
	var room models.Room
	if err := r.DB.First(&room, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("load room %s: %w", id, err)
	}
	return room, nil
}

func (r *RoomRepository) LoadByNumber(number string) (models.Room, error) {
	var room models.Room
	if err := r.DB.First(&room, "room_number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("load room number %s: %w", number, err)
	}
	return room, nil
}

func (r *RoomRepository) ListAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := r.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (r *RoomRepository) ListByType(roomType string) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.DB.Where("room_type_id = ?", roomType).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms of type %s: %w", roomType, err)
	}
	return rooms, nil
}

func (r *RoomRepository) ListEmptyByType(roomType string) ([]models.Room, error) {
	var rooms []models.Room
	err := r.DB.Where("room_type_id = ? AND status = ?", roomType, models.RoomStatusEmpty).
		Order("room_number").Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("list empty rooms of type %s: %w", roomType, err)
	}
	return rooms, nil
}

// CountByType returns the physical room count per room type, the capacity
// side of the overbooking check.
func (r *RoomRepository) CountByType(roomType string) (int, error) {
	var count int64
	if err := r.DB.Model(&models.Room{}).Where("room_type_id = ?", roomType).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count rooms of type %s: %w", roomType, err)
	}
	return int(count), nil
}

func (r *RoomRepository) ExistsByNumber(number string) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.Room{}).Where("room_number = ?", number).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check room number %s: %w", number, err)
	}
	return count > 0, nil
}

// ExistsByNumberExcluding reports whether the room number is taken by a
// room other than the one identified by id. Used on update so a room
// keeping its own number does not trip the uniqueness check.
func (r *RoomRepository) ExistsByNumberExcluding(number, id string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Room{}).
		Where("room_number = ? AND room_id <> ?", number, id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check room number %s elsewhere: %w", number, err)
	}
	return count > 0, nil
}

func (r *RoomRepository) Save(room *models.Room) error {
	if err := r.DB.Create(room).Error; err != nil {
		return fmt.Errorf("save room: %w", err)
	}
	return nil
}

func (r *RoomRepository) Update(room *models.Room) error {
	result := r.DB.Model(&models.Room{}).Where("room_id = ?", room.RoomID).
		Select("RoomTypeID", "RoomNumber", "PricePerNight", "MaxOccupancy", "Status", "ImageURLs", "UpdatedBy").
		Updates(room)
	if result.Error != nil {
		return fmt.Errorf("update room %s: %w", room.RoomID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
