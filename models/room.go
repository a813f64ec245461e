package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Room statuses. A room is toggled between them only as a side effect
// of a reservation status transition.
const (
	RoomStatusEmpty    = "Empty"
	RoomStatusOccupied = "Occupied"
)

// Room type identifiers, ordered by capacity.
const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeTriple = "Triple"
	RoomTypeQuad   = "Quad"
)

// RoomTypes lists all valid room type identifiers.
var RoomTypes = []string{RoomTypeSingle, RoomTypeDouble, RoomTypeTriple, RoomTypeQuad}

type Room struct {
	// RoomID is the opaque primary key, separate from the human-facing RoomNumber.
	RoomID     string `json:"roomId" gorm:"column:room_id;primaryKey;type:varchar(16)"`
	RoomTypeID string `json:"roomTypeId" gorm:"column:room_type_id;index;type:varchar(16)"`

	// RoomNumber is provided to guests and used by desk staff; unique across all rooms.
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	PricePerNight float64 `json:"pricePerNight" gorm:"column:price_per_night"`
	MaxOccupancy  int     `json:"maxOccupancy" gorm:"column:max_occupancy"`

	Status string `json:"status" gorm:"column:status;type:varchar(16);index"`

	// ImageURLs holds publicly-accessible room image URLs as a JSON array.
	ImageURLs datatypes.JSON `json:"imageUrls" gorm:"column:image_urls"`

	UpdatedBy string `json:"updatedBy" gorm:"column:updated_by;type:varchar(128)"`
}

func (r *Room) MarkEmpty() {
	r.Status = RoomStatusEmpty
}

func (r *Room) MarkOccupied() {
	r.Status = RoomStatusOccupied
}

func (r *Room) IsOccupied() bool {
	return r.Status == RoomStatusOccupied
}

// ImageURLList decodes the JSON image column. A missing or malformed
// column yields an empty list.
func (r *Room) ImageURLList() []string {
	var urls []string
	if len(r.ImageURLs) > 0 {
		_ = json.Unmarshal(r.ImageURLs, &urls)
	}
	if urls == nil {
		urls = []string{}
	}
	return urls
}

func (r *Room) SetImageURLList(urls []string) {
	if urls == nil {
		urls = []string{}
	}
	b, _ := json.Marshal(urls)
	r.ImageURLs = datatypes.JSON(b)
}

// IsValidRoomType reports whether t names one of the four supported room types.
func IsValidRoomType(t string) bool {
	for _, rt := range RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// RoomTypeCapacity returns the maximum occupancy for a room type, 0 if unknown.
func RoomTypeCapacity(t string) int {
	switch t {
	case RoomTypeSingle:
		return 1
	case RoomTypeDouble:
		return 2
	case RoomTypeTriple:
		return 3
	case RoomTypeQuad:
		return 4
	default:
		return 0
	}
}
