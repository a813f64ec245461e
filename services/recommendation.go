package services

import (
	"frontdesk-backend/models"
)

// RoomOption is one proposed (room type, quantity) pairing within a
// recommendation, carrying price and image metadata for display.
type RoomOption struct {
	Type          string   `json:"type"`
	Quantity      int      `json:"quantity"`
	PricePerNight float64  `json:"pricePerNight"`
	ImageURLs     []string `json:"imageUrls"`
}

// RoomOptions is a full recommendation: a primary allocation plus up to
// two alternatives.
type RoomOptions struct {
	Primary      []RoomOption   `json:"primaryOption"`
	Alternatives [][]RoomOption `json:"alternativeOptions"`
}

// recommendStrategy is the common signature shared by the three
// allocation algorithms. Strategies are pure: no I/O, identical inputs
// give identical outputs. An empty result means the strategy cannot
// fulfill the request.
type recommendStrategy func(numGuests, numRooms int, availability map[string]int, roomsByType map[string][]models.Room) []RoomOption

// Recommend runs the three strategies in fixed order. The first
// non-empty result becomes the primary option; later non-empty results
// become alternatives.
func Recommend(numGuests, numRooms int, availability map[string]int, roomsByType map[string][]models.Room) RoomOptions {
	strategies := []recommendStrategy{
		recommendMonoStrict,
		recommendMultiType,
		recommendMonoDecrement,
	}

	options := RoomOptions{Alternatives: [][]RoomOption{}}
	for _, strategy := range strategies {
		option := strategy(numGuests, numRooms, availability, roomsByType)
		if len(option) == 0 {
			continue
		}
		if options.Primary == nil {
			options.Primary = option
		} else {
			options.Alternatives = append(options.Alternatives, option)
		}
	}
	if options.Primary == nil {
		options.Primary = []RoomOption{}
	}
	return options
}

// recommendMonoStrict proposes exactly the requested number of rooms of
// a single type, sized by guests per room: 1 guest per room maps to
// Single, 2 to Double, 3 to Triple, and 4 or 5 to Quad. No option when
// that many rooms of the type are not available, or when guests per
// room exceeds 5.
func recommendMonoStrict(numGuests, numRooms int, availability map[string]int, roomsByType map[string][]models.Room) []RoomOption {
	if numGuests <= 0 || numRooms <= 0 {
		return nil
	}
	guestsPerRoom := ceilDiv(numGuests, numRooms)

	var roomType string
	switch guestsPerRoom {
	case 1:
		roomType = models.RoomTypeSingle
	case 2:
		roomType = models.RoomTypeDouble
	case 3:
		roomType = models.RoomTypeTriple
	case 4, 5:
		roomType = models.RoomTypeQuad
	default:
		return nil
	}

	if numRooms > availability[roomType] {
		return nil
	}
	return monoOption(roomType, numRooms, roomsByType)
}

// recommendMultiType greedily allocates guests across room types from
// largest to smallest capacity, capped at each type's availability;
// uncovered guests roll forward to smaller types. Succeeds only when
// the Single pass leaves zero guests unallocated. The requested room
// count is deliberately ignored.
func recommendMultiType(numGuests, numRooms int, availability map[string]int, roomsByType map[string][]models.Room) []RoomOption {
	if numGuests <= 0 {
		return nil
	}

	descending := []string{models.RoomTypeQuad, models.RoomTypeTriple, models.RoomTypeDouble, models.RoomTypeSingle}

	option := []RoomOption{}
	remaining := numGuests
	for _, roomType := range descending {
		rooms := roomsByType[roomType]
		if len(rooms) == 0 {
			continue
		}

		capacity := models.RoomTypeCapacity(roomType)
		required := remaining / capacity
		remaining = remaining % capacity
		if required == 0 {
			continue
		}

		quantity := required
		if required > availability[roomType] {
			// shortfall: roll the uncovered guests forward to smaller types
			quantity = availability[roomType]
			remaining += capacity * (required - quantity)
		}
		if quantity > 0 {
			option = append(option, RoomOption{
				Type:          roomType,
				Quantity:      quantity,
				PricePerNight: rooms[0].PricePerNight,
				ImageURLs:     rooms[0].ImageURLList(),
			})
		}
	}

	if remaining != 0 {
		return nil
	}
	return option
}

// recommendMonoDecrement looks for a single room type one size below the
// strict fit, holding the full guest count with more rooms than the
// caller asked for. Quad is excluded so that, e.g., five guests in one
// room do not produce a doubled Quad allocation when a smaller option
// exists.
func recommendMonoDecrement(numGuests, numRooms int, availability map[string]int, roomsByType map[string][]models.Room) []RoomOption {
	if numGuests <= 0 || numRooms <= 0 {
		return nil
	}
	guestsPerRoom := ceilDiv(numGuests, numRooms)

	var roomType string
	switch guestsPerRoom - 1 {
	case 1:
		roomType = models.RoomTypeSingle
	case 2:
		roomType = models.RoomTypeDouble
	case 3:
		roomType = models.RoomTypeTriple
	default:
		return nil
	}

	quantity := ceilDiv(numGuests, models.RoomTypeCapacity(roomType))
	if quantity > availability[roomType] {
		return nil
	}
	return monoOption(roomType, quantity, roomsByType)
}

// monoOption builds a single-type option, reading price and images from
// the first room instance of the type.
func monoOption(roomType string, quantity int, roomsByType map[string][]models.Room) []RoomOption {
	rooms := roomsByType[roomType]
	if len(rooms) == 0 {
		return nil
	}
	return []RoomOption{{
		Type:          roomType,
		Quantity:      quantity,
		PricePerNight: rooms[0].PricePerNight,
		ImageURLs:     rooms[0].ImageURLList(),
	}}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
