package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

// CreateRoom handles POST /api/rooms.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var input services.CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := rc.Rooms.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Printf("room %s created (number %s, type %s)", room.RoomID, room.RoomNumber, room.RoomTypeID)
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// GetRoom handles GET /api/rooms/:id.
func (rc *RoomController) GetRoom(c *gin.Context) {
	room, err := rc.Rooms.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// GetRooms handles GET /api/rooms. With ?type=&status=empty it narrows
// to vacant rooms of one type for manual assignment at the desk.
func (rc *RoomController) GetRooms(c *gin.Context) {
	roomType := strings.TrimSpace(c.Query("type"))
	if roomType != "" && strings.EqualFold(c.Query("status"), "empty") {
		rooms, err := rc.Rooms.GetEmptyByType(roomType)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, rooms)
		return
	}

	rooms, err := rc.Rooms.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// UpdateRoom handles PUT /api/rooms/:id.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	var input services.UpdateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := rc.Rooms.Update(c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// GetRoomOptions handles GET /api/rooms/options, the recommendation
// query driving the booking page.
func (rc *RoomController) GetRoomOptions(c *gin.Context) {
	numGuests, err := strconv.Atoi(c.Query("guests"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "guests query parameter must be a number")
		return
	}
	numRooms, err := strconv.Atoi(c.Query("rooms"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "rooms query parameter must be a number")
		return
	}

	options, err := rc.Rooms.RecommendOptions(numGuests, numRooms, c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, options)
}
