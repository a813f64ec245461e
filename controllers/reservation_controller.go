package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: reservations}
}

// CreateReservation handles POST /api/reservations.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var input services.CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	reservation, err := rc.Reservations.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Printf("reservation %s created (%s x%d, %s to %s)",
		reservation.ReservationID, reservation.RoomType, reservation.OrderQuantity,
		reservation.CheckInDate, reservation.CheckOutDate)
	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

// GetReservation handles GET /api/reservations/:id.
func (rc *ReservationController) GetReservation(c *gin.Context) {
	view, err := rc.Reservations.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}

// GetReservations handles GET /api/reservations?name=Jane+Doe.
func (rc *ReservationController) GetReservations(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name query parameter is required")
		return
	}

	views, err := rc.Reservations.GetByGuestName(name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

// GetDeskReservations handles GET /api/reservations/desk.
func (rc *ReservationController) GetDeskReservations(c *gin.Context) {
	views, err := rc.Reservations.GetForDesk()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

// UpdateReservation handles PATCH /api/reservations/:id, applying guest
// edits and the requested status transition as one atomic commit.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var input services.UpdateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	view, err := rc.Reservations.UpdateStatusAndRooms(c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}

// PromoteDueIn handles POST /api/reservations/promote-due-in, the daily
// batch promotion invoked by an external scheduler.
func (rc *ReservationController) PromoteDueIn(c *gin.Context) {
	count, err := rc.Reservations.PromoteDueIn()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Printf("promoted %d confirmed reservation(s) to due in", count)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"promoted": count})
}
