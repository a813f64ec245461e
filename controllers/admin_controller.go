package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

type AdminController struct {
	Admins *services.AdminService
}

func NewAdminController(admins *services.AdminService) *AdminController {
	return &AdminController{Admins: admins}
}

// CreateAdmin handles POST /api/admins.
func (ac *AdminController) CreateAdmin(c *gin.Context) {
	var input services.CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	admin, err := ac.Admins.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Printf("admin account %s created for %s", admin.AdminID, admin.Email)
	utils.JSONSuccess(c, http.StatusCreated, admin)
}

// GetAdmin handles GET /api/admins/:id.
func (ac *AdminController) GetAdmin(c *gin.Context) {
	admin, err := ac.Admins.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admin)
}

// GetAdmins handles GET /api/admins.
func (ac *AdminController) GetAdmins(c *gin.Context) {
	admins, err := ac.Admins.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admins)
}

// UpdateAdmin handles PUT /api/admins/:id.
func (ac *AdminController) UpdateAdmin(c *gin.Context) {
	var input services.UpdateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	admin, err := ac.Admins.UpdateDetails(c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admin)
}

// UpdatePassword handles PUT /api/admins/password.
func (ac *AdminController) UpdatePassword(c *gin.Context) {
	var input services.UpdatePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ac.Admins.UpdatePassword(input); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "password updated"})
}
