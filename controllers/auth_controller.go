package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

type AuthController struct {
	Admins *services.AdminService
}

func NewAuthController(admins *services.AdminService) *AuthController {
	return &AuthController{Admins: admins}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login and returns a bearer token.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	admin, token, err := ac.Admins.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Printf("admin %s logged in", admin.AdminID)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"admin_id":  admin.AdminID,
			"full_name": admin.FullName,
			"email":     admin.Email,
		},
	})
}
