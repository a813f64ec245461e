package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"frontdesk-backend/controllers"
	"frontdesk-backend/middleware"
	"frontdesk-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the route tree. Mutating routes
// sit behind bearer auth; the booking-page reads stay public.
func SetupRouter(
	rmc *controllers.RoomController,
	rsc *controllers.ReservationController,
	adc *controllers.AdminController,
	auc *controllers.AuthController,
	jwt *services.JWTService,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(jwt)
	roomCache := cache.New(time.Minute, 5*time.Minute)

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			// options must come before /:id
			rooms.GET("/options", rmc.GetRoomOptions)
			rooms.GET("", middleware.Cache(roomCache, time.Minute), rmc.GetRooms)
			rooms.GET("/:id", rmc.GetRoom)
			rooms.POST("", requireAuth, rmc.CreateRoom)
			rooms.PUT("/:id", requireAuth, rmc.UpdateRoom)
			rooms.PATCH("/:id", requireAuth, rmc.UpdateRoom)
		}

		reservations := api.Group("/reservations")
		{
			// guests look up their own booking by ID or name
			reservations.GET("/desk", requireAuth, rsc.GetDeskReservations)
			reservations.GET("", rsc.GetReservations)
			reservations.GET("/:id", rsc.GetReservation)
			reservations.POST("", rsc.CreateReservation)
			reservations.PATCH("/:id", requireAuth, rsc.UpdateReservation)
			reservations.POST("/promote-due-in", requireAuth, rsc.PromoteDueIn)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimiter(rate.Every(time.Second), 5), auc.Login)
		}

		// password change authenticates itself with the old password
		api.PUT("/admins/password", adc.UpdatePassword)

		admins := api.Group("/admins", requireAuth)
		{
			admins.GET("", adc.GetAdmins)
			admins.POST("", adc.CreateAdmin)
			admins.GET("/:id", adc.GetAdmin)
			admins.PUT("/:id", adc.UpdateAdmin)
			admins.PATCH("/:id", adc.UpdateAdmin)
		}
	}

	return r
}
