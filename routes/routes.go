package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotel-checkin-backend/controllers"
	"hotel-checkin-backend/middleware"
)

// SetupRouter wires the HTTP surface. The kiosk endpoints live under
// /api/checkin; bookings and rooms follow the usual resource layout.
func SetupRouter(
	log *logrus.Logger,
	corsOrigins []string,
	bc *controllers.BookingController,
	rc *controllers.RoomController,
	cc *controllers.CheckinController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))

	origins := corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
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

	api := r.Group("/api")
	{
		checkin := api.Group("/checkin")
		{
			checkin.POST("/verify", cc.VerifyCode)
			checkin.POST("/resend-passcode", cc.ResendPasscode)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingByID)
			bookings.POST("/:id/cancel", bc.CancelBooking)
			bookings.PATCH("/:id/status", bc.UpdateBookingStatus)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.GET("/:id/availability", rc.CheckAvailability)
			rooms.PATCH("/:id/availability", rc.UpdateRoomAvailability)
		}
	}

	return r
}
