package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-checkin-backend/services"
	"hotel-checkin-backend/utils"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "invalid request body")
		return
	}

	booking, err := bc.bookings.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidArgument):
			utils.JSONError(c, http.StatusBadRequest, "invalid-argument", err.Error())
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "not-found", "Room not found")
		case errors.Is(err, services.ErrRoomUnavailable):
			utils.JSONError(c, http.StatusConflict, "room-unavailable", "Room is not available for these dates")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "internal", "Failed to create booking")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookings lists all bookings, or the check-ins of one day when a date
// query parameter is present.
func (bc *BookingController) GetBookings(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		list, err := bc.bookings.ListByCheckInDate(c.Request.Context(), date)
		if err != nil {
			if errors.Is(err, services.ErrInvalidArgument) {
				utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "invalid date, expected YYYY-MM-DD")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "internal", "Error fetching bookings")
			return
		}
		utils.JSONSuccess(c, http.StatusOK, list)
		return
	}

	list, err := bc.bookings.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Error fetching bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "not-found", "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Error fetching booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := bc.bookings.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "not-found", "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Error cancelling booking")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Booking cancelled and room freed")
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "status is required")
		return
	}

	if err := bc.bookings.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidArgument):
			utils.JSONError(c, http.StatusBadRequest, "invalid-argument", err.Error())
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "not-found", "Booking not found")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "internal", "Error updating booking status")
		}
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Booking status updated successfully")
}
