package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-checkin-backend/models"
	"hotel-checkin-backend/services"
	"hotel-checkin-backend/utils"
)

type RoomController struct {
	rooms        *services.RoomService
	availability *services.AvailabilityService
}

func NewRoomController(rooms *services.RoomService, availability *services.AvailabilityService) *RoomController {
	return &RoomController{rooms: rooms, availability: availability}
}

func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.rooms.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal", "failed to list rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "invalid room payload")
		return
	}
	if err := rc.rooms.Create(c.Request.Context(), &room); err != nil {
		if errors.Is(err, services.ErrInvalidArgument) {
			utils.JSONError(c, http.StatusBadRequest, "invalid-argument", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal", "failed to create room")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// UpdateRoom is the admin room-details mutation, PUT /api/rooms/:id.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "invalid room payload")
		return
	}

	if err := rc.rooms.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidArgument):
			utils.JSONError(c, http.StatusBadRequest, "invalid-argument", err.Error())
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "not-found", "room_not_found")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "internal", "failed to update room")
		}
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Room updated successfully")
}

// CheckAvailability answers GET /api/rooms/:id/availability?check_in=&check_out=.
func (rc *RoomController) CheckAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	checkIn, err := time.Parse("2006-01-02", c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse("2006-01-02", c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "check_out must be YYYY-MM-DD")
		return
	}

	result, err := rc.availability.IsAvailable(c.Request.Context(), id, checkIn.UTC(), checkOut.UTC())
	if err != nil {
		if errors.Is(err, services.ErrInvalidArgument) {
			utils.JSONError(c, http.StatusBadRequest, "invalid-argument", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal", "availability check failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

type roomAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

func (rc *RoomController) UpdateRoomAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req roomAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "available flag is required")
		return
	}

	if err := rc.rooms.SetAvailability(c.Request.Context(), id, *req.Available); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "not-found", "room_not_found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal", "failed to update room")
		return
	}

	message := "Room marked as unavailable"
	if *req.Available {
		message = "Room marked as available"
	}
	utils.JSONMessage(c, http.StatusOK, message)
}
