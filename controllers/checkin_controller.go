package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-checkin-backend/services"
	"hotel-checkin-backend/utils"
)

type CheckinController struct {
	verification *services.VerificationService
	passcodes    *services.PasscodeService
}

func NewCheckinController(verification *services.VerificationService, passcodes *services.PasscodeService) *CheckinController {
	return &CheckinController{verification: verification, passcodes: passcodes}
}

type verifyRequest struct {
	Code string `json:"code"`
}

// VerifyCode is the kiosk endpoint. Success and already-used responses carry
// the booking summary; invalid-format and not-found are bare negatives.
func (cc *CheckinController) VerifyCode(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "code is required")
		return
	}

	result, err := cc.verification.Verify(c.Request.Context(), req.Code)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Verification error")
		return
	}

	switch result.Kind {
	case services.VerifyResultInvalidFormat:
		utils.JSONError(c, http.StatusBadRequest, result.Kind, result.Message)
	case services.VerifyResultNotFound:
		utils.JSONError(c, http.StatusNotFound, result.Kind, result.Message)
	case services.VerifyResultAlreadyUsed:
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"code":    result.Kind,
			"message": result.Message,
			"booking": result.Booking,
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"code":    result.Kind,
			"message": result.Message,
			"booking": result.Booking,
		})
	}
}

type resendRequest struct {
	BookingID uint `json:"bookingId"`
	Force     bool `json:"force"`
}

// ResendPasscode is the operator callable. The error taxonomy maps onto
// 400 / 404 / 412 / 500.
func (cc *CheckinController) ResendPasscode(c *gin.Context) {
	var req resendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "bookingId is required")
		return
	}

	message, err := cc.passcodes.Resend(c.Request.Context(), req.BookingID, req.Force)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidArgument):
			utils.JSONError(c, http.StatusBadRequest, "invalid-argument", err.Error())
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "not-found", "Booking not found")
		case errors.Is(err, services.ErrNotVerified),
			errors.Is(err, services.ErrMissingPasscode),
			errors.Is(err, services.ErrMissingEmail):
			utils.JSONError(c, http.StatusPreconditionFailed, "failed-precondition", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "internal", "Failed to send email")
		}
		return
	}

	utils.JSONMessage(c, http.StatusOK, message)
}
