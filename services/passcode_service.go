package services

import (
	"context"
	"errors"
	"fmt"

	"hotel-checkin-backend/dispatch"
	"hotel-checkin-backend/repository"
)

// PasscodeService is the explicitly invoked counterpart of the lifecycle
// dispatcher: the operator-facing resend operation.
type PasscodeService struct {
	bookings   repository.BookingRepository
	dispatcher *dispatch.Dispatcher
}

func NewPasscodeService(bookings repository.BookingRepository, dispatcher *dispatch.Dispatcher) *PasscodeService {
	return &PasscodeService{bookings: bookings, dispatcher: dispatcher}
}

// Resend re-delivers the room passcode email. Preconditions: the booking
// must exist, be verified and carry a passcode and an email address. Without
// force a booking whose passcode email already went out yields the
// "already sent" success outcome with no notifier call; force sends again.
func (s *PasscodeService) Resend(ctx context.Context, bookingID uint, force bool) (string, error) {
	if bookingID == 0 {
		return "", fmt.Errorf("%w: bookingId is required", ErrInvalidArgument)
	}

	booking, table, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrBookingNotFound
		}
		return "", fmt.Errorf("loading booking: %w", err)
	}

	if !booking.Verified {
		return "", fmt.Errorf("%w: booking is not verified, verify at kiosk first", ErrNotVerified)
	}
	if booking.RoomPasscode == "" {
		return "", fmt.Errorf("%w: booking has no room passcode", ErrMissingPasscode)
	}
	if booking.Email == "" {
		return "", fmt.Errorf("%w: booking has no email", ErrMissingEmail)
	}

	outcome, err := s.dispatcher.SendPasscode(ctx, booking, table, force)
	if err != nil {
		return "", fmt.Errorf("sending room passcode email: %w", err)
	}

	if outcome.AlreadySent {
		return "Room passcode email was already sent.", nil
	}
	return "Room passcode email sent.", nil
}
