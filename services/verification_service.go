package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"hotel-checkin-backend/events"
	"hotel-checkin-backend/models"
	"hotel-checkin-backend/repository"
)

// Verification result kinds.
const (
	VerifyResultSuccess       = "success"
	VerifyResultAlreadyUsed   = "already-used"
	VerifyResultNotFound      = "not-found"
	VerifyResultInvalidFormat = "invalid-format"
)

const verificationCodeLength = 6

// VerificationResult is what the kiosk renders. Booking is present for
// success and already-used so the kiosk can show "already checked in"
// context; it is nil for the bare negatives.
type VerificationResult struct {
	Kind    string                 `json:"kind"`
	Message string                 `json:"message"`
	Booking *models.BookingSummary `json:"booking,omitempty"`
}

type VerificationService struct {
	bookings  repository.BookingRepository
	publisher events.Publisher
	log       *logrus.Logger
}

func NewVerificationService(bookings repository.BookingRepository, publisher events.Publisher, log *logrus.Logger) *VerificationService {
	return &VerificationService{bookings: bookings, publisher: publisher, log: log}
}

// Verify consumes a one-time verification code. The verified false->true
// transition is a single conditional update, so two concurrent calls with
// the same code can never both report success.
func (s *VerificationService) Verify(ctx context.Context, code string) (*VerificationResult, error) {
	code = strings.TrimSpace(code)
	if len(code) != verificationCodeLength {
		return &VerificationResult{
			Kind:    VerifyResultInvalidFormat,
			Message: "Invalid code format",
		}, nil
	}

	booking, table, err := s.bookings.FindByVerificationCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &VerificationResult{
				Kind:    VerifyResultNotFound,
				Message: "Invalid code",
			}, nil
		}
		return nil, fmt.Errorf("looking up verification code: %w", err)
	}

	if booking.Verified {
		return &VerificationResult{
			Kind:    VerifyResultAlreadyUsed,
			Message: "Code already used",
			Booking: booking.Summary(),
		}, nil
	}

	now := time.Now().UTC()
	won, err := s.bookings.MarkVerified(ctx, table, booking.ID, now)
	if err != nil {
		return nil, fmt.Errorf("marking booking verified: %w", err)
	}
	if !won {
		// Another verifier beat us between the read and the update.
		booking.Verified = true
		return &VerificationResult{
			Kind:    VerifyResultAlreadyUsed,
			Message: "Code already used",
			Booking: booking.Summary(),
		}, nil
	}

	before := *booking
	booking.Verified = true
	booking.VerifiedAt = &now

	if events.NextEffect(&before, booking) == events.EffectSendPasscode {
		if err := s.publisher.Publish(ctx, &events.BookingVerified{
			Header:    events.NewHeader(),
			BookingID: booking.ID,
			Table:     table,
		}); err != nil {
			// The passcode email is recoverable through the resend operation;
			// the kiosk flow must not fail because of it.
			s.log.WithError(err).WithField("booking_id", booking.ID).
				Error("failed to publish booking verified event")
		}
	}

	return &VerificationResult{
		Kind:    VerifyResultSuccess,
		Message: "Booking verified",
		Booking: booking.Summary(),
	}, nil
}
