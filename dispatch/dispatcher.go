package dispatch

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"hotel-checkin-backend/events"
	"hotel-checkin-backend/mailer"
	"hotel-checkin-backend/models"
	"hotel-checkin-backend/repository"
)

// Field guards checked independently before a passcode send.
var (
	ErrNoEmail    = errors.New("no email on booking")
	ErrNoPasscode = errors.New("no room passcode on booking")
)

// PasscodeOutcome distinguishes "sent now" from "skipped, already sent".
type PasscodeOutcome struct {
	Sent        bool
	AlreadySent bool
	MessageID   string
}

// Dispatcher executes the side effects of booking-state transitions and
// records every outcome back onto the booking row, so a later retry or
// resend can tell "never attempted" from "attempted and failed" from
// "succeeded". Its event handlers never let an error escape: the triggering
// store write must not be rolled back or redelivered because an email
// failed.
type Dispatcher struct {
	bookings repository.BookingRepository
	mail     mailer.Mailer
	log      *logrus.Logger
	now      func() time.Time
}

func New(bookings repository.BookingRepository, mail mailer.Mailer, log *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		bookings: bookings,
		mail:     mail,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// HandleBookingCreated sends the confirmation email carrying the
// verification code. Creation is a one-time trigger, but the sent flag is
// still consulted so a redelivered event cannot double-send.
func (d *Dispatcher) HandleBookingCreated(ctx context.Context, e *events.BookingCreated) error {
	logger := d.log.WithField("booking_id", e.BookingID)

	booking, table, err := d.bookings.GetByID(ctx, e.BookingID)
	if err != nil {
		logger.WithError(err).Error("booking created: cannot load booking")
		return nil
	}

	if booking.Status != models.BookingStatusConfirmed || booking.VerificationCode == "" {
		logger.Info("skipping email - booking not confirmed or missing verification code")
		return nil
	}
	if booking.EmailSent {
		logger.Info("skipping email - confirmation already sent")
		return nil
	}
	if booking.Email == "" || booking.GuestName == "" {
		logger.Error("missing required fields for email")
		d.recordOutcome(ctx, table, booking.ID, map[string]interface{}{
			"email_error": "missing required fields for email",
			"email_sent":  false,
		})
		return nil
	}

	msgID, sendErr := d.mail.Send(ctx, mailer.TemplateVerificationCode, booking.Email, verificationParams(booking))
	if sendErr != nil {
		logger.WithError(sendErr).Error("error sending verification email")
		d.recordOutcome(ctx, table, booking.ID, map[string]interface{}{
			"email_error": sendErr.Error(),
			"email_sent":  false,
		})
		return nil
	}

	logger.WithField("message_id", msgID).Info("verification email sent")
	d.recordOutcome(ctx, table, booking.ID, map[string]interface{}{
		"email_sent":    true,
		"email_sent_at": d.now(),
		"email_error":   "",
	})
	return nil
}

// HandleBookingVerified sends the room passcode email once the verified flag
// flipped. All guard failures are recorded on the row; the handler itself
// always succeeds.
func (d *Dispatcher) HandleBookingVerified(ctx context.Context, e *events.BookingVerified) error {
	logger := d.log.WithField("booking_id", e.BookingID)

	booking, table, err := d.bookings.GetByID(ctx, e.BookingID)
	if err != nil {
		logger.WithError(err).Error("booking verified: cannot load booking")
		return nil
	}
	if !booking.Verified {
		logger.Info("skipping passcode email - booking no longer verified")
		return nil
	}

	if _, err := d.SendPasscode(ctx, booking, table, false); err != nil {
		logger.WithError(err).Error("room passcode email not sent")
	}
	return nil
}

// SendPasscode delivers the room passcode email. Without force it is
// idempotent: an already-sent booking yields AlreadySent and no mailer call.
// force bypasses the guard for the explicit resend operation. The outcome is
// always recorded on the booking row; the returned error is informational
// for explicit callers and must not be re-raised by event handlers.
func (d *Dispatcher) SendPasscode(ctx context.Context, booking *models.Booking, table string, force bool) (*PasscodeOutcome, error) {
	logger := d.log.WithField("booking_id", booking.ID)

	if booking.Email == "" {
		d.recordOutcome(ctx, table, booking.ID, map[string]interface{}{
			"room_passcode_email_error": ErrNoEmail.Error(),
		})
		return nil, ErrNoEmail
	}
	if booking.RoomPasscode == "" {
		d.recordOutcome(ctx, table, booking.ID, map[string]interface{}{
			"room_passcode_email_error": ErrNoPasscode.Error(),
		})
		return nil, ErrNoPasscode
	}
	if !force && booking.RoomPasscodeEmailSent {
		logger.Info("room passcode email skipped: already sent")
		return &PasscodeOutcome{AlreadySent: true}, nil
	}

	msgID, sendErr := d.mail.Send(ctx, mailer.TemplateRoomPasscode, booking.Email, passcodeParams(booking))
	if sendErr != nil {
		d.recordOutcome(ctx, table, booking.ID, map[string]interface{}{
			"room_passcode_email_error": sendErr.Error(),
		})
		return nil, sendErr
	}

	logger.WithField("message_id", msgID).Info("room passcode email sent")
	d.recordOutcome(ctx, table, booking.ID, map[string]interface{}{
		"room_passcode_email_sent":  true,
		"room_passcode_sent_at":     d.now(),
		"room_passcode_email_error": "",
	})
	return &PasscodeOutcome{Sent: true, MessageID: msgID}, nil
}

// recordOutcome is best-effort: a failed write-back is logged, never raised.
func (d *Dispatcher) recordOutcome(ctx context.Context, table string, id uint, fields map[string]interface{}) {
	if err := d.bookings.UpdateFields(ctx, table, id, fields); err != nil {
		d.log.WithError(err).WithField("booking_id", id).Error("failed to record email outcome")
	}
}
