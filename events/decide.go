package events

import (
	"hotel-checkin-backend/models"
)

// Effect is the side effect a booking-state transition calls for. The
// decision is pure; executing the effect (and recording its outcome) is the
// dispatcher's job.
type Effect int

const (
	EffectNone Effect = iota
	// EffectSendVerification: confirmation email carrying the verification code.
	EffectSendVerification
	// EffectSendPasscode: room passcode email after kiosk verification.
	EffectSendPasscode
)

// NextEffect maps a (before, after) document transition to the effect it
// requires. before == nil means the document was just created.
func NextEffect(before, after *models.Booking) Effect {
	if after == nil {
		return EffectNone
	}

	if before == nil {
		if after.Status == models.BookingStatusConfirmed && after.VerificationCode != "" {
			return EffectSendVerification
		}
		return EffectNone
	}

	if !before.Verified && after.Verified {
		return EffectSendPasscode
	}

	return EffectNone
}
