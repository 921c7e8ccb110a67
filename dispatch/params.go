package dispatch

import (
	"fmt"
	"strconv"
	"time"

	"hotel-checkin-backend/mailer"
	"hotel-checkin-backend/models"
)

// Long-form display date: weekday, month name, day, year.
const emailDateLayout = "Monday, January 2, 2006"

func formatEmailDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format(emailDateLayout)
}

func roomTypeLabel(b *models.Booking) string {
	if b.RoomTypeName != "" {
		return b.RoomTypeName
	}
	if b.RoomName != "" {
		return b.RoomName
	}
	return "Room"
}

// The recipient address goes out under both "email" and "to_email": remote
// templates read the former as the To field and the latter in the body.
func baseParams(b *models.Booking) map[string]string {
	name := b.GuestName
	if name == "" {
		name = "Guest"
	}
	return map[string]string{
		mailer.ParamToName:   name,
		mailer.ParamEmail:    b.Email,
		mailer.ParamToEmail:  b.Email,
		mailer.ParamCheckIn:  formatEmailDate(b.CheckIn),
		mailer.ParamCheckOut: formatEmailDate(b.CheckOut),
		mailer.ParamRoomType: roomTypeLabel(b),
	}
}

func verificationParams(b *models.Booking) map[string]string {
	p := baseParams(b)
	p[mailer.ParamVerificationCode] = b.VerificationCode
	p[mailer.ParamTotalPrice] = fmt.Sprintf("$%s", strconv.FormatFloat(b.TotalPrice, 'f', -1, 64))
	return p
}

func passcodeParams(b *models.Booking) map[string]string {
	p := baseParams(b)
	p[mailer.ParamRoomPasscode] = b.RoomPasscode
	return p
}
