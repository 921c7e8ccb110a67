package mailer

import (
	"context"
)

// Logical template names. Each backend maps these onto its own notion of a
// template (a remote template id for EmailJS, an in-process renderer for
// SMTP).
const (
	TemplateVerificationCode = "verification-code"
	TemplateRoomPasscode     = "room-passcode"
)

// Parameter keys shared by every template.
const (
	ParamToName           = "to_name"
	ParamEmail            = "email"
	ParamToEmail          = "to_email"
	ParamVerificationCode = "verification_code"
	ParamRoomPasscode     = "room_passcode"
	ParamCheckIn          = "check_in"
	ParamCheckOut         = "check_out"
	ParamRoomType         = "room_type"
	ParamTotalPrice       = "total_price"
)

// Mailer sends one transactional email and returns a message identifier.
type Mailer interface {
	Send(ctx context.Context, template string, recipient string, params map[string]string) (string, error)
}
