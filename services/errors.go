package services

import "errors"

// Sentinel errors surfaced by the explicitly invoked operations. Controllers
// map these onto HTTP statuses; event-driven handlers never raise them past
// the dispatch boundary.
var (
	ErrInvalidArgument = errors.New("invalid_argument")
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrRoomUnavailable = errors.New("room_unavailable")
	ErrNotVerified     = errors.New("booking_not_verified")
	ErrMissingPasscode = errors.New("missing_room_passcode")
	ErrMissingEmail    = errors.New("missing_email")
)
