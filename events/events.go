package events

import (
	"time"

	"github.com/google/uuid"
)

type Header struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"publishedAt"`
}

func NewHeader() Header {
	return Header{
		ID:          uuid.NewString(),
		PublishedAt: time.Now().UTC(),
	}
}

// BookingCreated is published after a booking row is inserted. Table names
// the table the row lives in so handlers write their outcome back to the
// same place.
type BookingCreated struct {
	Header    Header `json:"header"`
	BookingID uint   `json:"bookingId"`
	Table     string `json:"table"`
}

// BookingVerified is published when the verification engine wins the
// verified false->true transition.
type BookingVerified struct {
	Header    Header `json:"header"`
	BookingID uint   `json:"bookingId"`
	Table     string `json:"table"`
}
