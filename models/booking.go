package models

import (
	"time"
)

// Booking statuses. A booking participates in overlap checks only while
// confirmed; cancelled is terminal.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	GuestName string `gorm:"column:guest_name;size:255" json:"guestName"`
	Email     string `gorm:"column:email;size:255" json:"email"`

	RoomID       *uint  `gorm:"column:room_id;index" json:"roomId,omitempty"`
	RoomTypeID   *uint  `gorm:"column:room_type_id" json:"roomTypeId,omitempty"`
	RoomName     string `gorm:"column:room_name;size:128" json:"roomName,omitempty"`
	RoomTypeName string `gorm:"column:room_type_name;size:128" json:"roomTypeName,omitempty"`

	CheckIn  *time.Time `gorm:"column:check_in" json:"checkIn,omitempty"`
	CheckOut *time.Time `gorm:"column:check_out" json:"checkOut,omitempty"`

	Status     string  `gorm:"column:status;size:32;index" json:"status"`
	TotalPrice float64 `gorm:"column:total_price" json:"totalPrice"`

	// One-time kiosk code. Consumed by the verification engine at most once.
	VerificationCode string     `gorm:"column:verification_code;size:6;index" json:"verificationCode,omitempty"`
	Verified         bool       `gorm:"column:verified;default:false" json:"verified"`
	VerifiedAt       *time.Time `gorm:"column:verified_at" json:"verifiedAt,omitempty"`

	// Room access passcode, delivered by email only after verification.
	RoomPasscode string `gorm:"column:room_passcode;size:16" json:"-"`

	EmailSent   bool       `gorm:"column:email_sent;default:false" json:"emailSent"`
	EmailSentAt *time.Time `gorm:"column:email_sent_at" json:"emailSentAt,omitempty"`
	EmailError  string     `gorm:"column:email_error;size:512" json:"emailError,omitempty"`

	RoomPasscodeEmailSent  bool       `gorm:"column:room_passcode_email_sent;default:false" json:"roomPasscodeEmailSent"`
	RoomPasscodeSentAt     *time.Time `gorm:"column:room_passcode_sent_at" json:"roomPasscodeSentAt,omitempty"`
	RoomPasscodeEmailError string     `gorm:"column:room_passcode_email_error;size:512" json:"roomPasscodeEmailError,omitempty"`

	CancelledAt *time.Time `gorm:"column:cancelled_at" json:"cancelledAt,omitempty"`
}

// BookingSummary is the read-only slice of a booking shown at the kiosk,
// including the "already checked in" case.
type BookingSummary struct {
	ID        uint       `json:"id"`
	GuestName string     `json:"guestName"`
	RoomName  string     `json:"roomName"`
	CheckIn   *time.Time `json:"checkIn,omitempty"`
	CheckOut  *time.Time `json:"checkOut,omitempty"`
	Verified  bool       `json:"verified"`
}

// Summary prefers the denormalized room type label; older rows only carried
// a room name.
func (b *Booking) Summary() *BookingSummary {
	name := b.RoomTypeName
	if name == "" {
		name = b.RoomName
	}
	return &BookingSummary{
		ID:        b.ID,
		GuestName: b.GuestName,
		RoomName:  name,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		Verified:  b.Verified,
	}
}
