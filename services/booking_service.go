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
	"hotel-checkin-backend/utils"
)

const (
	verificationCodeDigits = 6
	roomPasscodeDigits     = 6
	dateLayout             = "2006-01-02"
)

type CreateBookingRequest struct {
	GuestName string `json:"guestName"`
	Email     string `json:"email"`
	RoomID    uint   `json:"roomId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
}

type BookingService struct {
	bookings     repository.BookingRepository
	rooms        repository.RoomRepository
	availability *AvailabilityService
	publisher    events.Publisher
	log          *logrus.Logger
}

func NewBookingService(
	bookings repository.BookingRepository,
	rooms repository.RoomRepository,
	availability *AvailabilityService,
	publisher events.Publisher,
	log *logrus.Logger,
) *BookingService {
	return &BookingService{
		bookings:     bookings,
		rooms:        rooms,
		availability: availability,
		publisher:    publisher,
		log:          log,
	}
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Create validates the request, checks room availability, assigns the
// verification code and room passcode, inserts the booking as confirmed,
// holds the room and publishes the creation event.
func (s *BookingService) Create(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	if strings.TrimSpace(req.GuestName) == "" {
		return nil, fmt.Errorf("%w: guest name is required", ErrInvalidArgument)
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidArgument)
	}
	if req.RoomID == 0 {
		return nil, fmt.Errorf("%w: room id is required", ErrInvalidArgument)
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-in date", ErrInvalidArgument)
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-out date", ErrInvalidArgument)
	}
	if !checkIn.Before(checkOut) {
		return nil, fmt.Errorf("%w: check-in must be before check-out", ErrInvalidArgument)
	}

	room, roomTable, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("loading room: %w", err)
	}

	avail, err := s.availability.IsAvailable(ctx, room.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if !avail.Available {
		return nil, fmt.Errorf("%w: conflicts with booking %d", ErrRoomUnavailable, avail.Conflict.ID)
	}

	code, err := utils.GenerateNumericCode(verificationCodeDigits)
	if err != nil {
		return nil, fmt.Errorf("generating verification code: %w", err)
	}
	passcode, err := utils.GenerateNumericCode(roomPasscodeDigits)
	if err != nil {
		return nil, fmt.Errorf("generating room passcode: %w", err)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	roomID := room.ID

	booking := &models.Booking{
		GuestName:        strings.TrimSpace(req.GuestName),
		Email:            strings.TrimSpace(req.Email),
		RoomID:           &roomID,
		RoomName:         room.Name,
		RoomTypeName:     room.Name,
		CheckIn:          &checkIn,
		CheckOut:         &checkOut,
		Status:           models.BookingStatusConfirmed,
		TotalPrice:       room.Price * float64(nights),
		VerificationCode: code,
		RoomPasscode:     passcode,
	}

	// Denormalize the type label so emails show "Premium Room" rather than
	// the unit name. Rooms with no matching type row keep the unit name.
	if rt, rtErr := s.rooms.GetRoomType(ctx, room.Type); rtErr == nil {
		rtID := rt.ID
		booking.RoomTypeID = &rtID
		booking.RoomTypeName = rt.Name
	} else if !errors.Is(rtErr, repository.ErrNotFound) {
		s.log.WithError(rtErr).WithField("room_type", room.Type).
			Warn("failed to resolve room type")
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	// Hold the room. The flag is advisory; the availability engine stays the
	// authoritative overlap check.
	if err := s.rooms.SetAvailability(ctx, roomTable, room.ID, false); err != nil {
		s.log.WithError(err).WithField("room_id", room.ID).
			Error("failed to mark room unavailable")
	}

	if events.NextEffect(nil, booking) == events.EffectSendVerification {
		if err := s.publisher.Publish(ctx, &events.BookingCreated{
			Header:    events.NewHeader(),
			BookingID: booking.ID,
			Table:     repository.BookingsTable,
		}); err != nil {
			s.log.WithError(err).WithField("booking_id", booking.ID).
				Error("failed to publish booking created event")
		}
	}

	return booking, nil
}

// Cancel marks the booking cancelled and then, as a second separate
// operation, releases the room. A failed release never hides the
// cancellation.
func (s *BookingService) Cancel(ctx context.Context, id uint) error {
	booking, table, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("loading booking: %w", err)
	}

	if booking.Status == models.BookingStatusCancelled {
		return nil
	}

	now := time.Now().UTC()
	err = s.bookings.UpdateFields(ctx, table, booking.ID, map[string]interface{}{
		"status":       models.BookingStatusCancelled,
		"cancelled_at": now,
	})
	if err != nil {
		return fmt.Errorf("cancelling booking: %w", err)
	}

	if booking.RoomID != nil {
		if err := s.releaseRoom(ctx, *booking.RoomID); err != nil {
			s.log.WithError(err).WithField("room_id", *booking.RoomID).
				Error("booking cancelled but room release failed")
		}
	}

	return nil
}

func (s *BookingService) releaseRoom(ctx context.Context, roomID uint) error {
	room, roomTable, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("loading room: %w", err)
	}
	return s.rooms.SetAvailability(ctx, roomTable, room.ID, true)
}

// UpdateStatus is the admin dashboard status mutation.
func (s *BookingService) UpdateStatus(ctx context.Context, id uint, status string) error {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, status)
	}

	_, table, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("loading booking: %w", err)
	}

	return s.bookings.UpdateFields(ctx, table, id, map[string]interface{}{
		"status": status,
	})
}

func (s *BookingService) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	booking, _, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("loading booking: %w", err)
	}
	return booking, nil
}

func (s *BookingService) ListAll(ctx context.Context) ([]models.Booking, error) {
	return s.bookings.ListAll(ctx)
}

func (s *BookingService) ListByCheckInDate(ctx context.Context, date string) ([]models.Booking, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidArgument)
	}
	return s.bookings.ListByCheckInDate(ctx, day)
}
