package services

import (
	"context"
	"fmt"
	"time"

	"hotel-checkin-backend/models"
	"hotel-checkin-backend/repository"
)

// AvailabilityResult reports whether a room is free for a date range. On a
// conflict it carries the first overlapping booking found.
type AvailabilityResult struct {
	Available bool                   `json:"available"`
	Conflict  *models.BookingSummary `json:"conflict,omitempty"`
}

type AvailabilityService struct {
	bookings repository.BookingRepository
}

func NewAvailabilityService(bookings repository.BookingRepository) *AvailabilityService {
	return &AvailabilityService{bookings: bookings}
}

// IsAvailable checks the requested [checkIn, checkOut) range against every
// confirmed booking for the room. It performs no writes.
func (s *AvailabilityService) IsAvailable(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (*AvailabilityResult, error) {
	if !checkIn.Before(checkOut) {
		return nil, fmt.Errorf("%w: check-in must be before check-out", ErrInvalidArgument)
	}

	existing, err := s.bookings.ListConfirmedByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("listing confirmed bookings: %w", err)
	}

	for i := range existing {
		b := &existing[i]
		if b.CheckIn == nil || b.CheckOut == nil {
			continue
		}
		if rangesOverlap(checkIn, checkOut, *b.CheckIn, *b.CheckOut) {
			return &AvailabilityResult{Available: false, Conflict: b.Summary()}, nil
		}
	}

	return &AvailabilityResult{Available: true}, nil
}

// rangesOverlap implements the half-open interval law: [start, end) overlaps
// [existingStart, existingEnd) iff start < existingEnd && end > existingStart.
// A checkout on another booking's check-in day does not conflict, so
// back-to-back turnover is allowed.
func rangesOverlap(start, end, existingStart, existingEnd time.Time) bool {
	return start.Before(existingEnd) && end.After(existingStart)
}
