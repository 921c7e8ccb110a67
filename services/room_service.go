package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"

	"hotel-checkin-backend/models"
	"hotel-checkin-backend/repository"
)

type RoomService struct {
	rooms repository.RoomRepository
}

func NewRoomService(rooms repository.RoomRepository) *RoomService {
	return &RoomService{rooms: rooms}
}

func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	return s.rooms.List(ctx)
}

func (s *RoomService) Create(ctx context.Context, room *models.Room) error {
	if room.Name == "" {
		return fmt.Errorf("%w: room name is required", ErrInvalidArgument)
	}
	return s.rooms.Create(ctx, room)
}

// UpdateRoomRequest carries partial room updates. Nil fields stay untouched.
type UpdateRoomRequest struct {
	Name        *string        `json:"name"`
	RoomNumber  *string        `json:"roomNumber"`
	Type        *string        `json:"type"`
	Description *string        `json:"description"`
	Price       *float64       `json:"price"`
	Capacity    *int           `json:"capacity"`
	Available   *bool          `json:"available"`
	Image       *string        `json:"image"`
	Amenities   datatypes.JSON `json:"amenities"`
}

func (r *UpdateRoomRequest) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.RoomNumber != nil {
		fields["room_number"] = *r.RoomNumber
	}
	if r.Type != nil {
		fields["type"] = *r.Type
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.Capacity != nil {
		fields["capacity"] = *r.Capacity
	}
	if r.Available != nil {
		fields["available"] = *r.Available
	}
	if r.Image != nil {
		fields["image"] = *r.Image
	}
	if len(r.Amenities) > 0 {
		fields["amenities"] = r.Amenities
	}
	return fields
}

// Update is the admin room-details mutation. The write targets the table the
// room was found in so legacy rows stay editable until migrated.
func (s *RoomService) Update(ctx context.Context, id uint, req UpdateRoomRequest) error {
	fields := req.fields()
	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields to update", ErrInvalidArgument)
	}

	_, table, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("loading room: %w", err)
	}
	return s.rooms.UpdateFields(ctx, table, id, fields)
}

// SetAvailability is the admin override for the advisory availability flag.
func (s *RoomService) SetAvailability(ctx context.Context, id uint, available bool) error {
	_, table, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("loading room: %w", err)
	}
	return s.rooms.SetAvailability(ctx, table, id, available)
}
