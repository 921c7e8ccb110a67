package services

import (
	"context"
	"errors"
	"testing"

	"hotel-checkin-backend/models"
	"hotel-checkin-backend/repository"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestUpdateRoom_WritesToFoundTable(t *testing.T) {
	rooms := newFakeRoomRepo()
	room := seedRoom(rooms)
	svc := NewRoomService(rooms)

	err := svc.Update(context.Background(), room.ID, UpdateRoomRequest{
		Name:  strPtr("Normal Room 1 (renovated)"),
		Price: floatPtr(129),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if len(rooms.updateCalls) != 1 {
		t.Fatalf("expected 1 update call, got %d", len(rooms.updateCalls))
	}
	call := rooms.updateCalls[0]
	if call.table != repository.RoomsTable || call.id != room.ID {
		t.Fatalf("update targeted %s/%d, want %s/%d", call.table, call.id, repository.RoomsTable, room.ID)
	}
	if call.fields["name"] != "Normal Room 1 (renovated)" || call.fields["price"] != 129.0 {
		t.Fatalf("unexpected fields: %v", call.fields)
	}

	got, _, err := rooms.GetByID(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Price != 129 {
		t.Fatalf("price not persisted: %v", got.Price)
	}
}

func TestUpdateRoom_EmptyRequest(t *testing.T) {
	rooms := newFakeRoomRepo()
	room := seedRoom(rooms)
	svc := NewRoomService(rooms)

	err := svc.Update(context.Background(), room.ID, UpdateRoomRequest{})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if len(rooms.updateCalls) != 0 {
		t.Fatalf("no write should happen for an empty request")
	}
}

func TestUpdateRoom_UnknownRoom(t *testing.T) {
	svc := NewRoomService(newFakeRoomRepo())

	err := svc.Update(context.Background(), 42, UpdateRoomRequest{Name: strPtr("x")})
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestSetAvailability_UnknownRoom(t *testing.T) {
	svc := NewRoomService(newFakeRoomRepo())

	err := svc.SetAvailability(context.Background(), 42, true)
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestCreateRoom_RequiresName(t *testing.T) {
	svc := NewRoomService(newFakeRoomRepo())

	err := svc.Create(context.Background(), &models.Room{Type: models.RoomTypeNormal})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
