package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"hotel-checkin-backend/models"
	"hotel-checkin-backend/repository"
)

func TestRoomRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewGormRoomRepository(db)
	ctx := context.Background()

	room := &models.Room{
		Name:       "Normal Room 1",
		RoomNumber: "N001",
		Type:       models.RoomTypeNormal,
		Price:      99,
		Capacity:   2,
		Available:  true,
	}
	if err := repo.Create(ctx, room); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, table, err := repo.GetByID(ctx, room.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if table != repository.RoomsTable {
		t.Fatalf("table = %q, want %q", table, repository.RoomsTable)
	}
	if got.RoomNumber != "N001" {
		t.Fatalf("wrong room: %+v", got)
	}
}

func TestRoomRepository_LegacyFallback(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewGormRoomRepository(db)
	ctx := context.Background()

	legacy := &models.Room{Name: "Old Premium", Type: models.RoomTypePremium, Available: true}
	if err := db.Table(repository.LegacyRoomsTable).Create(legacy).Error; err != nil {
		t.Fatalf("inserting legacy room: %v", err)
	}

	got, table, err := repo.GetByID(ctx, legacy.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if table != repository.LegacyRoomsTable {
		t.Fatalf("table = %q, want legacy", table)
	}
	if got.Name != "Old Premium" {
		t.Fatalf("wrong room: %+v", got)
	}

	_, _, err = repo.GetByID(ctx, legacy.ID+100)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoomRepository_SetAvailabilityOnNamedTable(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewGormRoomRepository(db)
	ctx := context.Background()

	legacy := &models.Room{Name: "Old Normal", Type: models.RoomTypeNormal, Available: true}
	if err := db.Table(repository.LegacyRoomsTable).Create(legacy).Error; err != nil {
		t.Fatalf("inserting legacy room: %v", err)
	}

	if err := repo.SetAvailability(ctx, repository.LegacyRoomsTable, legacy.ID, false); err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}

	got, _, err := repo.GetByID(ctx, legacy.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Available {
		t.Fatalf("availability not written to the legacy table")
	}
}

func TestRoomRepository_UpdateFieldsOnNamedTable(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewGormRoomRepository(db)
	ctx := context.Background()

	legacy := &models.Room{Name: "Old Normal", Type: models.RoomTypeNormal, Price: 79, Available: true}
	if err := db.Table(repository.LegacyRoomsTable).Create(legacy).Error; err != nil {
		t.Fatalf("inserting legacy room: %v", err)
	}

	fields := map[string]interface{}{"name": "Old Normal (renovated)", "price": 109.0}
	if err := repo.UpdateFields(ctx, repository.LegacyRoomsTable, legacy.ID, fields); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	if _, ok := fields["updated_at"]; ok {
		t.Fatalf("updated_at leaked into the caller map")
	}

	got, table, err := repo.GetByID(ctx, legacy.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if table != repository.LegacyRoomsTable {
		t.Fatalf("room should still live in the legacy table")
	}
	if got.Name != "Old Normal (renovated)" || got.Price != 109 {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestRoomRepository_GetRoomType(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewGormRoomRepository(db)
	ctx := context.Background()

	rt := &models.RoomType{Name: "Premium Room", Type: models.RoomTypePremium, Price: 249, TotalCount: 50}
	if err := db.Create(rt).Error; err != nil {
		t.Fatalf("inserting room type: %v", err)
	}

	got, err := repo.GetRoomType(ctx, models.RoomTypePremium)
	if err != nil {
		t.Fatalf("GetRoomType: %v", err)
	}
	if got.Name != "Premium Room" {
		t.Fatalf("wrong room type: %+v", got)
	}

	_, err = repo.GetRoomType(ctx, "suite")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoomRepository_CreateInBatchesAndCount(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewGormRoomRepository(db)
	ctx := context.Background()

	rooms := make([]models.Room, 0, 100)
	for i := 1; i <= 50; i++ {
		rooms = append(rooms, models.Room{
			Name:       fmt.Sprintf("Normal Room %d", i),
			RoomNumber: fmt.Sprintf("N%03d", i),
			Type:       models.RoomTypeNormal,
			Available:  true,
		})
	}
	for i := 1; i <= 50; i++ {
		rooms = append(rooms, models.Room{
			Name:       fmt.Sprintf("Premium Room %d", i),
			RoomNumber: fmt.Sprintf("P%03d", i),
			Type:       models.RoomTypePremium,
			Available:  true,
		})
	}

	if err := repo.CreateInBatches(ctx, rooms, 500); err != nil {
		t.Fatalf("CreateInBatches: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 100 {
		t.Fatalf("count = %d, want 100", count)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 100 {
		t.Fatalf("list = %d rooms, want 100", len(list))
	}
}
