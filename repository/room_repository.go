package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotel-checkin-backend/models"
)

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	// CreateInBatches bulk-inserts seed inventory, capped at the store's
	// write-batch limit.
	CreateInBatches(ctx context.Context, rooms []models.Room, batchSize int) error
	GetByID(ctx context.Context, id uint) (*models.Room, string, error)
	// GetRoomType resolves the inventory-level record for a room type name.
	GetRoomType(ctx context.Context, typeName string) (*models.RoomType, error)
	List(ctx context.Context) ([]models.Room, error)
	Count(ctx context.Context) (int64, error)
	SetAvailability(ctx context.Context, table string, id uint, available bool) error
	// UpdateFields applies a whole-field update to the room in the given table.
	UpdateFields(ctx context.Context, table string, id uint, fields map[string]interface{}) error
}

type GormRoomRepository struct {
	db *gorm.DB
}

func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

func (r *GormRoomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *GormRoomRepository) CreateInBatches(ctx context.Context, rooms []models.Room, batchSize int) error {
	return r.db.WithContext(ctx).CreateInBatches(rooms, batchSize).Error
}

func (r *GormRoomRepository) GetByID(ctx context.Context, id uint) (*models.Room, string, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Table(RoomsTable).Where("id = ?", id).First(&room).Error
	if err == nil {
		return &room, RoomsTable, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	room = models.Room{}
	err = r.db.WithContext(ctx).Table(LegacyRoomsTable).Where("id = ?", id).First(&room).Error
	if err != nil {
		return nil, "", err
	}
	return &room, LegacyRoomsTable, nil
}

func (r *GormRoomRepository) GetRoomType(ctx context.Context, typeName string) (*models.RoomType, error) {
	var rt models.RoomType
	err := r.db.WithContext(ctx).Where("type = ?", typeName).First(&rt).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *GormRoomRepository) List(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).Table(RoomsTable).Order("room_number").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	if len(rooms) > 0 {
		return rooms, nil
	}

	err = r.db.WithContext(ctx).Table(LegacyRoomsTable).Order("room_number").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *GormRoomRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table(RoomsTable).Count(&n).Error
	return n, err
}

func (r *GormRoomRepository) SetAvailability(ctx context.Context, table string, id uint, available bool) error {
	return r.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"available":  available,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *GormRoomRepository) UpdateFields(ctx context.Context, table string, id uint, fields map[string]interface{}) error {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now().UTC()
	}
	return r.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		Updates(updates).Error
}
