package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotel-checkin-backend/models"
)

// Table names for the primary dataset and its legacy counterpart. The legacy
// tables predate the naming migration; they are read as a fallback and only
// written when a row was found there. New rows always go to the primary
// tables.
const (
	BookingsTable       = "bookings"
	LegacyBookingsTable = "legacy_bookings"
	RoomsTable          = "rooms"
	LegacyRoomsTable    = "legacy_rooms"
)

// ErrNotFound is returned when a record exists in neither the primary nor
// the legacy table.
var ErrNotFound = gorm.ErrRecordNotFound

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID returns the booking and the table it was found in.
	GetByID(ctx context.Context, id uint) (*models.Booking, string, error)
	// FindByVerificationCode looks the code up in the primary table first and
	// consults the legacy table only when the primary has no match.
	FindByVerificationCode(ctx context.Context, code string) (*models.Booking, string, error)
	// ListConfirmedByRoom returns confirmed bookings for a room, falling back
	// to the legacy table only when the primary result set is empty.
	ListConfirmedByRoom(ctx context.Context, roomID uint) ([]models.Booking, error)
	ListByCheckInDate(ctx context.Context, date time.Time) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
	// MarkVerified flips verified false->true as a single conditional update.
	// It reports false when another caller already won the transition.
	MarkVerified(ctx context.Context, table string, id uint, at time.Time) (bool, error)
	// UpdateFields applies a whole-field update to the row in the given table.
	UpdateFields(ctx context.Context, table string, id uint, fields map[string]interface{}) error
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id uint) (*models.Booking, string, error) {
	var b models.Booking
	err := r.db.WithContext(ctx).Table(BookingsTable).Where("id = ?", id).First(&b).Error
	if err == nil {
		return &b, BookingsTable, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	b = models.Booking{}
	err = r.db.WithContext(ctx).Table(LegacyBookingsTable).Where("id = ?", id).First(&b).Error
	if err != nil {
		return nil, "", err
	}
	return &b, LegacyBookingsTable, nil
}

func (r *GormBookingRepository) FindByVerificationCode(ctx context.Context, code string) (*models.Booking, string, error) {
	var b models.Booking
	err := r.db.WithContext(ctx).Table(BookingsTable).Where("verification_code = ?", code).First(&b).Error
	if err == nil {
		return &b, BookingsTable, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	b = models.Booking{}
	err = r.db.WithContext(ctx).Table(LegacyBookingsTable).Where("verification_code = ?", code).First(&b).Error
	if err != nil {
		return nil, "", err
	}
	return &b, LegacyBookingsTable, nil
}

func (r *GormBookingRepository) ListConfirmedByRoom(ctx context.Context, roomID uint) ([]models.Booking, error) {
	var list []models.Booking
	err := r.db.WithContext(ctx).
		Table(BookingsTable).
		Where("room_id = ? AND status = ?", roomID, models.BookingStatusConfirmed).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	if len(list) > 0 {
		return list, nil
	}

	err = r.db.WithContext(ctx).
		Table(LegacyBookingsTable).
		Where("room_id = ? AND status = ?", roomID, models.BookingStatusConfirmed).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormBookingRepository) ListByCheckInDate(ctx context.Context, date time.Time) ([]models.Booking, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var list []models.Booking
	err := r.db.WithContext(ctx).
		Table(BookingsTable).
		Where("check_in = ?", day).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	if len(list) > 0 {
		return list, nil
	}

	err = r.db.WithContext(ctx).
		Table(LegacyBookingsTable).
		Where("check_in = ?", day).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormBookingRepository) ListAll(ctx context.Context) ([]models.Booking, error) {
	var list []models.Booking
	err := r.db.WithContext(ctx).
		Table(BookingsTable).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	if len(list) > 0 {
		return list, nil
	}

	err = r.db.WithContext(ctx).
		Table(LegacyBookingsTable).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormBookingRepository) MarkVerified(ctx context.Context, table string, id uint, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Table(table).
		Where("id = ? AND verified = ?", id, false).
		Updates(map[string]interface{}{
			"verified":    true,
			"verified_at": at,
			"updated_at":  at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *GormBookingRepository) UpdateFields(ctx context.Context, table string, id uint, fields map[string]interface{}) error {
	// Copy so the timestamp never leaks into the caller's map.
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
