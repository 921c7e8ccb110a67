package services

import (
	"context"
	"sync"
	"time"

	"hotel-checkin-backend/models"
	"hotel-checkin-backend/repository"
)

// fakeBookingRepo keeps bookings in two maps mirroring the primary and
// legacy tables and counts calls so tests can assert fallback behavior.
type fakeBookingRepo struct {
	mu      sync.Mutex
	nextID  uint
	primary map[uint]*models.Booking
	legacy  map[uint]*models.Booking

	findByCodeCalls   int
	markVerifiedCalls int
	updateCalls       []map[string]interface{}

	createErr error
	updateErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		primary: make(map[uint]*models.Booking),
		legacy:  make(map[uint]*models.Booking),
	}
}

func (f *fakeBookingRepo) put(table string, b *models.Booking) *models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b.ID == 0 {
		f.nextID++
		b.ID = f.nextID
	}
	clone := *b
	if table == repository.LegacyBookingsTable {
		f.legacy[b.ID] = &clone
	} else {
		f.primary[b.ID] = &clone
	}
	return &clone
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	booking.ID = f.nextID
	clone := *booking
	f.primary[booking.ID] = &clone
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uint) (*models.Booking, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.primary[id]; ok {
		clone := *b
		return &clone, repository.BookingsTable, nil
	}
	if b, ok := f.legacy[id]; ok {
		clone := *b
		return &clone, repository.LegacyBookingsTable, nil
	}
	return nil, "", repository.ErrNotFound
}

func (f *fakeBookingRepo) FindByVerificationCode(ctx context.Context, code string) (*models.Booking, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findByCodeCalls++
	for _, b := range f.primary {
		if b.VerificationCode == code {
			clone := *b
			return &clone, repository.BookingsTable, nil
		}
	}
	for _, b := range f.legacy {
		if b.VerificationCode == code {
			clone := *b
			return &clone, repository.LegacyBookingsTable, nil
		}
	}
	return nil, "", repository.ErrNotFound
}

func (f *fakeBookingRepo) ListConfirmedByRoom(ctx context.Context, roomID uint) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.primary {
		if b.RoomID != nil && *b.RoomID == roomID && b.Status == models.BookingStatusConfirmed {
			out = append(out, *b)
		}
	}
	if len(out) > 0 {
		return out, nil
	}
	for _, b := range f.legacy {
		if b.RoomID != nil && *b.RoomID == roomID && b.Status == models.BookingStatusConfirmed {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByCheckInDate(ctx context.Context, date time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.primary {
		if b.CheckIn != nil && b.CheckIn.Equal(date) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.primary {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) MarkVerified(ctx context.Context, table string, id uint, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markVerifiedCalls++
	store := f.primary
	if table == repository.LegacyBookingsTable {
		store = f.legacy
	}
	b, ok := store[id]
	if !ok || b.Verified {
		return false, nil
	}
	b.Verified = true
	t := at
	b.VerifiedAt = &t
	return true, nil
}

func (f *fakeBookingRepo) UpdateFields(ctx context.Context, table string, id uint, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls = append(f.updateCalls, fields)
	store := f.primary
	if table == repository.LegacyBookingsTable {
		store = f.legacy
	}
	b, ok := store[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := fields["status"]; ok {
		b.Status = v.(string)
	}
	if v, ok := fields["cancelled_at"]; ok {
		t := v.(time.Time)
		b.CancelledAt = &t
	}
	if v, ok := fields["room_passcode_email_sent"]; ok {
		b.RoomPasscodeEmailSent = v.(bool)
	}
	if v, ok := fields["email_sent"]; ok {
		b.EmailSent = v.(bool)
	}
	return nil
}

type roomUpdateCall struct {
	table  string
	id     uint
	fields map[string]interface{}
}

type fakeRoomRepo struct {
	mu        sync.Mutex
	nextID    uint
	rooms     map[uint]*models.Room
	roomTypes map[string]*models.RoomType

	availabilityCalls []bool
	updateCalls       []roomUpdateCall
	setAvailErr       error
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{
		rooms:     make(map[uint]*models.Room),
		roomTypes: make(map[string]*models.RoomType),
	}
}

func (f *fakeRoomRepo) putType(rt *models.RoomType) *models.RoomType {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rt.ID == 0 {
		f.nextID++
		rt.ID = f.nextID
	}
	clone := *rt
	f.roomTypes[rt.Type] = &clone
	return &clone
}

func (f *fakeRoomRepo) put(r *models.Room) *models.Room {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.ID == 0 {
		f.nextID++
		r.ID = f.nextID
	}
	clone := *r
	f.rooms[r.ID] = &clone
	return &clone
}

func (f *fakeRoomRepo) Create(ctx context.Context, room *models.Room) error {
	f.put(room)
	return nil
}

func (f *fakeRoomRepo) CreateInBatches(ctx context.Context, rooms []models.Room, batchSize int) error {
	for i := range rooms {
		f.put(&rooms[i])
	}
	return nil
}

func (f *fakeRoomRepo) GetByID(ctx context.Context, id uint) (*models.Room, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.rooms[id]; ok {
		clone := *r
		return &clone, repository.RoomsTable, nil
	}
	return nil, "", repository.ErrNotFound
}

func (f *fakeRoomRepo) GetRoomType(ctx context.Context, typeName string) (*models.RoomType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rt, ok := f.roomTypes[typeName]; ok {
		clone := *rt
		return &clone, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRoomRepo) List(ctx context.Context) ([]models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Room
	for _, r := range f.rooms {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRoomRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rooms)), nil
}

func (f *fakeRoomRepo) SetAvailability(ctx context.Context, table string, id uint, available bool) error {
	if f.setAvailErr != nil {
		return f.setAvailErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.availabilityCalls = append(f.availabilityCalls, available)
	if r, ok := f.rooms[id]; ok {
		r.Available = available
	}
	return nil
}

func (f *fakeRoomRepo) UpdateFields(ctx context.Context, table string, id uint, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls = append(f.updateCalls, roomUpdateCall{table: table, id: id, fields: fields})
	r, ok := f.rooms[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := fields["name"]; ok {
		r.Name = v.(string)
	}
	if v, ok := fields["price"]; ok {
		r.Price = v.(float64)
	}
	if v, ok := fields["available"]; ok {
		r.Available = v.(bool)
	}
	return nil
}

type fakePublisher struct {
	mu        sync.Mutex
	published []interface{}
	err       error
}

func (f *fakePublisher) Publish(ctx context.Context, event interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, event)
	return nil
}
