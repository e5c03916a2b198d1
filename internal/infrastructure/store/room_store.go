// Package store holds the in-memory aggregate stores. Each aggregate (room
// inventory, location taxonomy, catalogs, reservation ledger) is owned by a
// single writer guarded by its store mutex; readers get copied snapshots, so
// the evaluator and the table engine always work over immutable data.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goddivor/room-reservation-sub001/internal/domain/apperror"
	"github.com/goddivor/room-reservation-sub001/internal/domain/room"
)

type RoomStore struct {
	mu         sync.RWMutex
	rooms      map[string]room.Room
	order      []string
	generation uint64
	now        func() time.Time
	logger     *slog.Logger
}

func NewRoomStore(logger *slog.Logger) *RoomStore {
	return &RoomStore{
		rooms:  make(map[string]room.Room),
		order:  []string{},
		now:    time.Now,
		logger: logger,
	}
}

func (s *RoomStore) Snapshot(ctx context.Context) []room.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]room.Room, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneRoom(s.rooms[id]))
	}
	return out
}

func (s *RoomStore) SnapshotActive(ctx context.Context) []room.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]room.Room, 0, len(s.order))
	for _, id := range s.order {
		if r := s.rooms[id]; r.IsActive {
			out = append(out, cloneRoom(r))
		}
	}
	return out
}

func (s *RoomStore) FindByID(ctx context.Context, id string) (room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[id]
	if !ok {
		return room.Room{}, apperror.NotFound("room", id)
	}
	return cloneRoom(r), nil
}

func (s *RoomStore) Create(ctx context.Context, r room.Room) (room.Room, error) {
	if err := validateRoom(r); err != nil {
		return room.Room{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	now := s.now()
	r.CreatedAt = now
	r.UpdatedAt = now
	r.EquipmentIDs = append([]string(nil), r.EquipmentIDs...)

	s.rooms[r.ID] = r
	s.order = append(s.order, r.ID)
	s.generation++

	s.logger.Info("Room created", "room_id", r.ID, "code", r.Code)
	return cloneRoom(r), nil
}

func (s *RoomStore) Update(ctx context.Context, r room.Room) (room.Room, error) {
	if err := validateRoom(r); err != nil {
		return room.Room{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.rooms[r.ID]
	if !ok {
		return room.Room{}, apperror.NotFound("room", r.ID)
	}

	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = s.now()
	r.EquipmentIDs = append([]string(nil), r.EquipmentIDs...)
	s.rooms[r.ID] = r
	s.generation++

	s.logger.Info("Room updated", "room_id", r.ID)
	return cloneRoom(r), nil
}

func (s *RoomStore) SetStatus(ctx context.Context, id string, status room.Status) (room.Room, error) {
	if !status.Valid() {
		return room.Room{}, apperror.Validation("status", "unknown status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[id]
	if !ok {
		return room.Room{}, apperror.NotFound("room", id)
	}

	r.Status = status
	r.UpdatedAt = s.now()
	s.rooms[id] = r
	s.generation++

	s.logger.Info("Room status changed", "room_id", id, "status", status)
	return cloneRoom(r), nil
}

func (s *RoomStore) ToggleActive(ctx context.Context, id string) (room.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[id]
	if !ok {
		return room.Room{}, apperror.NotFound("room", id)
	}

	r.IsActive = !r.IsActive
	r.UpdatedAt = s.now()
	s.rooms[id] = r
	s.generation++

	s.logger.Info("Room active flag toggled", "room_id", id, "is_active", r.IsActive)
	return cloneRoom(r), nil
}

// Delete removes a room permanently. Active rooms must be deactivated first.
func (s *RoomStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[id]
	if !ok {
		return apperror.NotFound("room", id)
	}
	if r.IsActive {
		return apperror.Integrity("room %s is still active and cannot be deleted", id)
	}

	delete(s.rooms, id)
	s.order = removeID(s.order, id)
	s.generation++

	s.logger.Info("Room deleted", "room_id", id)
	return nil
}

// Generation increments on every mutation; query-result caches key on it to
// invalidate stale entries.
func (s *RoomStore) Generation(ctx context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func validateRoom(r room.Room) error {
	if r.Code == "" {
		return apperror.Validation("code", "code is required")
	}
	if !r.Floor.Valid() {
		return apperror.Validation("floor", "unknown floor %q", r.Floor)
	}
	if !r.Status.Valid() {
		return apperror.Validation("status", "unknown status %q", r.Status)
	}
	if r.Capacity < 1 {
		return apperror.Validation("capacity", "capacity must be at least 1")
	}
	if r.DailyRate < 0 {
		return apperror.Validation("dailyRate", "daily rate must not be negative")
	}
	return nil
}

func cloneRoom(r room.Room) room.Room {
	r.EquipmentIDs = append([]string(nil), r.EquipmentIDs...)
	return r
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
