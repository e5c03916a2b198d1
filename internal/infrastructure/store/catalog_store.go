package store

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goddivor/room-reservation-sub001/internal/domain/apperror"
	"github.com/goddivor/room-reservation-sub001/internal/domain/catalog"
)

// catalogStore implements the shared CRUD of the three catalog tables. The
// meta accessor exposes the embedded catalog.Meta of the concrete entry type.
// Soft-deleted entries stay in the map but are excluded from snapshots,
// lookups and the unique-name check.
type catalogStore[T any] struct {
	mu      sync.RWMutex
	entity  string
	entries map[string]T
	order   []string
	meta    func(*T) *catalog.Meta
	now     func() time.Time
	logger  *slog.Logger
}

func newCatalogStore[T any](entity string, meta func(*T) *catalog.Meta, logger *slog.Logger) *catalogStore[T] {
	return &catalogStore[T]{
		entity:  entity,
		entries: make(map[string]T),
		order:   []string{},
		meta:    meta,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *catalogStore[T]) Snapshot(ctx context.Context) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		entry := s.entries[id]
		if s.meta(&entry).DeletedAt == nil {
			out = append(out, entry)
		}
	}
	return out
}

func (s *catalogStore[T]) FindByID(ctx context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	entry, ok := s.entries[id]
	if !ok || s.meta(&entry).DeletedAt != nil {
		return zero, apperror.NotFound(s.entity, id)
	}
	return entry, nil
}

func (s *catalogStore[T]) Create(ctx context.Context, entry T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	meta := s.meta(&entry)
	if err := s.validateNameLocked(meta.Name, ""); err != nil {
		return zero, err
	}

	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	now := s.now()
	meta.CreatedAt = now
	meta.UpdatedAt = now
	meta.DeletedAt = nil

	s.entries[meta.ID] = entry
	s.order = append(s.order, meta.ID)

	s.logger.Info("Catalog entry created", "entity", s.entity, "id", meta.ID, "name", meta.Name)
	return entry, nil
}

func (s *catalogStore[T]) Update(ctx context.Context, entry T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	meta := s.meta(&entry)

	existing, ok := s.entries[meta.ID]
	if !ok || s.meta(&existing).DeletedAt != nil {
		return zero, apperror.NotFound(s.entity, meta.ID)
	}
	if err := s.validateNameLocked(meta.Name, meta.ID); err != nil {
		return zero, err
	}

	meta.CreatedAt = s.meta(&existing).CreatedAt
	meta.UpdatedAt = s.now()
	meta.DeletedAt = nil
	s.entries[meta.ID] = entry

	s.logger.Info("Catalog entry updated", "entity", s.entity, "id", meta.ID)
	return entry, nil
}

func (s *catalogStore[T]) ToggleActive(ctx context.Context, id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	entry, ok := s.entries[id]
	if !ok || s.meta(&entry).DeletedAt != nil {
		return zero, apperror.NotFound(s.entity, id)
	}

	meta := s.meta(&entry)
	meta.IsActive = !meta.IsActive
	meta.UpdatedAt = s.now()
	s.entries[id] = entry

	s.logger.Info("Catalog entry toggled", "entity", s.entity, "id", id, "is_active", meta.IsActive)
	return entry, nil
}

func (s *catalogStore[T]) SoftDelete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok || s.meta(&entry).DeletedAt != nil {
		return apperror.NotFound(s.entity, id)
	}

	meta := s.meta(&entry)
	now := s.now()
	meta.DeletedAt = &now
	meta.UpdatedAt = now
	s.entries[id] = entry

	s.logger.Info("Catalog entry soft-deleted", "entity", s.entity, "id", id)
	return nil
}

func (s *catalogStore[T]) validateNameLocked(name, selfID string) error {
	if strings.TrimSpace(name) == "" {
		return apperror.Validation("name", "name is required")
	}
	for id, entry := range s.entries {
		meta := s.meta(&entry)
		if id == selfID || meta.DeletedAt != nil {
			continue
		}
		if strings.EqualFold(meta.Name, name) {
			return apperror.Validation("name", "a %s named %q already exists", s.entity, name)
		}
	}
	return nil
}

type RoomTypeStore struct {
	*catalogStore[catalog.RoomTypeConfig]
}

func NewRoomTypeStore(logger *slog.Logger) *RoomTypeStore {
	return &RoomTypeStore{newCatalogStore("room type", func(e *catalog.RoomTypeConfig) *catalog.Meta {
		return &e.Meta
	}, logger)}
}

// TypeName is the resolver handed to the filter evaluator for free-text
// search over the room's type name.
func (s *RoomTypeStore) TypeName(id string) (string, bool) {
	entry, err := s.FindByID(context.Background(), id)
	if err != nil {
		return "", false
	}
	return entry.Name, true
}

type EquipmentStore struct {
	*catalogStore[catalog.Equipment]
}

func NewEquipmentStore(logger *slog.Logger) *EquipmentStore {
	return &EquipmentStore{newCatalogStore("equipment", func(e *catalog.Equipment) *catalog.Meta {
		return &e.Meta
	}, logger)}
}

type RoomFeatureStore struct {
	*catalogStore[catalog.RoomFeature]
}

func NewRoomFeatureStore(logger *slog.Logger) *RoomFeatureStore {
	return &RoomFeatureStore{newCatalogStore("room feature", func(e *catalog.RoomFeature) *catalog.Meta {
		return &e.Meta
	}, logger)}
}
