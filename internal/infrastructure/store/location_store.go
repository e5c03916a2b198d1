package store

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goddivor/room-reservation-sub001/internal/domain/apperror"
	"github.com/goddivor/room-reservation-sub001/internal/domain/location"
)

type LocationStore struct {
	mu        sync.RWMutex
	locations map[string]location.Config
	now       func() time.Time
	logger    *slog.Logger
}

func NewLocationStore(logger *slog.Logger) *LocationStore {
	return &LocationStore{
		locations: make(map[string]location.Config),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *LocationStore) Snapshot(ctx context.Context) []location.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked("")
}

func (s *LocationStore) SnapshotByType(ctx context.Context, t location.Type) []location.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(t)
}

func (s *LocationStore) FindByID(ctx context.Context, id string) (location.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.locations[id]
	if !ok {
		return location.Config{}, apperror.NotFound("location", id)
	}
	return cfg, nil
}

func (s *LocationStore) Create(ctx context.Context, cfg location.Config) (location.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg.Name = strings.ToLower(strings.TrimSpace(cfg.Name))
	if err := s.validateLocked(cfg, ""); err != nil {
		return location.Config{}, err
	}

	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	now := s.now()
	cfg.CreatedAt = now
	cfg.UpdatedAt = now

	s.locations[cfg.ID] = cfg
	s.logger.Info("Location created", "location_id", cfg.ID, "type", cfg.Type, "name", cfg.Name)
	return cfg, nil
}

func (s *LocationStore) Update(ctx context.Context, cfg location.Config) (location.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.locations[cfg.ID]
	if !ok {
		return location.Config{}, apperror.NotFound("location", cfg.ID)
	}

	cfg.Name = strings.ToLower(strings.TrimSpace(cfg.Name))
	if err := s.validateLocked(cfg, cfg.ID); err != nil {
		return location.Config{}, err
	}

	cfg.CreatedAt = existing.CreatedAt
	cfg.UpdatedAt = s.now()
	s.locations[cfg.ID] = cfg

	s.logger.Info("Location updated", "location_id", cfg.ID)
	return cfg, nil
}

func (s *LocationStore) ToggleActive(ctx context.Context, id string) (location.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.locations[id]
	if !ok {
		return location.Config{}, apperror.NotFound("location", id)
	}

	cfg.IsActive = !cfg.IsActive
	cfg.UpdatedAt = s.now()
	s.locations[id] = cfg

	s.logger.Info("Location active flag toggled", "location_id", id, "is_active", cfg.IsActive)
	return cfg, nil
}

// Delete refuses to remove a location that other locations still point at
// through ParentID.
func (s *LocationStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.locations[id]
	if !ok {
		return apperror.NotFound("location", id)
	}

	for _, other := range s.locations {
		if other.ParentID == id {
			return apperror.Integrity("location %s (%s) still has dependent children", id, cfg.Name)
		}
	}

	delete(s.locations, id)
	s.logger.Info("Location deleted", "location_id", id, "type", cfg.Type)
	return nil
}

// Reorder swaps the order value of the target with its neighbour of the same
// type in sorted-order sequence. Already first (up) or last (down) is a
// no-op. Only the two order values move; the list is never renumbered.
func (s *LocationStore) Reorder(ctx context.Context, id string, direction location.Direction) ([]location.Config, error) {
	if direction != location.DirectionUp && direction != location.DirectionDown {
		return nil, apperror.Validation("direction", "unknown direction %q", direction)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.locations[id]
	if !ok {
		return nil, apperror.NotFound("location", id)
	}

	siblings := s.sortedLocked(target.Type)
	index := -1
	for i, sibling := range siblings {
		if sibling.ID == id {
			index = i
			break
		}
	}

	neighbour := index - 1
	if direction == location.DirectionDown {
		neighbour = index + 1
	}
	if neighbour < 0 || neighbour >= len(siblings) {
		return siblings, nil
	}

	other := siblings[neighbour]
	target.Order, other.Order = other.Order, target.Order
	now := s.now()
	target.UpdatedAt = now
	other.UpdatedAt = now
	s.locations[target.ID] = target
	s.locations[other.ID] = other

	s.logger.Info("Location reordered",
		"location_id", target.ID,
		"direction", direction,
		"swapped_with", other.ID)

	return s.sortedLocked(target.Type), nil
}

func (s *LocationStore) validateLocked(cfg location.Config, selfID string) error {
	if !cfg.Type.Valid() {
		return apperror.Validation("type", "unknown location type %q", cfg.Type)
	}
	if cfg.Name == "" {
		return apperror.Validation("name", "name is required")
	}
	if strings.TrimSpace(cfg.Label) == "" {
		return apperror.Validation("label", "label is required")
	}
	if cfg.Order < 0 {
		return apperror.Validation("order", "order must not be negative")
	}

	for _, other := range s.locations {
		if other.ID == selfID || other.Type != cfg.Type {
			continue
		}
		if strings.EqualFold(other.Name, cfg.Name) {
			return apperror.Validation("name", "a %s named %q already exists", cfg.Type, cfg.Name)
		}
		if other.Order == cfg.Order {
			return apperror.Validation("order", "order %d is already taken for type %s", cfg.Order, cfg.Type)
		}
	}

	if cfg.Type == location.TypeSection {
		if cfg.ParentID == "" {
			return apperror.Integrity("a section requires a parent building")
		}
		parent, ok := s.locations[cfg.ParentID]
		if !ok {
			return apperror.Integrity("parent building %s does not exist", cfg.ParentID)
		}
		if parent.Type != location.TypeBuilding {
			return apperror.Integrity("parent %s is a %s, sections must attach to a building", cfg.ParentID, parent.Type)
		}
	} else if cfg.ParentID != "" {
		return apperror.Validation("parentId", "only sections may have a parent")
	}

	return nil
}

func (s *LocationStore) sortedLocked(t location.Type) []location.Config {
	out := make([]location.Config, 0, len(s.locations))
	for _, cfg := range s.locations {
		if t == "" || cfg.Type == t {
			out = append(out, cfg)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Order < out[j].Order
	})
	return out
}
