package catalog

import (
	"context"
	"time"
)

// Catalog entries are referenced from rooms by id only. Renaming an entry
// propagates implicitly through the reference; rooms never hold copies.

// Meta is the part shared by every catalog table. Name must be unique,
// case-insensitively, among non-deleted siblings of the same table.
type Meta struct {
	ID          string
	Name        string
	Description string
	Icon        string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type RoomTypeConfig struct {
	Meta
	Color string
}

type Equipment struct {
	Meta
	Category string
}

type RoomFeature struct {
	Meta
	Color string
}

type RoomTypeRepository interface {
	Snapshot(ctx context.Context) []RoomTypeConfig
	FindByID(ctx context.Context, id string) (RoomTypeConfig, error)
	Create(ctx context.Context, entry RoomTypeConfig) (RoomTypeConfig, error)
	Update(ctx context.Context, entry RoomTypeConfig) (RoomTypeConfig, error)
	ToggleActive(ctx context.Context, id string) (RoomTypeConfig, error)
	SoftDelete(ctx context.Context, id string) error
}

type EquipmentRepository interface {
	Snapshot(ctx context.Context) []Equipment
	FindByID(ctx context.Context, id string) (Equipment, error)
	Create(ctx context.Context, entry Equipment) (Equipment, error)
	Update(ctx context.Context, entry Equipment) (Equipment, error)
	ToggleActive(ctx context.Context, id string) (Equipment, error)
	SoftDelete(ctx context.Context, id string) error
}

type RoomFeatureRepository interface {
	Snapshot(ctx context.Context) []RoomFeature
	FindByID(ctx context.Context, id string) (RoomFeature, error)
	Create(ctx context.Context, entry RoomFeature) (RoomFeature, error)
	Update(ctx context.Context, entry RoomFeature) (RoomFeature, error)
	ToggleActive(ctx context.Context, id string) (RoomFeature, error)
	SoftDelete(ctx context.Context, id string) error
}
