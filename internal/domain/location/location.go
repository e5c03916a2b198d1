package location

import (
	"context"
	"time"
)

type Type string

const (
	TypeFloor    Type = "floor"
	TypeBuilding Type = "building"
	TypeSection  Type = "section"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFloor, TypeBuilding, TypeSection:
		return true
	}
	return false
}

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Config is one node of the location taxonomy. Name is the lowercase unique
// key within its type; Order is the relative sort key within its type and is
// allowed to become non-contiguous after reorder operations. ParentID is set
// only on sections and must reference a building.
type Config struct {
	ID        string
	Type      Type
	Name      string
	Label     string
	Order     int
	IsActive  bool
	ParentID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository interface {
	Snapshot(ctx context.Context) []Config
	SnapshotByType(ctx context.Context, t Type) []Config
	FindByID(ctx context.Context, id string) (Config, error)
	Create(ctx context.Context, cfg Config) (Config, error)
	Update(ctx context.Context, cfg Config) (Config, error)
	ToggleActive(ctx context.Context, id string) (Config, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, id string, direction Direction) ([]Config, error)
}
