package room

import "context"

type Repository interface {
	Snapshot(ctx context.Context) []Room
	SnapshotActive(ctx context.Context) []Room
	FindByID(ctx context.Context, id string) (Room, error)
	Create(ctx context.Context, r Room) (Room, error)
	Update(ctx context.Context, r Room) (Room, error)
	SetStatus(ctx context.Context, id string, status Status) (Room, error)
	ToggleActive(ctx context.Context, id string) (Room, error)
	Delete(ctx context.Context, id string) error
	Generation(ctx context.Context) uint64
}
