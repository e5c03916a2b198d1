package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goddivor/room-reservation-sub001/internal/domain/location"
)

type LocationParams struct {
	Type     location.Type
	Name     string
	Label    string
	Order    int
	IsActive bool
	ParentID string
}

// ManageLocationsUseCase drives the taxonomy admin panel: create, edit,
// toggle, reorder and delete. The store enforces the invariants (unique name
// and order per type, section parent rules, no delete with children); this
// layer keeps the operations logged and the parameters in one place.
type ManageLocationsUseCase struct {
	locationRepo location.Repository
	logger       *slog.Logger
}

func NewManageLocationsUseCase(locationRepo location.Repository, logger *slog.Logger) *ManageLocationsUseCase {
	return &ManageLocationsUseCase{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

func (manageLocationsUseCase *ManageLocationsUseCase) List(ctx context.Context) []location.Config {
	return manageLocationsUseCase.locationRepo.Snapshot(ctx)
}

func (manageLocationsUseCase *ManageLocationsUseCase) ListByType(ctx context.Context, t location.Type) []location.Config {
	return manageLocationsUseCase.locationRepo.SnapshotByType(ctx, t)
}

func (manageLocationsUseCase *ManageLocationsUseCase) Create(ctx context.Context, params LocationParams) (location.Config, error) {
	created, err := manageLocationsUseCase.locationRepo.Create(ctx, location.Config{
		Type:     params.Type,
		Name:     params.Name,
		Label:    params.Label,
		Order:    params.Order,
		IsActive: params.IsActive,
		ParentID: params.ParentID,
	})
	if err != nil {
		return location.Config{}, fmt.Errorf("failed to create location: %w", err)
	}
	return created, nil
}

func (manageLocationsUseCase *ManageLocationsUseCase) Edit(ctx context.Context, id string, params LocationParams) (location.Config, error) {
	existing, err := manageLocationsUseCase.locationRepo.FindByID(ctx, id)
	if err != nil {
		return location.Config{}, err
	}

	existing.Type = params.Type
	existing.Name = params.Name
	existing.Label = params.Label
	existing.Order = params.Order
	existing.IsActive = params.IsActive
	existing.ParentID = params.ParentID

	updated, err := manageLocationsUseCase.locationRepo.Update(ctx, existing)
	if err != nil {
		return location.Config{}, fmt.Errorf("failed to update location %s: %w", id, err)
	}
	return updated, nil
}

func (manageLocationsUseCase *ManageLocationsUseCase) ToggleActive(ctx context.Context, id string) (location.Config, error) {
	return manageLocationsUseCase.locationRepo.ToggleActive(ctx, id)
}

func (manageLocationsUseCase *ManageLocationsUseCase) Delete(ctx context.Context, id string) error {
	if err := manageLocationsUseCase.locationRepo.Delete(ctx, id); err != nil {
		manageLocationsUseCase.logger.Warn("Location delete refused", "location_id", id, "error", err)
		return err
	}
	return nil
}

func (manageLocationsUseCase *ManageLocationsUseCase) Reorder(ctx context.Context, id string, direction location.Direction) ([]location.Config, error) {
	return manageLocationsUseCase.locationRepo.Reorder(ctx, id, direction)
}
