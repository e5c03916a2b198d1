// Package seed loads the static fixture data set the marketing site and the
// dashboards render. Ids are fixed so demo output and tests stay stable.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/goddivor/room-reservation-sub001/internal/domain/catalog"
	"github.com/goddivor/room-reservation-sub001/internal/domain/location"
	"github.com/goddivor/room-reservation-sub001/internal/domain/reservation"
	"github.com/goddivor/room-reservation-sub001/internal/domain/room"
	"github.com/goddivor/room-reservation-sub001/internal/infrastructure/store"
)

type Stores struct {
	Rooms        *store.RoomStore
	RoomTypes    *store.RoomTypeStore
	Equipment    *store.EquipmentStore
	Features     *store.RoomFeatureStore
	Locations    *store.LocationStore
	Reservations *store.ReservationStore
}

func Load(ctx context.Context, stores Stores) error {
	if err := loadCatalogs(ctx, stores); err != nil {
		return err
	}
	if err := loadLocations(ctx, stores.Locations); err != nil {
		return err
	}
	if err := loadRooms(ctx, stores.Rooms); err != nil {
		return err
	}
	if err := loadReservations(ctx, stores.Reservations); err != nil {
		return err
	}
	return nil
}

func loadCatalogs(ctx context.Context, stores Stores) error {
	roomTypes := []catalog.RoomTypeConfig{
		{Meta: catalog.Meta{ID: "rt-standard", Name: "Standard", Description: "Standard double room", Icon: "bed", IsActive: true}, Color: "#4f46e5"},
		{Meta: catalog.Meta{ID: "rt-deluxe", Name: "Deluxe", Description: "Deluxe room with seating area", Icon: "sparkles", IsActive: true}, Color: "#d97706"},
		{Meta: catalog.Meta{ID: "rt-suite", Name: "Suite", Description: "Two-room suite", Icon: "crown", IsActive: true}, Color: "#be123c"},
		{Meta: catalog.Meta{ID: "rt-conference", Name: "Conference", Description: "Meeting and conference room", Icon: "presentation", IsActive: true}, Color: "#0f766e"},
	}
	for _, entry := range roomTypes {
		if _, err := stores.RoomTypes.Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed room type %s: %w", entry.Name, err)
		}
	}

	equipment := []catalog.Equipment{
		{Meta: catalog.Meta{ID: "eq-projector", Name: "Projector", Icon: "projector", IsActive: true}, Category: "av"},
		{Meta: catalog.Meta{ID: "eq-whiteboard", Name: "Whiteboard", Icon: "pen", IsActive: true}, Category: "office"},
		{Meta: catalog.Meta{ID: "eq-tv", Name: "Television", Icon: "tv", IsActive: true}, Category: "av"},
		{Meta: catalog.Meta{ID: "eq-minibar", Name: "Minibar", Icon: "wine", IsActive: true}, Category: "comfort"},
		{Meta: catalog.Meta{ID: "eq-safe", Name: "Safe", Icon: "lock", IsActive: true}, Category: "comfort"},
	}
	for _, entry := range equipment {
		if _, err := stores.Equipment.Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed equipment %s: %w", entry.Name, err)
		}
	}

	features := []catalog.RoomFeature{
		{Meta: catalog.Meta{ID: "ft-seaview", Name: "Sea view", Icon: "waves", IsActive: true}, Color: "#0284c7"},
		{Meta: catalog.Meta{ID: "ft-quiet", Name: "Quiet side", Icon: "moon", IsActive: true}, Color: "#64748b"},
		{Meta: catalog.Meta{ID: "ft-accessible", Name: "Accessible", Icon: "accessibility", IsActive: true}, Color: "#16a34a"},
	}
	for _, entry := range features {
		if _, err := stores.Features.Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed room feature %s: %w", entry.Name, err)
		}
	}

	return nil
}

func loadLocations(ctx context.Context, locations *store.LocationStore) error {
	configs := []location.Config{
		{ID: "loc-ground", Type: location.TypeFloor, Name: "ground", Label: "Ground floor", Order: 0, IsActive: true},
		{ID: "loc-first", Type: location.TypeFloor, Name: "first", Label: "First floor", Order: 1, IsActive: true},
		{ID: "loc-second", Type: location.TypeFloor, Name: "second", Label: "Second floor", Order: 2, IsActive: true},
		{ID: "loc-main", Type: location.TypeBuilding, Name: "main", Label: "Main building", Order: 0, IsActive: true},
		{ID: "loc-annex", Type: location.TypeBuilding, Name: "annex", Label: "Annex", Order: 1, IsActive: true},
		{ID: "loc-main-east", Type: location.TypeSection, Name: "main-east", Label: "Main east wing", Order: 0, IsActive: true, ParentID: "loc-main"},
		{ID: "loc-main-west", Type: location.TypeSection, Name: "main-west", Label: "Main west wing", Order: 1, IsActive: true, ParentID: "loc-main"},
	}
	for _, cfg := range configs {
		if _, err := locations.Create(ctx, cfg); err != nil {
			return fmt.Errorf("failed to seed location %s: %w", cfg.Name, err)
		}
	}
	return nil
}

func loadRooms(ctx context.Context, rooms *store.RoomStore) error {
	fixtures := []room.Room{
		{
			ID: "room-101", Code: "101", TypeID: "rt-standard", Floor: room.FloorFirst,
			Building: "main", Capacity: 2, DailyRate: 89, EquipmentIDs: []string{"eq-tv", "eq-safe"},
			HasBathroom: true, HasWifi: true, Status: room.StatusAvailable, IsActive: true,
			Description: "Compact double overlooking the courtyard",
		},
		{
			ID: "room-102", Code: "102", TypeID: "rt-standard", Floor: room.FloorFirst,
			Building: "main", Capacity: 2, DailyRate: 95, EquipmentIDs: []string{"eq-tv"},
			HasBathroom: true, HasWifi: true, HasBalcony: true, Status: room.StatusOccupied, IsActive: true,
			Description: "Double with balcony",
		},
		{
			ID: "room-201", Code: "201", TypeID: "rt-deluxe", Floor: room.FloorSecond,
			Building: "main", Capacity: 3, DailyRate: 149, EquipmentIDs: []string{"eq-tv", "eq-minibar", "eq-safe"},
			HasBathroom: true, HasWifi: true, HasAirConditioning: true, Status: room.StatusAvailable, IsActive: true,
			Description: "Deluxe room, sea view",
		},
		{
			ID: "room-202", Code: "202", TypeID: "rt-deluxe", Floor: room.FloorSecond,
			Building: "annex", Capacity: 3, DailyRate: 139, EquipmentIDs: []string{"eq-tv", "eq-minibar"},
			HasBathroom: true, HasWifi: true, HasAirConditioning: true, HasBalcony: true, Status: room.StatusReserved, IsActive: true,
			Description: "Deluxe room in the annex",
		},
		{
			ID: "room-301", Code: "301", TypeID: "rt-suite", Floor: room.FloorSecond,
			Building: "main", Capacity: 4, DailyRate: 249, EquipmentIDs: []string{"eq-tv", "eq-minibar", "eq-safe"},
			HasBathroom: true, HasWifi: true, HasAirConditioning: true, HasKitchen: true, Status: room.StatusAvailable, IsActive: true,
			Description: "Suite with kitchenette",
		},
		{
			ID: "room-c1", Code: "C1", TypeID: "rt-conference", Floor: room.FloorGround,
			Building: "main", Capacity: 12, DailyRate: 199, EquipmentIDs: []string{"eq-projector", "eq-whiteboard", "eq-tv"},
			HasWifi: true, HasAirConditioning: true, Status: room.StatusAvailable, IsActive: true,
			Description: "Conference room with projector and whiteboard",
		},
		{
			ID: "room-c2", Code: "C2", TypeID: "rt-conference", Floor: room.FloorGround,
			Building: "annex", Capacity: 8, DailyRate: 129, EquipmentIDs: []string{"eq-whiteboard"},
			HasWifi: true, Status: room.StatusMaintenance, IsActive: true,
			Description: "Small meeting room",
		},
		{
			ID: "room-103", Code: "103", TypeID: "rt-standard", Floor: room.FloorFirst,
			Building: "annex", Capacity: 1, DailyRate: 59, EquipmentIDs: nil,
			HasBathroom: true, Status: room.StatusInactive, IsActive: false,
			Description: "Single room, currently out of service",
		},
	}
	for _, fixture := range fixtures {
		if _, err := rooms.Create(ctx, fixture); err != nil {
			return fmt.Errorf("failed to seed room %s: %w", fixture.Code, err)
		}
	}
	return nil
}

func loadReservations(ctx context.Context, reservations *store.ReservationStore) error {
	now := time.Now()
	refunded := 100.0

	fixtures := []reservation.Reservation{
		{
			ID: "res-1001", RoomID: "room-101", GuestName: "A. Moreau", TotalAmount: 267,
			Status: reservation.StatusConfirmed, CreatedAt: now.AddDate(0, 0, -3),
			Payment: reservation.Payment{Status: reservation.PaymentPaid, Currency: "EUR"},
		},
		{
			ID: "res-1002", RoomID: "room-201", GuestName: "B. Keita", TotalAmount: 447,
			Status: reservation.StatusPending, CreatedAt: now.AddDate(0, 0, -1),
			Payment: reservation.Payment{Status: reservation.PaymentPending, Currency: "EUR"},
		},
		{
			ID: "res-1003", RoomID: "room-301", GuestName: "C. Diallo", TotalAmount: 300,
			Status: reservation.StatusCompleted, CreatedAt: now.AddDate(0, -2, 0),
			Payment: reservation.Payment{Status: reservation.PaymentPartiallyRefunded, RefundedAmount: &refunded, Currency: "EUR"},
		},
		{
			ID: "res-1004", RoomID: "room-202", GuestName: "D. N'Guessan", TotalAmount: 139,
			Status: reservation.StatusCancelled, CreatedAt: now.AddDate(0, -1, 0),
			Payment: reservation.Payment{Status: reservation.PaymentPending, Currency: "EUR"},
		},
		{
			ID: "res-1005", RoomID: "room-c1", GuestName: "E. Traoré", TotalAmount: 398,
			Status: reservation.StatusConfirmed, CreatedAt: now,
			Payment: reservation.Payment{Status: reservation.PaymentPaid, Currency: "EUR"},
		},
	}
	for _, fixture := range fixtures {
		if _, err := reservations.Add(ctx, fixture); err != nil {
			return fmt.Errorf("failed to seed reservation %s: %w", fixture.ID, err)
		}
	}
	return nil
}
