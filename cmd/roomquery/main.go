package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/common-nighthawk/go-figure"

	"github.com/goddivor/room-reservation-sub001/internal/application/usecase"
	"github.com/goddivor/room-reservation-sub001/internal/domain/location"
	"github.com/goddivor/room-reservation-sub001/internal/domain/room"
	"github.com/goddivor/room-reservation-sub001/internal/domain/table"
	"github.com/goddivor/room-reservation-sub001/internal/infrastructure/adapter"
	"github.com/goddivor/room-reservation-sub001/internal/infrastructure/config"
	"github.com/goddivor/room-reservation-sub001/internal/infrastructure/seed"
	"github.com/goddivor/room-reservation-sub001/internal/infrastructure/store"
	"github.com/goddivor/room-reservation-sub001/pkg/logger"
)

type Application struct {
	config *config.Config
	logger *slog.Logger

	stores seed.Stores
	cache  *adapter.MemoryCacheAdapter

	searchRoomsUseCase      *usecase.SearchRoomsUseCase
	manageLocationsUseCase  *usecase.ManageLocationsUseCase
	reservationStatsUseCase *usecase.ReservationStatsUseCase
	validateRefundUseCase   *usecase.ValidateRefundUseCase
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	applicationLogger := logger.SetupLoggerWithFormat(cfg.Logging.Level, cfg.Logging.Format)

	app, err := NewApplication(cfg, applicationLogger)
	if err != nil {
		applicationLogger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		applicationLogger.Error("Run failed", "error", err)
		os.Exit(1)
	}
}

func NewApplication(cfg *config.Config, applicationLogger *slog.Logger) (*Application, error) {
	stores := seed.Stores{
		Rooms:        store.NewRoomStore(applicationLogger),
		RoomTypes:    store.NewRoomTypeStore(applicationLogger),
		Equipment:    store.NewEquipmentStore(applicationLogger),
		Features:     store.NewRoomFeatureStore(applicationLogger),
		Locations:    store.NewLocationStore(applicationLogger),
		Reservations: store.NewReservationStore(applicationLogger),
	}

	if cfg.Seed.Enabled {
		if err := seed.Load(context.Background(), stores); err != nil {
			return nil, fmt.Errorf("failed to seed fixture data: %w", err)
		}
	}

	cache := adapter.NewMemoryCacheAdapter(applicationLogger)
	refundProcessor := adapter.NewLedgerRefundProcessor(stores.Reservations, applicationLogger)

	return &Application{
		config: cfg,
		logger: applicationLogger,
		stores: stores,
		cache:  cache,
		searchRoomsUseCase: usecase.NewSearchRoomsUseCase(
			stores.Rooms,
			stores.RoomTypes,
			cache,
			cfg.Query.CacheTTL,
			applicationLogger,
		),
		manageLocationsUseCase:  usecase.NewManageLocationsUseCase(stores.Locations, applicationLogger),
		reservationStatsUseCase: usecase.NewReservationStatsUseCase(stores.Reservations, nil, applicationLogger),
		validateRefundUseCase:   usecase.NewValidateRefundUseCase(stores.Reservations, refundProcessor, applicationLogger),
	}, nil
}

// Run walks the engine through the flows the dashboards exercise: a filtered,
// sorted, paginated room search, taxonomy maintenance, the reservation stats
// panel and a partial refund.
func (app *Application) Run(ctx context.Context) error {
	figure.NewFigure("roomquery", "", true).Print()
	fmt.Println("")

	minRate := 80.0
	result, err := app.searchRoomsUseCase.Execute(ctx, usecase.SearchRoomsParams{
		Criteria: room.FilterCriteria{
			Status:  room.StatusAvailable,
			MinRate: &minRate,
			HasWifi: true,
		},
		Sort:     table.SortState{Column: "dailyRate", Direction: table.Ascending},
		Page:     1,
		PageSize: app.config.Query.DefaultPageSize,
	})
	if err != nil {
		return fmt.Errorf("room search failed: %w", err)
	}

	fmt.Printf("Available wifi rooms from %.0f/night (%d hits, page %d/%d):\n",
		minRate, result.TotalHits, result.Page, result.TotalPages)
	for _, r := range result.Rooms {
		fmt.Printf("  %-4s %-10s %8.2f  %s\n", r.Code, r.Floor, r.DailyRate, r.Description)
	}
	fmt.Println("")

	buildings := app.manageLocationsUseCase.ListByType(ctx, location.TypeBuilding)
	if len(buildings) > 1 {
		if _, err := app.manageLocationsUseCase.Reorder(ctx, buildings[1].ID, location.DirectionUp); err != nil {
			return fmt.Errorf("reorder failed: %w", err)
		}
	}
	if err := app.manageLocationsUseCase.Delete(ctx, "loc-main"); err != nil {
		// Expected: the main building still has section children.
		app.logger.Info("Delete refused as expected", "error", err)
	}

	stats := app.reservationStatsUseCase.Execute(ctx)
	fmt.Printf("Reservations: %d confirmed, %d pending, %d completed, %d cancelled\n",
		stats.Confirmed, stats.Pending, stats.Completed, stats.Cancelled)
	fmt.Printf("Revenue: %.2f paid, %.2f pending, %d this month\n",
		stats.TotalRevenue, stats.PendingRevenue, stats.ThisMonth)
	fmt.Println("")

	const reservationID = "res-1003"
	for _, percentage := range usecase.QuickRefundPercentages {
		amount, err := app.validateRefundUseCase.QuickAmount(ctx, reservationID, percentage)
		if err != nil {
			return fmt.Errorf("quick amount failed: %w", err)
		}
		fmt.Printf("Refund %3d%% of %s -> %.2f\n", percentage, reservationID, amount)
	}
	halfRefund, err := app.validateRefundUseCase.QuickAmount(ctx, reservationID, 50)
	if err != nil {
		return fmt.Errorf("quick amount failed: %w", err)
	}
	if err := app.validateRefundUseCase.Confirm(ctx, reservationID, halfRefund, "guest complaint"); err != nil {
		return fmt.Errorf("refund confirmation failed: %w", err)
	}

	updated, err := app.stores.Reservations.FindByID(ctx, reservationID)
	if err != nil {
		return err
	}
	fmt.Printf("Reservation %s now refunded %.2f of %.2f (%s)\n",
		updated.ID, *updated.Payment.RefundedAmount, updated.TotalAmount, updated.Payment.Status)

	return nil
}
