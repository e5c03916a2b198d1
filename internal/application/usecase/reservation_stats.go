package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/goddivor/room-reservation-sub001/internal/domain/reservation"
)

type ReservationStats struct {
	Confirmed      int     `json:"confirmed"`
	Pending        int     `json:"pending"`
	Completed      int     `json:"completed"`
	Cancelled      int     `json:"cancelled"`
	TotalRevenue   float64 `json:"total_revenue"`
	PendingRevenue float64 `json:"pending_revenue"`
	ThisMonth      int     `json:"this_month"`
}

type ReservationStatsUseCase struct {
	reservationRepo reservation.Repository
	now             func() time.Time
	logger          *slog.Logger
}

func NewReservationStatsUseCase(reservationRepo reservation.Repository, now func() time.Time, logger *slog.Logger) *ReservationStatsUseCase {
	if now == nil {
		now = time.Now
	}
	return &ReservationStatsUseCase{
		reservationRepo: reservationRepo,
		now:             now,
		logger:          logger,
	}
}

// Execute recomputes the dashboard aggregates from the full ledger snapshot.
// The reduction is pure; nothing is kept between calls.
func (reservationStatsUseCase *ReservationStatsUseCase) Execute(ctx context.Context) ReservationStats {
	reservations := reservationStatsUseCase.reservationRepo.Snapshot(ctx)
	stats := ReduceStats(reservations, reservationStatsUseCase.now())

	reservationStatsUseCase.logger.Debug("Reservation stats computed",
		"reservations", len(reservations),
		"total_revenue", stats.TotalRevenue)
	return stats
}

// ReduceStats folds a reservation collection into the dashboard aggregates.
// ThisMonth counts reservations created in the same calendar month and year
// as the reference time.
func ReduceStats(reservations []reservation.Reservation, now time.Time) ReservationStats {
	var stats ReservationStats

	for _, r := range reservations {
		switch r.Status {
		case reservation.StatusConfirmed:
			stats.Confirmed++
		case reservation.StatusPending:
			stats.Pending++
		case reservation.StatusCompleted:
			stats.Completed++
		case reservation.StatusCancelled:
			stats.Cancelled++
		}

		switch r.Payment.Status {
		case reservation.PaymentPaid:
			stats.TotalRevenue += r.TotalAmount
		case reservation.PaymentPending:
			stats.PendingRevenue += r.TotalAmount
		}

		if r.CreatedAt.Month() == now.Month() && r.CreatedAt.Year() == now.Year() {
			stats.ThisMonth++
		}
	}

	return stats
}
