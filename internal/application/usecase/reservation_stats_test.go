package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goddivor/room-reservation-sub001/internal/application/usecase"
	"github.com/goddivor/room-reservation-sub001/internal/domain/reservation"
	"github.com/goddivor/room-reservation-sub001/internal/infrastructure/store"
)

func TestReduceStats(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	reservations := []reservation.Reservation{
		{Status: reservation.StatusConfirmed, TotalAmount: 100, CreatedAt: now.AddDate(0, 0, -2),
			Payment: reservation.Payment{Status: reservation.PaymentPaid}},
		{Status: reservation.StatusConfirmed, TotalAmount: 250, CreatedAt: now.AddDate(0, -1, 0),
			Payment: reservation.Payment{Status: reservation.PaymentPaid}},
		{Status: reservation.StatusPending, TotalAmount: 80, CreatedAt: now,
			Payment: reservation.Payment{Status: reservation.PaymentPending}},
		{Status: reservation.StatusCompleted, TotalAmount: 300, CreatedAt: now.AddDate(-1, 0, 0),
			Payment: reservation.Payment{Status: reservation.PaymentRefunded}},
		{Status: reservation.StatusCancelled, TotalAmount: 120, CreatedAt: now.AddDate(0, 0, -10),
			Payment: reservation.Payment{Status: reservation.PaymentPending}},
	}

	stats := usecase.ReduceStats(reservations, now)

	assert.Equal(t, 2, stats.Confirmed)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 350.0, stats.TotalRevenue)
	assert.Equal(t, 200.0, stats.PendingRevenue)
	// Same calendar month and year only: the -1 month and -1 year rows are
	// out, the -2 days and -10 days rows are in.
	assert.Equal(t, 3, stats.ThisMonth)
}

func TestReduceStats_EmptyInput(t *testing.T) {
	stats := usecase.ReduceStats(nil, time.Now())
	assert.Zero(t, stats)
}

func TestReduceStats_SameMonthDifferentYearDoesNotCount(t *testing.T) {
	now := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	reservations := []reservation.Reservation{
		{Status: reservation.StatusConfirmed, CreatedAt: time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)},
	}

	stats := usecase.ReduceStats(reservations, now)

	assert.Zero(t, stats.ThisMonth)
	assert.Equal(t, 1, stats.Confirmed)
}

func TestReservationStatsUseCase_ReadsLedgerSnapshot(t *testing.T) {
	ctx := context.Background()
	ledger := store.NewReservationStore(testLogger())

	fixedNow := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)
	statsUseCase := usecase.NewReservationStatsUseCase(ledger, func() time.Time { return fixedNow }, testLogger())

	_, err := ledger.Add(ctx, reservation.Reservation{
		TotalAmount: 180,
		Status:      reservation.StatusConfirmed,
		CreatedAt:   fixedNow.AddDate(0, 0, -1),
		Payment:     reservation.Payment{Status: reservation.PaymentPaid, Currency: "EUR"},
	})
	require.NoError(t, err)

	stats := statsUseCase.Execute(ctx)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 180.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.ThisMonth)

	// A second reading reflects newly added rows; nothing is memoized.
	_, err = ledger.Add(ctx, reservation.Reservation{
		TotalAmount: 90,
		Status:      reservation.StatusPending,
		CreatedAt:   fixedNow,
		Payment:     reservation.Payment{Status: reservation.PaymentPending, Currency: "EUR"},
	})
	require.NoError(t, err)

	stats = statsUseCase.Execute(ctx)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 90.0, stats.PendingRevenue)
	assert.Equal(t, 2, stats.ThisMonth)
}
