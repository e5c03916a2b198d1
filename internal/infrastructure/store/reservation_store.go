package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goddivor/room-reservation-sub001/internal/domain/apperror"
	"github.com/goddivor/room-reservation-sub001/internal/domain/reservation"
)

// ReservationStore is the reservation ledger. The refund validator never
// writes here; RecordRefund is the single write path, invoked by the refund
// processing collaborator after it has authorized the amount.
type ReservationStore struct {
	mu           sync.RWMutex
	reservations map[string]reservation.Reservation
	order        []string
	now          func() time.Time
	logger       *slog.Logger
}

func NewReservationStore(logger *slog.Logger) *ReservationStore {
	return &ReservationStore{
		reservations: make(map[string]reservation.Reservation),
		order:        []string{},
		now:          time.Now,
		logger:       logger,
	}
}

func (s *ReservationStore) Snapshot(ctx context.Context) []reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]reservation.Reservation, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneReservation(s.reservations[id]))
	}
	return out
}

func (s *ReservationStore) FindByID(ctx context.Context, id string) (reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reservations[id]
	if !ok {
		return reservation.Reservation{}, apperror.NotFound("reservation", id)
	}
	return cloneReservation(r), nil
}

func (s *ReservationStore) Add(ctx context.Context, r reservation.Reservation) (reservation.Reservation, error) {
	if r.TotalAmount < 0 {
		return reservation.Reservation{}, apperror.Validation("totalAmount", "total amount must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}

	s.reservations[r.ID] = cloneReservation(r)
	s.order = append(s.order, r.ID)

	s.logger.Info("Reservation added", "reservation_id", r.ID, "total", r.TotalAmount)
	return cloneReservation(r), nil
}

// RecordRefund books an authorized refund against the reservation, keeping
// refundedAmount <= totalAmount at all times.
func (s *ReservationStore) RecordRefund(ctx context.Context, id string, amount float64) (reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[id]
	if !ok {
		return reservation.Reservation{}, apperror.NotFound("reservation", id)
	}

	refunded := 0.0
	if r.Payment.RefundedAmount != nil {
		refunded = *r.Payment.RefundedAmount
	}
	if amount <= 0 || refunded+amount > r.TotalAmount {
		return reservation.Reservation{}, apperror.Validation("amount", "refund of %.2f exceeds the refundable balance", amount)
	}

	total := refunded + amount
	r.Payment.RefundedAmount = &total
	if total >= r.TotalAmount {
		r.Payment.Status = reservation.PaymentRefunded
	} else {
		r.Payment.Status = reservation.PaymentPartiallyRefunded
	}
	s.reservations[id] = cloneReservation(r)

	s.logger.Info("Refund recorded", "reservation_id", id, "amount", amount, "refunded_total", total)
	return cloneReservation(r), nil
}

func cloneReservation(r reservation.Reservation) reservation.Reservation {
	if r.Payment.RefundedAmount != nil {
		v := *r.Payment.RefundedAmount
		r.Payment.RefundedAmount = &v
	}
	return r
}
