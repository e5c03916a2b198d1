package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goddivor/room-reservation-sub001/internal/domain/reservation"
	"github.com/goddivor/room-reservation-sub001/internal/infrastructure/store"
)

// LedgerRefundProcessor settles authorized refunds against the reservation
// ledger. It stands in for the payment gateway adapter of a deployed system;
// the refund validator knows it only through reservation.RefundProcessor.
type LedgerRefundProcessor struct {
	ledger *store.ReservationStore
	logger *slog.Logger
}

func NewLedgerRefundProcessor(ledger *store.ReservationStore, logger *slog.Logger) *LedgerRefundProcessor {
	return &LedgerRefundProcessor{ledger: ledger, logger: logger}
}

func (p *LedgerRefundProcessor) ProcessRefund(ctx context.Context, reservationID string, amount float64, reason string) error {
	updated, err := p.ledger.RecordRefund(ctx, reservationID, amount)
	if err != nil {
		return fmt.Errorf("failed to record refund for reservation %s: %w", reservationID, err)
	}

	p.logger.Info("Refund processed",
		"reservation_id", reservationID,
		"amount", amount,
		"reason", reason,
		"payment_status", updated.Payment.Status)
	return nil
}

var _ reservation.RefundProcessor = (*LedgerRefundProcessor)(nil)
