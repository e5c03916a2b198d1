package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/goddivor/room-reservation-sub001/internal/domain/apperror"
	"github.com/goddivor/room-reservation-sub001/internal/domain/reservation"
)

// QuickRefundPercentages are the quick-select buttons of the refund dialog.
var QuickRefundPercentages = []int{25, 50, 75, 100}

// ValidateRefundUseCase checks proposed refunds against the payment history
// and, on confirmation, hands the authorized amount to the refund processor.
// It never mutates the reservation itself; booking the refunded amount is the
// processor's side of the boundary, which keeps a retried confirmation from
// deducting twice.
type ValidateRefundUseCase struct {
	reservationRepo reservation.Repository
	processor       reservation.RefundProcessor
	logger          *slog.Logger
}

func NewValidateRefundUseCase(
	reservationRepo reservation.Repository,
	processor reservation.RefundProcessor,
	logger *slog.Logger,
) *ValidateRefundUseCase {
	return &ValidateRefundUseCase{
		reservationRepo: reservationRepo,
		processor:       processor,
		logger:          logger,
	}
}

func (validateRefundUseCase *ValidateRefundUseCase) MaxRefundable(ctx context.Context, reservationID string) (float64, error) {
	r, err := validateRefundUseCase.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		return 0, err
	}
	return r.MaxRefundable(), nil
}

// QuickAmount computes the amount behind a percentage quick-select button,
// rounded to 2 decimal places.
func (validateRefundUseCase *ValidateRefundUseCase) QuickAmount(ctx context.Context, reservationID string, percentage int) (float64, error) {
	if percentage <= 0 || percentage > 100 {
		return 0, apperror.Validation("percentage", "percentage must be between 1 and 100")
	}

	maxRefundable, err := validateRefundUseCase.MaxRefundable(ctx, reservationID)
	if err != nil {
		return 0, err
	}
	return round2(maxRefundable * float64(percentage) / 100), nil
}

// Validate accepts an amount iff 0 < amount <= maxRefundable and a non-blank
// reason is given. The full-refund boundary (amount == maxRefundable) is
// valid.
func (validateRefundUseCase *ValidateRefundUseCase) Validate(ctx context.Context, reservationID string, amount float64, reason string) error {
	r, err := validateRefundUseCase.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		return err
	}

	if amount <= 0 {
		return apperror.Validation("amount", "refund amount must be greater than zero")
	}
	if maxRefundable := r.MaxRefundable(); amount > maxRefundable {
		return apperror.Validation("amount", "refund amount %.2f exceeds refundable balance %.2f", amount, maxRefundable)
	}
	if strings.TrimSpace(reason) == "" {
		return apperror.Validation("reason", "a refund reason is required")
	}
	return nil
}

// Confirm validates the proposal and invokes the refund processor. That call
// is the use case's only externally visible effect.
func (validateRefundUseCase *ValidateRefundUseCase) Confirm(ctx context.Context, reservationID string, amount float64, reason string) error {
	if err := validateRefundUseCase.Validate(ctx, reservationID, amount, reason); err != nil {
		return err
	}

	if err := validateRefundUseCase.processor.ProcessRefund(ctx, reservationID, amount, reason); err != nil {
		return fmt.Errorf("refund processing failed for reservation %s: %w", reservationID, err)
	}

	validateRefundUseCase.logger.Info("Refund confirmed",
		"reservation_id", reservationID,
		"amount", amount)
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
