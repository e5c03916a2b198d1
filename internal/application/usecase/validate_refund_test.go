package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goddivor/room-reservation-sub001/internal/application/usecase"
	"github.com/goddivor/room-reservation-sub001/internal/domain/apperror"
	"github.com/goddivor/room-reservation-sub001/internal/domain/reservation"
	"github.com/goddivor/room-reservation-sub001/internal/infrastructure/adapter"
	"github.com/goddivor/room-reservation-sub001/internal/infrastructure/store"
)

type refundCall struct {
	reservationID string
	amount        float64
	reason        string
}

type fakeRefundProcessor struct {
	calls []refundCall
	err   error
}

func (f *fakeRefundProcessor) ProcessRefund(ctx context.Context, reservationID string, amount float64, reason string) error {
	f.calls = append(f.calls, refundCall{reservationID: reservationID, amount: amount, reason: reason})
	return f.err
}

func newRefundFixture(t *testing.T) (*store.ReservationStore, *fakeRefundProcessor, *usecase.ValidateRefundUseCase) {
	t.Helper()

	ledger := store.NewReservationStore(testLogger())
	refunded := 100.0
	_, err := ledger.Add(context.Background(), reservation.Reservation{
		ID:          "res-1",
		TotalAmount: 300,
		Status:      reservation.StatusCompleted,
		CreatedAt:   time.Now(),
		Payment: reservation.Payment{
			Status:         reservation.PaymentPartiallyRefunded,
			RefundedAmount: &refunded,
			Currency:       "EUR",
		},
	})
	require.NoError(t, err)

	processor := &fakeRefundProcessor{}
	validate := usecase.NewValidateRefundUseCase(ledger, processor, testLogger())
	return ledger, processor, validate
}

func TestValidateRefund_MaxRefundable(t *testing.T) {
	_, _, validate := newRefundFixture(t)

	maxRefundable, err := validate.MaxRefundable(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, 200.0, maxRefundable)
}

func TestValidateRefund_RejectsInvalidProposals(t *testing.T) {
	_, _, validate := newRefundFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		amount float64
		reason string
	}{
		{"zero amount", 0, "guest complaint"},
		{"negative amount", -10, "guest complaint"},
		{"amount above refundable balance", 250, "guest complaint"},
		{"blank reason", 200, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Validate(ctx, "res-1", tt.amount, tt.reason)
			var validationErr *apperror.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidateRefund_AcceptsFullAndHalfRefund(t *testing.T) {
	_, _, validate := newRefundFixture(t)
	ctx := context.Background()

	require.NoError(t, validate.Validate(ctx, "res-1", 200, "guest complaint"))
	require.NoError(t, validate.Validate(ctx, "res-1", 100, "guest complaint"))
}

func TestValidateRefund_QuickAmounts(t *testing.T) {
	_, _, validate := newRefundFixture(t)
	ctx := context.Background()

	tests := []struct {
		percentage int
		want       float64
	}{
		{25, 50},
		{50, 100},
		{75, 150},
		{100, 200},
	}
	for _, tt := range tests {
		amount, err := validate.QuickAmount(ctx, "res-1", tt.percentage)
		require.NoError(t, err)
		assert.Equal(t, tt.want, amount)
	}

	_, err := validate.QuickAmount(ctx, "res-1", 0)
	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateRefund_QuickAmountRoundsToTwoDecimals(t *testing.T) {
	ledger := store.NewReservationStore(testLogger())
	_, err := ledger.Add(context.Background(), reservation.Reservation{
		ID:          "res-odd",
		TotalAmount: 99.99,
		Status:      reservation.StatusCompleted,
		Payment:     reservation.Payment{Status: reservation.PaymentPaid, Currency: "EUR"},
	})
	require.NoError(t, err)

	validate := usecase.NewValidateRefundUseCase(ledger, &fakeRefundProcessor{}, testLogger())

	amount, err := validate.QuickAmount(context.Background(), "res-odd", 25)
	require.NoError(t, err)
	assert.Equal(t, 25.0, amount) // 24.9975 rounds up

	amount, err = validate.QuickAmount(context.Background(), "res-odd", 50)
	require.NoError(t, err)
	assert.Equal(t, 50.0, amount) // 49.995 rounds up
}

func TestValidateRefund_ConfirmInvokesProcessorWithoutMutating(t *testing.T) {
	ledger, processor, validate := newRefundFixture(t)
	ctx := context.Background()

	require.NoError(t, validate.Confirm(ctx, "res-1", 150, "guest complaint"))

	require.Len(t, processor.calls, 1)
	assert.Equal(t, refundCall{reservationID: "res-1", amount: 150, reason: "guest complaint"}, processor.calls[0])

	// The validator itself never touches the ledger; with a processor that
	// records nothing, the refunded amount is unchanged.
	r, err := ledger.FindByID(ctx, "res-1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, *r.Payment.RefundedAmount)
}

func TestValidateRefund_ConfirmRejectsBeforeCallingProcessor(t *testing.T) {
	_, processor, validate := newRefundFixture(t)

	err := validate.Confirm(context.Background(), "res-1", 250, "guest complaint")

	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, processor.calls)
}

func TestValidateRefund_UnknownReservationIsNotFound(t *testing.T) {
	_, _, validate := newRefundFixture(t)

	_, err := validate.MaxRefundable(context.Background(), "res-missing")
	var notFoundErr *apperror.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestLedgerRefundProcessor_BooksRefundAndFlipsPaymentStatus(t *testing.T) {
	ledger, _, _ := newRefundFixture(t)
	processor := adapter.NewLedgerRefundProcessor(ledger, testLogger())
	validate := usecase.NewValidateRefundUseCase(ledger, processor, testLogger())
	ctx := context.Background()

	require.NoError(t, validate.Confirm(ctx, "res-1", 100, "late checkout dispute"))

	r, err := ledger.FindByID(ctx, "res-1")
	require.NoError(t, err)
	assert.Equal(t, 200.0, *r.Payment.RefundedAmount)
	assert.Equal(t, reservation.PaymentPartiallyRefunded, r.Payment.Status)

	require.NoError(t, validate.Confirm(ctx, "res-1", 100, "goodwill"))

	r, err = ledger.FindByID(ctx, "res-1")
	require.NoError(t, err)
	assert.Equal(t, 300.0, *r.Payment.RefundedAmount)
	assert.Equal(t, reservation.PaymentRefunded, r.Payment.Status)

	// Nothing refundable is left.
	err = validate.Confirm(ctx, "res-1", 1, "again")
	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
