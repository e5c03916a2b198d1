package reservation

import (
	"context"
	"time"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPaid              PaymentStatus = "paid"
	PaymentPending           PaymentStatus = "pending"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentPartiallyRefunded PaymentStatus = "partially_refunded"
)

type Payment struct {
	Status         PaymentStatus
	RefundedAmount *float64
	Currency       string
}

type Reservation struct {
	ID          string
	RoomID      string
	GuestName   string
	TotalAmount float64
	Status      Status
	Payment     Payment
	CreatedAt   time.Time
}

// MaxRefundable is the remaining refundable balance. RefundedAmount never
// exceeds TotalAmount.
func (r Reservation) MaxRefundable() float64 {
	refunded := 0.0
	if r.Payment.RefundedAmount != nil {
		refunded = *r.Payment.RefundedAmount
	}
	return r.TotalAmount - refunded
}

// RefundProcessor authorizes a refund against the payment provider. The
// validator only ever calls this; updating the reservation's refunded amount
// afterwards is the processor's (or its caller's) job. Keeping that boundary
// here avoids deducting the amount twice.
type RefundProcessor interface {
	ProcessRefund(ctx context.Context, reservationID string, amount float64, reason string) error
}

type Repository interface {
	Snapshot(ctx context.Context) []Reservation
	FindByID(ctx context.Context, id string) (Reservation, error)
}
