package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("payment not found")
	// ErrAlreadySettled guards against double-crediting a payment that was
	// already marked received.
	ErrAlreadySettled = errors.New("payment already settled")
)

// Status represents the lifecycle state of an installment.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusReceived Status = "RECEIVED"
	StatusOverdue  Status = "OVERDUE"
)

// Method is how money was (or will be) collected.
type Method string

const (
	MethodProvider Method = "provider" // billed through the external provider
	MethodCash     Method = "cash"
	MethodCard     Method = "card"
	MethodTransfer Method = "transfer" // PIX or equivalent instant transfer
	MethodOther    Method = "other"
)

// Payment is one installment owed under a lease. Amounts are in cents.
//
// Invariant: StatusReceived implies PaymentDate and AmountReceived are set.
type Payment struct {
	ID                uuid.UUID
	LeaseID           uuid.UUID
	Amount            int64 // originally due
	Status            Status
	DueDate           time.Time
	PaymentDate       *time.Time
	Method            Method
	AmountReceived    int64
	Notes             string
	ProviderPaymentID *string
	Lease             *LeaseSummary // Loaded via JOIN
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// LeaseSummary carries the lease columns the payments listing joins in.
type LeaseSummary struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	TenantID   uuid.UUID
	Value      int64
	DueDay     int
	Status     string
}

// CreateParams is the single canonical way a payment row comes into
// existence; the lease originator, the settlement remainder split and the
// seed command all go through New.
type CreateParams struct {
	LeaseID        uuid.UUID
	Amount         int64
	Status         Status
	DueDate        time.Time
	PaymentDate    *time.Time
	Method         Method
	AmountReceived int64
	Notes          string
}

func New(params CreateParams) *Payment {
	return &Payment{
		LeaseID:        params.LeaseID,
		Amount:         params.Amount,
		Status:         params.Status,
		DueDate:        params.DueDate,
		PaymentDate:    params.PaymentDate,
		Method:         params.Method,
		AmountReceived: params.AmountReceived,
		Notes:          params.Notes,
	}
}
