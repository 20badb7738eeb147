package lease

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/property"
	"github.com/dmarins/rently/internal/tenant"
)

var (
	ErrNotFound = errors.New("lease not found")
	// ErrAlreadyTerminated rejects transitions out of TERMINATED.
	ErrAlreadyTerminated = errors.New("lease already terminated")
)

// DebtOutstandingError blocks termination while unsettled payments exist. It
// is a distinct type so the HTTP layer can render its message apart from
// generic validation failures.
type DebtOutstandingError struct {
	LeaseID   uuid.UUID
	Unsettled int
}

func (e *DebtOutstandingError) Error() string {
	return fmt.Sprintf("lease cannot be terminated: %d payment(s) still pending or overdue", e.Unsettled)
}

// Status represents the lifecycle state of a lease.
type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusExpired    Status = "EXPIRED"
	StatusTerminated Status = "TERMINATED"
)

// AdjustmentIndex is the inflation index the rent is adjusted by.
type AdjustmentIndex string

const (
	IndexIPCA AdjustmentIndex = "IPCA"
	IndexIGPM AdjustmentIndex = "IGPM"
	IndexINPC AdjustmentIndex = "INPC"
)

// GuaranteeType is the security mechanism backing a lease.
type GuaranteeType string

const (
	GuaranteeDeposit         GuaranteeType = "DEPOSIT"
	GuaranteeSuretyInsurance GuaranteeType = "SURETY_INSURANCE"
	GuaranteeGuarantor       GuaranteeType = "GUARANTOR"
)

// Lease is the rental contract aggregate linking one property and one
// tenant. Monetary values are in cents.
type Lease struct {
	ID              uuid.UUID
	PropertyID      uuid.UUID
	TenantID        uuid.UUID
	Value           int64 // monthly rent
	DueDay          int   // day of month, 1-31
	StartDate       time.Time
	EndDate         time.Time
	AdjustmentIndex AdjustmentIndex
	Status          Status
	// SubscriptionID is nil until the billing bridge creates the recurring
	// billing subscription; the lease is fully usable without it.
	SubscriptionID *string

	GuaranteeType        GuaranteeType
	GuaranteeAmount      int64
	GuaranteeChargeStart *time.Time

	TerminationDate             *time.Time
	KeyReturnDate               *time.Time
	TerminationReason           string
	OutstandingDebt             int64
	KeyReturnSigned             bool
	TerminationContractSigned   bool
	SettlementWithDebtSigned    bool
	SettlementWithoutDebtSigned bool

	Property *property.Property // Loaded via JOIN
	Tenant   *tenant.Tenant     // Loaded via JOIN

	CreatedAt time.Time
	UpdatedAt *time.Time
}
