package tenant

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("tenant not found")

// Tenant is the renting party on a lease.
type Tenant struct {
	ID    uuid.UUID
	Name  string
	Email string
	TaxID string // CPF/CNPJ
	Phone string
	// CustomerID is nil until the billing bridge registers the tenant as a
	// customer with the provider.
	CustomerID *string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
