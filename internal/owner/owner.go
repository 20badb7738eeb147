package owner

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("owner not found")

// Owner is a property owner and the beneficiary of the rent split.
type Owner struct {
	ID       uuid.UUID
	Name     string
	Email    string
	TaxID    string // CPF/CNPJ
	Phone    string
	BankInfo string
	PixKey   string
	// PayoutAccountID is nil until the billing bridge provisions a payout
	// subaccount for the split.
	PayoutAccountID *string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
