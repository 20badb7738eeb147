package property

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/owner"
)

var ErrNotFound = errors.New("property not found")

// Property is a rentable unit owned by exactly one Owner.
type Property struct {
	ID          uuid.UUID
	Address     string
	Description string
	OwnerID     uuid.UUID
	Owner       *owner.Owner // Loaded via JOIN
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
