package entity

import (
	"github.com/google/uuid"
)

// Activity is one audit-log entry for a back-office mutation.
type Activity struct {
	BaseSimple
	UserID     uuid.UUID `db:"user_id"`
	Action     string    `db:"action"`
	Resource   string    `db:"resource"`
	ResourceID string    `db:"resource_id"`
	Detail     string    `db:"detail"`
}
