package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SeedRun is an audit row written inside the same transaction as the seed
// itself, so a rolled-back run leaves no trace here either.
type SeedRun struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	InsertedLog datatypes.JSON
	StartedAt   time.Time
	FinishedAt  time.Time
	CreatedAt   time.Time
}
