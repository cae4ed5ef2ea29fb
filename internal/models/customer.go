package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index;not null"`
	Email     string    `gorm:"not null"`
	ImageURL  string
	CreatedAt time.Time
}

// CustomerSummary is the table row shown on the customers page: the stored
// customer plus invoice aggregates, amounts still in cents.
type CustomerSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  int64     `json:"total_pending"`
	TotalPaid     int64     `json:"total_paid"`
}
