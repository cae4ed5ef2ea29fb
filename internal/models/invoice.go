package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice status values. Storage keeps the raw string; anything outside this
// pair is rejected before it reaches the database.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount     int64     `gorm:"not null"` // cents
	Status     string    `gorm:"index;not null"`
	Date       time.Time `gorm:"index"`
	CreatedAt  time.Time
}

func ValidInvoiceStatus(s string) bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// InvoiceRow joins an invoice with its customer for the filtered table.
// Amount stays numeric here; formatting happens in the dashboard service.
type InvoiceRow struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ImageURL      string    `json:"image_url"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}

// LatestInvoice is the display variant of InvoiceRow used by the dashboard
// overview: the amount arrives pre-formatted as a currency string.
type LatestInvoice struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email"`
	ImageURL     string    `json:"image_url"`
	Amount       string    `json:"amount"`
}
