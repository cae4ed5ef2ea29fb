// Package seed provisions the dashboard tables and loads baseline fixture
// rows. A run is all-or-nothing: the four entity groups execute in order
// inside one transaction, and any failure rolls the whole thing back.
// Re-running is safe because every insert skips on primary-key conflict.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"invoice-dashboard-backend/internal/fixtures"
	"invoice-dashboard-backend/internal/models"
)

type Seeder struct {
	db         *gorm.DB
	fixtures   fixtures.Provider
	bcryptCost int
}

func New(db *gorm.DB, provider fixtures.Provider) *Seeder {
	return &Seeder{db: db, fixtures: provider, bcryptCost: bcrypt.DefaultCost}
}

// Run seeds users, customers, invoices and revenue, strictly in that order.
// Schema creation and inserts for each group happen inside the same
// transaction, so a failure in any group leaves the database untouched.
func (s *Seeder) Run(ctx context.Context) error {
	started := time.Now()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counts := make(map[string]int, 4)

		n, err := s.seedUsers(tx)
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		counts["users"] = n

		n, err = s.seedCustomers(tx)
		if err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
		counts["customers"] = n

		n, err = s.seedInvoices(tx)
		if err != nil {
			return fmt.Errorf("seed invoices: %w", err)
		}
		counts["invoices"] = n

		n, err = s.seedRevenue(tx)
		if err != nil {
			return fmt.Errorf("seed revenue: %w", err)
		}
		counts["revenue"] = n

		return s.recordRun(tx, counts, started)
	})
}

func (s *Seeder) seedUsers(tx *gorm.DB) (int, error) {
	if err := tx.AutoMigrate(&models.User{}); err != nil {
		return 0, err
	}
	users, err := s.fixtures.Users()
	if err != nil {
		return 0, err
	}
	for i := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(users[i].Password), s.bcryptCost)
		if err != nil {
			return 0, err
		}
		users[i].Password = string(hash)
	}
	return insertSkippingConflicts(tx, users)
}

func (s *Seeder) seedCustomers(tx *gorm.DB) (int, error) {
	if err := tx.AutoMigrate(&models.Customer{}); err != nil {
		return 0, err
	}
	customers, err := s.fixtures.Customers()
	if err != nil {
		return 0, err
	}
	return insertSkippingConflicts(tx, customers)
}

func (s *Seeder) seedInvoices(tx *gorm.DB) (int, error) {
	if err := tx.AutoMigrate(&models.Invoice{}); err != nil {
		return 0, err
	}
	invoices, err := s.fixtures.Invoices()
	if err != nil {
		return 0, err
	}
	for _, inv := range invoices {
		if !models.ValidInvoiceStatus(inv.Status) {
			return 0, fmt.Errorf("invoice %s: invalid status %q", inv.ID, inv.Status)
		}
	}
	return insertSkippingConflicts(tx, invoices)
}

func (s *Seeder) seedRevenue(tx *gorm.DB) (int, error) {
	if err := tx.AutoMigrate(&models.Revenue{}); err != nil {
		return 0, err
	}
	revenue, err := s.fixtures.Revenue()
	if err != nil {
		return 0, err
	}
	return insertSkippingConflicts(tx, revenue)
}

// insertSkippingConflicts writes a whole group as one batched insert. Rows
// whose primary key already exists are skipped silently, which is what makes
// re-running the seed safe.
func insertSkippingConflicts[T any](tx *gorm.DB, rows []T) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	return int(res.RowsAffected), res.Error
}

func (s *Seeder) recordRun(tx *gorm.DB, counts map[string]int, started time.Time) error {
	if err := tx.AutoMigrate(&models.SeedRun{}); err != nil {
		return err
	}
	detail, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	run := models.SeedRun{
		ID:          uuid.New(),
		InsertedLog: datatypes.JSON(detail),
		StartedAt:   started,
		FinishedAt:  time.Now(),
		CreatedAt:   time.Now(),
	}
	return tx.Create(&run).Error
}
