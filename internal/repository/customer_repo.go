package repository

import (
	"strings"

	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// GetAll returns every customer ordered by name, for select dropdowns.
func (r *CustomerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("name ASC").Find(&customers).Error
	return customers, err
}

// FindFiltered returns customers matching the query together with their
// invoice counts and pending/paid totals.
func (r *CustomerRepository) FindFiltered(query string) ([]models.CustomerSummary, error) {
	dbQuery := r.db.Table("customers").
		Select(`customers.id, customers.name, customers.email, customers.image_url,
		COUNT(invoices.id) AS total_invoices,
		COALESCE(SUM(CASE WHEN invoices.status = ? THEN invoices.amount ELSE 0 END), 0) AS total_pending,
		COALESCE(SUM(CASE WHEN invoices.status = ? THEN invoices.amount ELSE 0 END), 0) AS total_paid`,
			models.InvoiceStatusPending, models.InvoiceStatusPaid).
		Joins("LEFT JOIN invoices ON invoices.customer_id = customers.id").
		Group("customers.id, customers.name, customers.email, customers.image_url").
		Order("customers.name ASC")

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		dbQuery = dbQuery.Where("LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ?", like, like)
	}

	var summaries []models.CustomerSummary
	err := dbQuery.Scan(&summaries).Error
	return summaries, err
}
