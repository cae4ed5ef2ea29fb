package repository

import (
	"strings"

	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
)

// InvoicesPerPage is the page size of the filtered invoices table.
const InvoicesPerPage = 6

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

const invoiceRowSelect = `invoices.id, invoices.customer_id, customers.name AS customer_name,
customers.email AS customer_email, customers.image_url, invoices.amount, invoices.status, invoices.date`

func (r *InvoiceRepository) filteredQuery(query string) *gorm.DB {
	dbQuery := r.db.Table("invoices").
		Select(invoiceRowSelect).
		Joins("JOIN customers ON customers.id = invoices.customer_id")

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		dbQuery = dbQuery.Where(
			`LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ?
			OR LOWER(invoices.status) LIKE ? OR CAST(invoices.amount AS TEXT) LIKE ?
			OR CAST(invoices.date AS TEXT) LIKE ?`,
			like, like, like, like, like,
		)
	}
	return dbQuery
}

// FindFiltered returns one page of the invoices table, newest first. The
// query matches customer name/email, status, and the textual form of amount
// and date.
func (r *InvoiceRepository) FindFiltered(query string, page int) ([]models.InvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	var rows []models.InvoiceRow
	err := r.filteredQuery(query).
		Order("invoices.date DESC").
		Limit(InvoicesPerPage).
		Offset((page - 1) * InvoicesPerPage).
		Scan(&rows).Error
	return rows, err
}

// CountPages returns how many pages the filtered table spans.
func (r *InvoiceRepository) CountPages(query string) (int, error) {
	var total int64
	if err := r.filteredQuery(query).Count(&total).Error; err != nil {
		return 0, err
	}
	pages := int((total + InvoicesPerPage - 1) / InvoicesPerPage)
	return pages, nil
}

// Latest returns the most recent invoices joined with their customers.
func (r *InvoiceRepository) Latest(limit int) ([]models.InvoiceRow, error) {
	var rows []models.InvoiceRow
	err := r.db.Table("invoices").
		Select(invoiceRowSelect).
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Order("invoices.date DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// GetByID fetch a single invoice by ID
func (r *InvoiceRepository) GetByID(id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Create(inv *models.Invoice) error {
	return r.db.Create(inv).Error
}

func (r *InvoiceRepository) Update(inv *models.Invoice) error {
	return r.db.Model(&models.Invoice{}).
		Where("id = ?", inv.ID).
		Updates(map[string]interface{}{
			"customer_id": inv.CustomerID,
			"amount":      inv.Amount,
			"status":      inv.Status,
			"date":        inv.Date,
		}).Error
}

func (r *InvoiceRepository) Delete(id string) error {
	return r.db.Delete(&models.Invoice{}, "id = ?", id).Error
}
