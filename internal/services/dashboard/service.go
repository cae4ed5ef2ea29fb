package dashboard

import (
	"strconv"
	"strings"

	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
)

type Service struct {
	invoiceRepo  *repository.InvoiceRepository
	customerRepo *repository.CustomerRepository
	revenueRepo  *repository.RevenueRepository
	db           *gorm.DB
}

func NewService(
	invoiceRepo *repository.InvoiceRepository,
	customerRepo *repository.CustomerRepository,
	revenueRepo *repository.RevenueRepository,
) *Service {
	return &Service{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		revenueRepo:  revenueRepo,
		db:           invoiceRepo.DB(), // assuming repository exposes DB connection
	}
}

// CardData backs the four summary cards on the dashboard overview.
type CardData struct {
	NumberOfInvoices  int64  `json:"number_of_invoices"`
	NumberOfCustomers int64  `json:"number_of_customers"`
	TotalPaid         string `json:"total_paid"`
	TotalPending      string `json:"total_pending"`
}

type statRow struct {
	Status string
	Count  int64
	Sum    int64
}

func (s *Service) CardData() (CardData, error) {
	var data CardData
	var rows []statRow

	err := s.db.Model(&models.Invoice{}).
		Select("status, COUNT(*) as count, COALESCE(SUM(amount),0) as sum").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return data, err
	}

	var totalPaid, totalPending int64
	for _, r := range rows {
		data.NumberOfInvoices += r.Count
		switch r.Status {
		case models.InvoiceStatusPaid:
			totalPaid = r.Sum
		case models.InvoiceStatusPending:
			totalPending = r.Sum
		}
	}
	data.TotalPaid = FormatCurrency(totalPaid)
	data.TotalPending = FormatCurrency(totalPending)

	if err := s.db.Model(&models.Customer{}).Count(&data.NumberOfCustomers).Error; err != nil {
		return data, err
	}
	return data, nil
}

func (s *Service) RevenueChart() ([]models.Revenue, error) {
	return s.revenueRepo.GetAll()
}

// LatestInvoices returns the five most recent invoices with display-ready
// amounts.
func (s *Service) LatestInvoices() ([]models.LatestInvoice, error) {
	rows, err := s.invoiceRepo.Latest(5)
	if err != nil {
		return nil, err
	}
	latest := make([]models.LatestInvoice, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, models.LatestInvoice{
			ID:           row.ID,
			CustomerName: row.CustomerName,
			Email:        row.CustomerEmail,
			ImageURL:     row.ImageURL,
			Amount:       FormatCurrency(row.Amount),
		})
	}
	return latest, nil
}

// FormatCurrency renders an amount in cents as a dollar string, e.g.
// 123456 -> "$1,234.56".
func FormatCurrency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	dollars := strconv.FormatInt(cents/100, 10)

	var groups []string
	for len(dollars) > 3 {
		groups = append([]string{dollars[len(dollars)-3:]}, groups...)
		dollars = dollars[:len(dollars)-3]
	}
	groups = append([]string{dollars}, groups...)

	remainder := cents % 100
	return sign + "$" + strings.Join(groups, ",") + "." +
		strconv.FormatInt(remainder/10, 10) + strconv.FormatInt(remainder%10, 10)
}
