package fixtures

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"invoice-dashboard-backend/internal/models"
)

// Random generates demo-scale data with gofakeit. Unlike Static it produces
// fresh IDs per instance, so it is not re-run safe; use it for throwaway
// environments only.
type Random struct {
	NumUsers     int
	NumCustomers int
	NumInvoices  int

	customers []models.Customer
}

func NewRandom(users, customers, invoices int) *Random {
	gofakeit.Seed(time.Now().UnixNano())
	return &Random{NumUsers: users, NumCustomers: customers, NumInvoices: invoices}
}

func (r *Random) Users() ([]models.User, error) {
	users := make([]models.User, 0, r.NumUsers)
	for i := 0; i < r.NumUsers; i++ {
		users = append(users, models.User{
			ID:       uuid.New(),
			Name:     gofakeit.Name(),
			Email:    gofakeit.Email(),
			Password: gofakeit.Password(true, true, true, false, false, 12),
		})
	}
	return users, nil
}

func (r *Random) Customers() ([]models.Customer, error) {
	customers := make([]models.Customer, 0, r.NumCustomers)
	for i := 0; i < r.NumCustomers; i++ {
		customers = append(customers, models.Customer{
			ID:       uuid.New(),
			Name:     gofakeit.Name(),
			Email:    gofakeit.Email(),
			ImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		})
	}
	r.customers = customers
	return customers, nil
}

// Invoices requires Customers to have been called first; the seed routine
// always runs the groups in that order.
func (r *Random) Invoices() ([]models.Invoice, error) {
	if len(r.customers) == 0 {
		return nil, fmt.Errorf("random fixtures: no customers generated yet")
	}
	statuses := []string{models.InvoiceStatusPending, models.InvoiceStatusPaid}
	invoices := make([]models.Invoice, 0, r.NumInvoices)
	for i := 0; i < r.NumInvoices; i++ {
		invoices = append(invoices, models.Invoice{
			ID:         uuid.New(),
			CustomerID: r.customers[gofakeit.Number(0, len(r.customers)-1)].ID,
			Amount:     int64(gofakeit.Number(100, 100000)),
			Status:     statuses[gofakeit.Number(0, 1)],
			Date:       gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()),
		})
	}
	return invoices, nil
}

func (r *Random) Revenue() ([]models.Revenue, error) {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	revenue := make([]models.Revenue, 0, len(months))
	for _, m := range months {
		revenue = append(revenue, models.Revenue{Month: m, Revenue: int64(gofakeit.Number(1000, 5000))})
	}
	return revenue, nil
}
