package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Invoice{}, &models.Revenue{}))

	svc := NewService(
		repository.NewInvoiceRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewRevenueRepository(db),
	)
	return svc, db
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{666, "$6.66"},
		{123456, "$1,234.56"},
		{100000000, "$1,000,000.00"},
		{-15795, "-$157.95"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.cents))
	}
}

func TestCardData(t *testing.T) {
	svc, db := newTestService(t)

	customer := models.Customer{ID: uuid.New(), Name: "Acme", Email: "billing@acme.com"}
	require.NoError(t, db.Create(&customer).Error)

	invoices := []models.Invoice{
		{ID: uuid.New(), CustomerID: customer.ID, Amount: 10000, Status: models.InvoiceStatusPaid, Date: time.Now()},
		{ID: uuid.New(), CustomerID: customer.ID, Amount: 2500, Status: models.InvoiceStatusPaid, Date: time.Now()},
		{ID: uuid.New(), CustomerID: customer.ID, Amount: 666, Status: models.InvoiceStatusPending, Date: time.Now()},
	}
	require.NoError(t, db.Create(&invoices).Error)

	data, err := svc.CardData()
	require.NoError(t, err)
	assert.Equal(t, int64(3), data.NumberOfInvoices)
	assert.Equal(t, int64(1), data.NumberOfCustomers)
	assert.Equal(t, "$125.00", data.TotalPaid)
	assert.Equal(t, "$6.66", data.TotalPending)
}

func TestCardData_EmptyTables(t *testing.T) {
	svc, _ := newTestService(t)

	data, err := svc.CardData()
	require.NoError(t, err)
	assert.Equal(t, int64(0), data.NumberOfInvoices)
	assert.Equal(t, int64(0), data.NumberOfCustomers)
	assert.Equal(t, "$0.00", data.TotalPaid)
	assert.Equal(t, "$0.00", data.TotalPending)
}

func TestLatestInvoices_Formatted(t *testing.T) {
	svc, db := newTestService(t)

	customer := models.Customer{ID: uuid.New(), Name: "Acme", Email: "billing@acme.com", ImageURL: "/customers/acme.png"}
	require.NoError(t, db.Create(&customer).Error)

	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		require.NoError(t, db.Create(&models.Invoice{
			ID:         uuid.New(),
			CustomerID: customer.ID,
			Amount:     int64(100000 + i),
			Status:     models.InvoiceStatusPending,
			Date:       base.AddDate(0, 0, i),
		}).Error)
	}

	latest, err := svc.LatestInvoices()
	require.NoError(t, err)
	require.Len(t, latest, 5)
	assert.Equal(t, "Acme", latest[0].CustomerName)
	assert.Equal(t, "billing@acme.com", latest[0].Email)
	// Newest invoice carries amount 100006 cents.
	assert.Equal(t, "$1,000.06", latest[0].Amount)
}

func TestRevenueChart(t *testing.T) {
	svc, db := newTestService(t)

	rows := []models.Revenue{{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800}}
	require.NoError(t, db.Create(&rows).Error)

	revenue, err := svc.RevenueChart()
	require.NoError(t, err)
	assert.Len(t, revenue, 2)
}
