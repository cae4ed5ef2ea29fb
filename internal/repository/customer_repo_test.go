package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-dashboard-backend/internal/models"
)

func TestCustomerRepository_FindFiltered_Aggregates(t *testing.T) {
	db := openTestDB(t)
	acme, globex := seedInvoiceFixtures(t, db)
	repo := NewCustomerRepository(db)

	summaries, err := repo.FindFiltered("")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := map[string]models.CustomerSummary{}
	for _, s := range summaries {
		byID[s.ID.String()] = s
	}

	acmeSummary := byID[acme.ID.String()]
	assert.Equal(t, int64(8), acmeSummary.TotalInvoices)
	// i%2==0 rows are paid: amounts 1000, 3000, 5000, 7000.
	assert.Equal(t, int64(16000), acmeSummary.TotalPaid)
	assert.Equal(t, int64(20000), acmeSummary.TotalPending)

	globexSummary := byID[globex.ID.String()]
	assert.Equal(t, int64(1), globexSummary.TotalInvoices)
	assert.Equal(t, int64(9999), globexSummary.TotalPending)
	assert.Equal(t, int64(0), globexSummary.TotalPaid)
}

func TestCustomerRepository_FindFiltered_Query(t *testing.T) {
	db := openTestDB(t)
	acme, _ := seedInvoiceFixtures(t, db)
	repo := NewCustomerRepository(db)

	summaries, err := repo.FindFiltered("ACME")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, acme.ID, summaries[0].ID)
}

func TestCustomerRepository_IncludesCustomersWithoutInvoices(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)

	require.NoError(t, db.Create(&models.Customer{Name: "Initech", Email: "ap@initech.com"}).Error)

	summaries, err := repo.FindFiltered("initech")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(0), summaries[0].TotalInvoices)
	assert.Equal(t, int64(0), summaries[0].TotalPending)
}

func TestCustomerRepository_GetAll_Ordered(t *testing.T) {
	db := openTestDB(t)
	seedInvoiceFixtures(t, db)
	repo := NewCustomerRepository(db)

	customers, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Acme Corp", customers[0].Name)
	assert.Equal(t, "Globex", customers[1].Name)
}
