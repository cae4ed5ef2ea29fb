// Package fixtures supplies the baseline records the seed routine loads into
// a fresh environment. The provider is an injected dependency so tests can
// substitute their own datasets.
package fixtures

import "invoice-dashboard-backend/internal/models"

type Provider interface {
	Users() ([]models.User, error)
	Customers() ([]models.Customer, error)
	Invoices() ([]models.Invoice, error)
	Revenue() ([]models.Revenue, error)
}
