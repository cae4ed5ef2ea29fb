package fixtures

import (
	"time"

	"github.com/google/uuid"

	"invoice-dashboard-backend/internal/models"
)

// Static serves the hardcoded demo dataset. IDs are fixed so re-seeding hits
// the conflict-skip path instead of piling up duplicates.
type Static struct{}

func NewStatic() Static { return Static{} }

var (
	customerEvil   = uuid.MustParse("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa")
	customerLee    = uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a")
	customerHector = uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a")
	customerSteph  = uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2")
	customerMicah  = uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9")
	customerEmil   = uuid.MustParse("13d07535-c59e-4157-a011-f8d2ef4e0cbb")
)

func (Static) Users() ([]models.User, error) {
	return []models.User{
		{
			ID:       uuid.MustParse("410544b2-4001-4271-9855-fec4b6a6442a"),
			Name:     "User",
			Email:    "user@nextmail.com",
			Password: "123456", // hashed by the seeder before insert
		},
	}, nil
}

func (Static) Customers() ([]models.Customer, error) {
	return []models.Customer{
		{ID: customerEvil, Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{ID: customerLee, Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
		{ID: customerHector, Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
		{ID: customerSteph, Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
		{ID: customerMicah, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
		{ID: customerEmil, Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
	}, nil
}

func (Static) Invoices() ([]models.Invoice, error) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []models.Invoice{
		{ID: uuid.MustParse("5c6285e1-5a41-43e5-b6e0-7ab9b7b1c8a1"), CustomerID: customerEvil, Amount: 15795, Status: models.InvoiceStatusPending, Date: day(2022, time.December, 6)},
		{ID: uuid.MustParse("febc1b6e-9c27-4b04-9e6d-44b4c3de1a02"), CustomerID: customerLee, Amount: 20348, Status: models.InvoiceStatusPending, Date: day(2022, time.November, 14)},
		{ID: uuid.MustParse("c61ba3ec-59e0-4e3f-b0a2-2e54d4a0cf03"), CustomerID: customerSteph, Amount: 3040, Status: models.InvoiceStatusPaid, Date: day(2022, time.October, 29)},
		{ID: uuid.MustParse("0a2b1c3d-4e5f-4a6b-8c7d-9e0f1a2b3c04"), CustomerID: customerHector, Amount: 44800, Status: models.InvoiceStatusPaid, Date: day(2023, time.September, 10)},
		{ID: uuid.MustParse("1b2c3d4e-5f6a-4b7c-8d9e-0f1a2b3c4d05"), CustomerID: customerMicah, Amount: 34577, Status: models.InvoiceStatusPending, Date: day(2023, time.August, 5)},
		{ID: uuid.MustParse("2c3d4e5f-6a7b-4c8d-9e0f-1a2b3c4d5e06"), CustomerID: customerEmil, Amount: 54246, Status: models.InvoiceStatusPending, Date: day(2023, time.July, 16)},
		{ID: uuid.MustParse("3d4e5f6a-7b8c-4d9e-0f1a-2b3c4d5e6f07"), CustomerID: customerEvil, Amount: 666, Status: models.InvoiceStatusPending, Date: day(2023, time.June, 27)},
		{ID: uuid.MustParse("4e5f6a7b-8c9d-4e0f-1a2b-3c4d5e6f7a08"), CustomerID: customerHector, Amount: 32545, Status: models.InvoiceStatusPaid, Date: day(2023, time.June, 9)},
		{ID: uuid.MustParse("5f6a7b8c-9d0e-4f1a-2b3c-4d5e6f7a8b09"), CustomerID: customerMicah, Amount: 1250, Status: models.InvoiceStatusPaid, Date: day(2023, time.June, 17)},
		{ID: uuid.MustParse("6a7b8c9d-0e1f-4a2b-3c4d-5e6f7a8b9c10"), CustomerID: customerEmil, Amount: 8546, Status: models.InvoiceStatusPaid, Date: day(2023, time.June, 7)},
		{ID: uuid.MustParse("7b8c9d0e-1f2a-4b3c-4d5e-6f7a8b9c0d11"), CustomerID: customerLee, Amount: 500, Status: models.InvoiceStatusPaid, Date: day(2023, time.August, 19)},
		{ID: uuid.MustParse("8c9d0e1f-2a3b-4c4d-5e6f-7a8b9c0d1e12"), CustomerID: customerMicah, Amount: 8945, Status: models.InvoiceStatusPaid, Date: day(2023, time.June, 3)},
		{ID: uuid.MustParse("9d0e1f2a-3b4c-4d5e-6f7a-8b9c0d1e2f13"), CustomerID: customerSteph, Amount: 1000, Status: models.InvoiceStatusPaid, Date: day(2022, time.June, 5)},
	}, nil
}

func (Static) Revenue() ([]models.Revenue, error) {
	return []models.Revenue{
		{Month: "Jan", Revenue: 2000},
		{Month: "Feb", Revenue: 1800},
		{Month: "Mar", Revenue: 2200},
		{Month: "Apr", Revenue: 2500},
		{Month: "May", Revenue: 2300},
		{Month: "Jun", Revenue: 3200},
		{Month: "Jul", Revenue: 3500},
		{Month: "Aug", Revenue: 3700},
		{Month: "Sep", Revenue: 2500},
		{Month: "Oct", Revenue: 2800},
		{Month: "Nov", Revenue: 3000},
		{Month: "Dec", Revenue: 4800},
	}, nil
}
