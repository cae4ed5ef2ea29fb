package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
)

type InvoiceHandler struct {
	repo *repository.InvoiceRepository
}

func NewInvoiceHandler(repo *repository.InvoiceRepository) *InvoiceHandler {
	return &InvoiceHandler{repo: repo}
}

// List serves the filtered, paginated invoices table.
func (h *InvoiceHandler) List(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	rows, err := h.repo.FindFiltered(query, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows, "page": page})
}

func (h *InvoiceHandler) Pages(c *gin.Context) {
	pages, err := h.repo.CountPages(c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_pages": pages})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	invoice, err := h.repo.GetByID(id.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, invoice)
}

type invoicePayload struct {
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"` // cents
	Status     string `json:"status"`
	Date       string `json:"date"` // "yyyy-mm-dd"
}

func (p *invoicePayload) parse() (uuid.UUID, time.Time, error) {
	customerID, err := uuid.Parse(p.CustomerID)
	if err != nil {
		return uuid.Nil, time.Time{}, errors.New("invalid customer ID")
	}
	if p.Amount <= 0 {
		return uuid.Nil, time.Time{}, errors.New("amount must be positive")
	}
	if !models.ValidInvoiceStatus(p.Status) {
		return uuid.Nil, time.Time{}, errors.New("status must be pending or paid")
	}
	date, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return uuid.Nil, time.Time{}, errors.New("invalid date format, expected yyyy-mm-dd")
	}
	return customerID, date, nil
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload invoicePayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	customerID, date, err := payload.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice := &models.Invoice{
		ID:         uuid.New(),
		CustomerID: customerID,
		Amount:     payload.Amount,
		Status:     payload.Status,
		Date:       date,
		CreatedAt:  time.Now(),
	}
	if err := h.repo.Create(invoice); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice created", "invoice": invoice})
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	var payload invoicePayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	customerID, date, err := payload.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.repo.GetByID(id.String()); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}

	invoice := &models.Invoice{
		ID:         id,
		CustomerID: customerID,
		Amount:     payload.Amount,
		Status:     payload.Status,
		Date:       date,
	}
	if err := h.repo.Update(invoice); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice updated", "invoice": invoice})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	if err := h.repo.Delete(id.String()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}
