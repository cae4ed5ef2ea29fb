package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-dashboard-backend/internal/repository"
)

type CustomerHandler struct {
	repo *repository.CustomerRepository
}

func NewCustomerHandler(repo *repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

// List serves the customers table with invoice aggregates.
func (h *CustomerHandler) List(c *gin.Context) {
	summaries, err := h.repo.FindFiltered(c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summaries})
}

// All serves the plain customer list used by select dropdowns.
func (h *CustomerHandler) All(c *gin.Context) {
	customers, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customers})
}
