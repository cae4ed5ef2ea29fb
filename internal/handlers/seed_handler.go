package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-dashboard-backend/internal/seed"
)

type SeedHandler struct {
	seeder *seed.Seeder
}

func NewSeedHandler(s *seed.Seeder) *SeedHandler {
	return &SeedHandler{seeder: s}
}

// Seed provisions the tables and loads the fixture rows. Safe to hit more
// than once: existing rows are skipped.
func (h *SeedHandler) Seed(c *gin.Context) {
	if err := h.seeder.Run(c.Request.Context()); err != nil {
		log.Println("seeding failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database seeded successfully"})
}
