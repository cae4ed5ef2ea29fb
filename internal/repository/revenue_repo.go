package repository

import (
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

func (r *RevenueRepository) GetAll() ([]models.Revenue, error) {
	var revenue []models.Revenue
	err := r.db.Find(&revenue).Error
	return revenue, err
}
