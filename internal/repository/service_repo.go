package repository

import (
	"strings"

	"gorm.io/gorm"

	"billing-manager-backend/internal/models"
)

type ServiceRepository struct {
	CRUDRepository[models.Service, *models.Service]
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{
		CRUDRepository: NewCRUDRepository[models.Service, *models.Service](db, "service"),
	}
}

// Search performs a case-insensitive substring match over name and description.
func (r *ServiceRepository) Search(query string) ([]models.Service, error) {
	if query == "" {
		return r.GetAll()
	}
	like := "%" + strings.ToLower(query) + "%"
	var services []models.Service
	err := r.DB().
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like).
		Find(&services).Error
	return services, err
}
