package repository

import (
	"strings"

	"gorm.io/gorm"

	"billing-manager-backend/internal/models"
)

type ClientRepository struct {
	CRUDRepository[models.Client, *models.Client]
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{
		CRUDRepository: NewCRUDRepository[models.Client, *models.Client](db, "client"),
	}
}

// Search performs a case-insensitive substring match over name, company and
// email. An empty query returns every client.
func (r *ClientRepository) Search(query string) ([]models.Client, error) {
	if query == "" {
		return r.GetAll()
	}
	like := "%" + strings.ToLower(query) + "%"
	var clients []models.Client
	err := r.DB().
		Where("LOWER(name) LIKE ? OR LOWER(company) LIKE ? OR LOWER(email) LIKE ?", like, like, like).
		Find(&clients).Error
	return clients, err
}
