package repository

import (
	"errors"

	"gorm.io/gorm"

	"billing-manager-backend/internal/models"
)

// CRUDRepository is the one storage pattern shared by every collection: records
// get sequential integer Ids (max existing + 1), updates are full replaces that
// keep the Id, and a missing Id surfaces as models.NotFoundError.
type CRUDRepository[T any, PT interface {
	*T
	models.Entity
}] struct {
	db       *gorm.DB
	resource string
}

func NewCRUDRepository[T any, PT interface {
	*T
	models.Entity
}](db *gorm.DB, resource string) CRUDRepository[T, PT] {
	return CRUDRepository[T, PT]{db: db, resource: resource}
}

// Expose DB if needed
func (r *CRUDRepository[T, PT]) DB() *gorm.DB {
	return r.db
}

func (r *CRUDRepository[T, PT]) GetAll() ([]T, error) {
	var records []T
	err := r.db.Find(&records).Error
	return records, err
}

func (r *CRUDRepository[T, PT]) GetByID(id uint) (PT, error) {
	record := PT(new(T))
	if err := r.db.First(record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: r.resource, ID: id}
		}
		return nil, err
	}
	return record, nil
}

// Create assigns Id = max(existing Ids, 0) + 1 before inserting.
func (r *CRUDRepository[T, PT]) Create(record PT) error {
	var maxID uint
	if err := r.db.Model(new(T)).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return err
	}
	record.SetID(maxID + 1)
	return r.db.Create(record).Error
}

// Update is a full-record replace that preserves the Id.
func (r *CRUDRepository[T, PT]) Update(id uint, record PT) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	record.SetID(id)
	return r.db.Save(record).Error
}

func (r *CRUDRepository[T, PT]) Delete(id uint) error {
	result := r.db.Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &models.NotFoundError{Resource: r.resource, ID: id}
	}
	return nil
}
