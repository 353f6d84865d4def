package models

import "github.com/shopspring/decimal"

// Service is a catalog entry. Selecting one in the invoice form copies its
// name and price into the line item at selection time; there is no live link
// afterwards.
type Service struct {
	ID          uint            `json:"Id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"index"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
}

func (s *Service) GetID() uint   { return s.ID }
func (s *Service) SetID(id uint) { s.ID = id }
