package models

type Client struct {
	ID      uint   `json:"Id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"index"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (c *Client) GetID() uint   { return c.ID }
func (c *Client) SetID(id uint) { c.ID = id }
