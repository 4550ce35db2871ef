package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrMalformedProductLines = errors.New("malformed products column")

// ProductLines is the denormalized snapshot of an order's line items, one
// human-readable string per line. It is not a foreign-key relation: editing a
// product later never changes a historical order.
type ProductLines []string

func (p ProductLines) Value() (driver.Value, error) {
	if p == nil {
		p = ProductLines{}
	}
	return json.Marshal(p)
}

func (p *ProductLines) Scan(value interface{}) error {
	if value == nil {
		*p = ProductLines{}
		return nil
	}
	data, err := columnBytes(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedProductLines, err)
	}
	if len(data) == 0 {
		*p = ProductLines{}
		return nil
	}
	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedProductLines, err)
	}
	return nil
}

type Order struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	Name      string       `json:"name" gorm:"not null"`
	Phone     string       `json:"phone" gorm:"not null"`
	Address   string       `json:"address" gorm:"not null"`
	Products  ProductLines `json:"products" gorm:"type:jsonb"`
	Total     int          `json:"total" gorm:"not null"`
	CreatedAt time.Time    `json:"created_at"`
	Status    string       `json:"status" gorm:"default:'pending'"` // pending, delivered
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderDelivered OrderStatus = "delivered"
)

// CartEntry is one selected product/size pair in a visitor's session cart.
// It lives in Redis only, never in the database.
type CartEntry struct {
	ProductID uint   `json:"product_id"`
	Size      string `json:"size"`
}
