package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrMalformedImages = errors.New("malformed images column")
	ErrMalformedSizes  = errors.New("malformed sizes column")
)

// ImageList is the JSON-encoded ordered list of image filenames stored in the
// products.images column.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	data, err := columnBytes(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedImages, err)
	}
	if len(data) == 0 {
		*l = ImageList{}
		return nil
	}
	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedImages, err)
	}
	return nil
}

// SizeStock maps a size label to its remaining quantity. Quantities never go
// below zero; the only mutation is the checkout decrement.
type SizeStock map[string]int

func (s SizeStock) Value() (driver.Value, error) {
	if s == nil {
		s = SizeStock{}
	}
	return json.Marshal(s)
}

func (s *SizeStock) Scan(value interface{}) error {
	if value == nil {
		*s = SizeStock{}
		return nil
	}
	data, err := columnBytes(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSizes, err)
	}
	if len(data) == 0 {
		*s = SizeStock{}
		return nil
	}
	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSizes, err)
	}
	return nil
}

// Available returns the labels that still have stock.
func (s SizeStock) Available() []string {
	var labels []string
	for label, qty := range s {
		if qty > 0 {
			labels = append(labels, label)
		}
	}
	return labels
}

func columnBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", value)
	}
}

type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	OldPrice    int       `json:"old_price"`
	NewPrice    int       `json:"new_price" gorm:"not null"`
	Images      ImageList `json:"images" gorm:"type:jsonb"`
	Category    string    `json:"category"`
	Sizes       SizeStock `json:"sizes" gorm:"type:jsonb"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
