package repository

import (
	"gorm.io/gorm"

	"dijlah_store/internal/models"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetAllNewestFirst() ([]models.Order, error)
	MarkDelivered(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetAllNewestFirst() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) MarkDelivered(id uint) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).
		Update("status", string(models.OrderDelivered)).Error
}
