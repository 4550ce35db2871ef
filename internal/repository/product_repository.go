package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dijlah_store/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSizeUnavailable = errors.New("size unavailable")
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetAll() ([]models.Product, error)
	GetByCategory(name string) ([]models.Product, error)
	// DecrementSize takes one unit of the given size if any remain, checked
	// and written under a row lock in a single transaction. It returns
	// ErrSizeUnavailable when the size is absent or out of stock, leaving the
	// row untouched.
	DecrementSize(id uint, size string) (*models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Find(&products).Error
	return products, err
}

// GetByCategory matches by substring, not equality, so the fixed menu names
// can hit looser category values ("جاكيتات" matches "جاكيتات شتوية").
func (r *productRepository) GetByCategory(name string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("category LIKE ?", "%"+name+"%").Find(&products).Error
	return products, err
}

func (r *productRepository) DecrementSize(id uint, size string) (*models.Product, error) {
	var product models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		if product.Sizes[size] <= 0 {
			return ErrSizeUnavailable
		}
		product.Sizes[size]--
		return tx.Model(&models.Product{}).Where("id = ?", id).Update("sizes", product.Sizes).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}
