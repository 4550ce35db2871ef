package services

import (
	"sort"

	"dijlah_store/internal/models"
	"dijlah_store/internal/repository"
)

// ProductDetail is the storefront view of one product: full fields plus only
// the sizes that still have stock.
type ProductDetail struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	OldPrice    int              `json:"old_price"`
	NewPrice    int              `json:"new_price"`
	Images      models.ImageList `json:"images"`
	Sizes       []string         `json:"sizes"`
}

type CatalogService interface {
	ListAll() ([]models.Product, error)
	ListByCategory(name string) ([]models.Product, error)
	GetDetail(id uint) (*ProductDetail, error)
}

type catalogService struct {
	products repository.ProductRepository
}

func NewCatalogService(products repository.ProductRepository) CatalogService {
	return &catalogService{products: products}
}

func (s *catalogService) ListAll() ([]models.Product, error) {
	return s.products.GetAll()
}

func (s *catalogService) ListByCategory(name string) ([]models.Product, error) {
	return s.products.GetByCategory(name)
}

func (s *catalogService) GetDetail(id uint) (*ProductDetail, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}

	sizes := product.Sizes.Available()
	sort.Strings(sizes)

	return &ProductDetail{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		OldPrice:    product.OldPrice,
		NewPrice:    product.NewPrice,
		Images:      product.Images,
		Sizes:       sizes,
	}, nil
}
