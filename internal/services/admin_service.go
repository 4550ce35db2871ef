package services

import (
	"fmt"
	"strconv"
	"strings"

	"dijlah_store/internal/models"
	"dijlah_store/internal/repository"
)

// ProductInput carries the admin add-product form fields before parsing.
// Images is a comma-separated filename list; Sizes holds one "label:quantity"
// pair per selected size (a bare label defaults to quantity 0).
type ProductInput struct {
	Name        string
	Description string
	OldPrice    int
	NewPrice    int
	Images      string
	Category    string
	Sizes       []string
}

// ProductSummary is the admin listing row: no stock, no images.
type ProductSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	NewPrice int    `json:"new_price"`
}

type AdminService interface {
	CreateProduct(input ProductInput) (*models.Product, error)
	ListProducts() ([]ProductSummary, error)
	ListOrders() ([]models.Order, error)
	MarkDelivered(orderID uint) error
}

type adminService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
}

func NewAdminService(products repository.ProductRepository, orders repository.OrderRepository) AdminService {
	return &adminService{products: products, orders: orders}
}

func (s *adminService) CreateProduct(input ProductInput) (*models.Product, error) {
	sizes, err := ParseSizeStock(input.Sizes)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		OldPrice:    input.OldPrice,
		NewPrice:    input.NewPrice,
		Images:      splitImages(input.Images),
		Category:    input.Category,
		Sizes:       sizes,
	}
	if err := s.products.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *adminService) ListProducts() ([]ProductSummary, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, ProductSummary{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			NewPrice: p.NewPrice,
		})
	}
	return summaries, nil
}

func (s *adminService) ListOrders() ([]models.Order, error) {
	return s.orders.GetAllNewestFirst()
}

func (s *adminService) MarkDelivered(orderID uint) error {
	return s.orders.MarkDelivered(orderID)
}

func splitImages(raw string) models.ImageList {
	images := models.ImageList{}
	for _, name := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			images = append(images, trimmed)
		}
	}
	return images
}

// ParseSizeStock turns "label:quantity" pairs into the stored stock map. A
// pair without a quantity gets 0 so the size shows up only after restocking.
func ParseSizeStock(pairs []string) (models.SizeStock, error) {
	sizes := models.SizeStock{}
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		label, qtyStr, found := strings.Cut(pair, ":")
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, fmt.Errorf("invalid size entry %q", pair)
		}
		if !found {
			sizes[label] = 0
			continue
		}
		qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
		if err != nil || qty < 0 {
			return nil, fmt.Errorf("invalid quantity in size entry %q", pair)
		}
		sizes[label] = qty
	}
	return sizes, nil
}
