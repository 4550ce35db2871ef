package services

import (
	"context"
	"errors"
	"time"

	"dijlah_store/internal/models"
	"dijlah_store/internal/repository"
)

// CartStore is the session-scoped cart storage, keyed by the visitor's session
// token. The Redis client implements it.
type CartStore interface {
	GetCart(ctx context.Context, token string) ([]models.CartEntry, error)
	SetCart(ctx context.Context, token string, entries []models.CartEntry, ttl time.Duration) error
	ClearCart(ctx context.Context, token string) error
}

// CartLine is one rendered cart row with the product's current price.
type CartLine struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	NewPrice  int    `json:"new_price"`
	Size      string `json:"size"`
}

type CartView struct {
	Items       []CartLine `json:"items"`
	Subtotal    int        `json:"subtotal"`
	DeliveryFee int        `json:"delivery_fee"`
	Total       int        `json:"total"`
}

type CartService interface {
	// Add appends the pair unconditionally; the product and size are not
	// checked until the cart or checkout is rendered.
	Add(ctx context.Context, token string, productID uint, size string) error
	// Remove drops every entry for that product id, regardless of size.
	Remove(ctx context.Context, token string, productID uint) error
	// View prices the cart against the current products. Entries whose
	// product no longer exists are dropped from the view and the totals.
	View(ctx context.Context, token string) (*CartView, error)
}

type cartService struct {
	store       CartStore
	products    repository.ProductRepository
	deliveryFee int
	ttl         time.Duration
}

func NewCartService(store CartStore, products repository.ProductRepository, deliveryFee int, ttl time.Duration) CartService {
	return &cartService{store: store, products: products, deliveryFee: deliveryFee, ttl: ttl}
}

func (s *cartService) Add(ctx context.Context, token string, productID uint, size string) error {
	entries, err := s.store.GetCart(ctx, token)
	if err != nil {
		return err
	}
	entries = append(entries, models.CartEntry{ProductID: productID, Size: size})
	return s.store.SetCart(ctx, token, entries, s.ttl)
}

func (s *cartService) Remove(ctx context.Context, token string, productID uint) error {
	entries, err := s.store.GetCart(ctx, token)
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, entry := range entries {
		if entry.ProductID != productID {
			kept = append(kept, entry)
		}
	}
	return s.store.SetCart(ctx, token, kept, s.ttl)
}

func (s *cartService) View(ctx context.Context, token string) (*CartView, error) {
	entries, err := s.store.GetCart(ctx, token)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: []CartLine{}, DeliveryFee: s.deliveryFee}
	for _, entry := range entries {
		product, err := s.products.GetByID(entry.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		view.Items = append(view.Items, CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			NewPrice:  product.NewPrice,
			Size:      entry.Size,
		})
		view.Subtotal += product.NewPrice
	}
	view.Total = view.Subtotal + view.DeliveryFee
	return view, nil
}
