package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"dijlah_store/internal/models"
	"dijlah_store/internal/repository"
	"dijlah_store/pkg/whatsapp"
)

// SkippedItem reports a cart entry that could not be fulfilled at checkout.
// Skipped items never block the order; they are surfaced instead of silently
// vanishing.
type SkippedItem struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Size        string `json:"size"`
}

type CheckoutInput struct {
	Name    string
	Phone   string
	Address string
}

type CheckoutResult struct {
	Order       *models.Order `json:"order"`
	Skipped     []SkippedItem `json:"skipped"`
	RedirectURL string        `json:"redirect_url"`
}

type CheckoutService interface {
	// Checkout converts the session cart into an order: one conditional
	// decrement per entry in cart order, one orders row, cart cleared, and
	// the merchant's WhatsApp deep link built from the order summary.
	Checkout(ctx context.Context, token string, input CheckoutInput) (*CheckoutResult, error)
}

type checkoutService struct {
	store       CartStore
	products    repository.ProductRepository
	orders      repository.OrderRepository
	whatsapp    *whatsapp.Client
	deliveryFee int
}

func NewCheckoutService(
	store CartStore,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	whatsappClient *whatsapp.Client,
	deliveryFee int,
) CheckoutService {
	return &checkoutService{
		store:       store,
		products:    products,
		orders:      orders,
		whatsapp:    whatsappClient,
		deliveryFee: deliveryFee,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, token string, input CheckoutInput) (*CheckoutResult, error) {
	entries, err := s.store.GetCart(ctx, token)
	if err != nil {
		return nil, err
	}

	lines := models.ProductLines{}
	skipped := []SkippedItem{}
	total := s.deliveryFee

	for _, entry := range entries {
		product, err := s.products.DecrementSize(entry.ProductID, entry.Size)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				// Deleted since it was added to the cart.
				continue
			}
			if errors.Is(err, repository.ErrSizeUnavailable) {
				name := s.productName(entry.ProductID)
				log.Printf("Warning: size %s unavailable for product %s, skipping line item", entry.Size, name)
				skipped = append(skipped, SkippedItem{
					ProductID:   entry.ProductID,
					ProductName: name,
					Size:        entry.Size,
				})
				continue
			}
			return nil, err
		}

		lines = append(lines, fmt.Sprintf("%s - قياس: %s (%d د.ع)", product.Name, entry.Size, product.NewPrice))
		total += product.NewPrice
	}

	order := &models.Order{
		Name:     input.Name,
		Phone:    input.Phone,
		Address:  input.Address,
		Products: lines,
		Total:    total,
		Status:   string(models.OrderPending),
	}
	if err := s.orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.store.ClearCart(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	link := s.whatsapp.OrderLink(whatsapp.OrderSummary{
		Name:     input.Name,
		Phone:    input.Phone,
		Address:  input.Address,
		Products: lines,
		Total:    total,
	})

	return &CheckoutResult{Order: order, Skipped: skipped, RedirectURL: link}, nil
}

func (s *checkoutService) productName(id uint) string {
	product, err := s.products.GetByID(id)
	if err != nil {
		return fmt.Sprintf("#%d", id)
	}
	return product.Name
}
