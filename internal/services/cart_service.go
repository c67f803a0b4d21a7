package services

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"
)

// Errors returned by the cart use cases.
var (
	ErrQuantityNotPositive = errors.New("Quantity must be greater than 0")
	ErrCartItemNotFound    = errors.New("Cart item not found")
)

// CartLine is a cart line projected for API output, with its product joined
// and the line total computed.
type CartLine struct {
	Product    models.Product `json:"product"`
	Quantity   int            `json:"quantity"`
	TotalPrice float64        `json:"totalPrice"`
}

// CartSummary is the full cart view. IsEmpty and TotalPrice are derived
// from the items on every read, never stored.
type CartSummary struct {
	Items      []CartLine `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
	IsEmpty    bool       `json:"isEmpty"`
}

// CartService handles business logic related to the cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client
}

// NewCartService creates a new CartService. The RabbitMQ client may be nil,
// in which case event publication is skipped.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// GetCart reads all cart lines with their products joined and projects them
// into a CartSummary.
func (s *CartService) GetCart() (*CartSummary, error) {
	items, err := s.cartRepo.ListAllWithProducts()
	if err != nil {
		return nil, err
	}

	summary := &CartSummary{
		Items: make([]CartLine, 0, len(items)),
	}
	for i := range items {
		item := &items[i]
		if item.Product == nil {
			// Orphaned line: the product row is gone. Skip it rather than
			// render a line the client cannot price.
			log.Printf("Cart item %s references missing product %s, skipping", item.ID, item.ProductID)
			continue
		}
		line := CartLine{
			Product:    *item.Product,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice(),
		}
		summary.Items = append(summary.Items, line)
		summary.TotalPrice += line.TotalPrice
	}
	summary.IsEmpty = len(summary.Items) == 0
	return summary, nil
}

// AddToCart puts a product in the cart with the given quantity. When the
// product already has a line its quantity is overwritten, not incremented.
// Quantity must be positive; there is no delete-on-zero shortcut, removal
// goes through RemoveFromCart. Returns the cart lines after the write.
func (s *CartService) AddToCart(productID string, quantity int) ([]models.CartItem, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, ErrProductIDRequired
	}
	if quantity <= 0 {
		return nil, ErrQuantityNotPositive
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if err := s.cartRepo.Upsert(productID, quantity); err != nil {
		return nil, err
	}

	s.publishEvent("cart.item_added", productID, quantity)

	return s.cartRepo.ListAll()
}

// RemoveFromCart deletes the cart line for a product. Returns the cart
// lines after the delete.
func (s *CartService) RemoveFromCart(productID string) ([]models.CartItem, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, ErrProductIDRequired
	}

	item, err := s.cartRepo.FindByProductID(productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	if err := s.cartRepo.Delete(item.ID); err != nil {
		return nil, err
	}

	s.publishEvent("cart.item_removed", productID, 0)

	return s.cartRepo.ListAll()
}

// publishEvent sends a best-effort cart event. Publication failures are
// logged and never fail the request.
func (s *CartService) publishEvent(event, productID string, quantity int) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"event":     event,
		"productId": productID,
		"quantity":  quantity,
	})
	if err != nil {
		log.Printf("Failed to marshal cart event: %v", err)
		return
	}
	if err := s.mqClient.PublishCartEvent(body); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", event, productID, err)
	}
}
