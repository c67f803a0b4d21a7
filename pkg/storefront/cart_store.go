package storefront

import (
	"context"
	"errors"
	"sync"
)

// CartViewItem is one line of the locally cached cart view.
type CartViewItem struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

// CartView is a snapshot of the cached cart. Stale is set when the view
// holds an optimistic local mutation that has not been confirmed by the
// server yet; the next successful Refresh clears it.
type CartView struct {
	Items     []CartViewItem
	Total     float64
	ItemCount int
	Stale     bool
}

// CartStore is a read-through cache of the server cart. Every mutating call
// goes to the server first and the view is refreshed from the server's
// response, so the server stays the single source of truth.
//
// The one exception is AddItem when the server is unreachable: the item is
// applied to the local view as an optimistic, unsynced mutation and the view
// is marked Stale until a later Refresh reconciles it.
type CartStore struct {
	client *Client

	mu        sync.Mutex
	items     []CartViewItem
	staleView bool
}

// NewCartStore creates a CartStore backed by the given API client.
func NewCartStore(client *Client) *CartStore {
	return &CartStore{
		client: client,
	}
}

// Refresh replaces the cached view with the server cart.
func (s *CartStore) Refresh(ctx context.Context) error {
	cart, err := s.client.Cart(ctx)
	if err != nil {
		return err
	}

	items := make([]CartViewItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartViewItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
		})
	}

	s.mu.Lock()
	s.items = items
	s.staleView = false
	s.mu.Unlock()
	return nil
}

// AddItem adds one unit of the product to the cart. The server overwrites
// quantities, so the store sends the current local quantity plus one. A
// rejection from the server (validation, unknown product) is returned as an
// *APIError; a transport failure falls back to an optimistic local add.
func (s *CartStore) AddItem(ctx context.Context, product Product) error {
	s.mu.Lock()
	quantity := s.quantityLocked(product.ID) + 1
	s.mu.Unlock()

	err := s.client.AddToCart(ctx, product.ID, quantity)
	if err == nil {
		return s.Refresh(ctx)
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return err
	}

	// Server unreachable: apply the add locally and flag the view as
	// unsynced.
	s.mu.Lock()
	s.applyQuantityLocked(product, quantity)
	s.staleView = true
	s.mu.Unlock()
	return nil
}

// SetQuantity sets the cart quantity for a product. A quantity of zero or
// less removes the line. Unlike AddItem there is no offline fallback;
// failures are returned to the caller.
func (s *CartStore) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}
	if err := s.client.AddToCart(ctx, productID, quantity); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// RemoveItem removes the cart line for a product.
func (s *CartStore) RemoveItem(ctx context.Context, productID string) error {
	if err := s.client.RemoveFromCart(ctx, productID); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Clear removes every line from the cart, one product at a time; the API
// has no bulk clear.
func (s *CartStore) Clear(ctx context.Context) error {
	for _, item := range s.View().Items {
		if err := s.client.RemoveFromCart(ctx, item.ProductID); err != nil {
			return err
		}
	}
	return s.Refresh(ctx)
}

// View returns a snapshot of the cached cart with derived totals.
func (s *CartStore) View() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := CartView{
		Items: make([]CartViewItem, len(s.items)),
		Stale: s.staleView,
	}
	copy(view.Items, s.items)
	for _, item := range s.items {
		view.Total += item.Price * float64(item.Quantity)
		view.ItemCount += item.Quantity
	}
	return view
}

// quantityLocked returns the cached quantity for a product, 0 when absent.
// Caller must hold mu.
func (s *CartStore) quantityLocked(productID string) int {
	for _, item := range s.items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// applyQuantityLocked sets the local quantity for a product, appending a
// line when none exists. Caller must hold mu.
func (s *CartStore) applyQuantityLocked(product Product, quantity int) {
	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity = quantity
			return
		}
	}
	s.items = append(s.items, CartViewItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	})
}
