package cart

import (
	"context"
	"errors"
	"strings"
	"sync"

	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/infrastructure/snapshot"

	"github.com/rs/zerolog/log"
)

var (
	ErrItemIDRequired   = errors.New("cart item id is required")
	ErrInvalidPrice     = errors.New("price must not be negative")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// Cart is one owner's parts cart. It is persisted as a bare JSON array under the "cart" key.
type Cart struct {
	owner   string
	persist snapshot.Persister

	mu    sync.Mutex
	items []domain.CartItem
}

// Open restores the owner's cart. A failed restore is logged and yields an empty cart.
func Open(ctx context.Context, owner string, p snapshot.Persister) *Cart {
	c := &Cart{owner: owner, persist: p}
	var items []domain.CartItem
	if _, err := p.Restore(ctx, snapshot.NamespaceCart, owner, &items); err != nil {
		log.Error().Err(err).Str("owner", owner).Msg("Failed to restore cart")
		return c
	}
	c.items = items
	return c
}

func (c *Cart) snapshot() []domain.CartItem {
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) save() {
	c.persist.Submit(snapshot.NamespaceCart, c.owner, c.snapshot())
}

// Add puts item in the cart with quantity 1, or increments the quantity when the id is already there.
func (c *Cart) Add(item domain.CartItem) (domain.CartItem, error) {
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" {
		return domain.CartItem{}, ErrItemIDRequired
	}
	if item.Price < 0 || item.Shipping.Cost < 0 {
		return domain.CartItem{}, ErrInvalidPrice
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			c.save()
			return c.items[i], nil
		}
	}
	item.Quantity = 1
	c.items = append(c.items, item)
	c.save()
	return item, nil
}

func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(id)
}

func (c *Cart) remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.save()
			return
		}
	}
}

// UpdateQuantity sets the quantity of an item. A quantity of zero or less removes it.
func (c *Cart) UpdateQuantity(id string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity <= 0 {
		c.remove(id)
		return nil
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			c.save()
			return nil
		}
	}
	return ErrCartItemNotFound
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.save()
}

func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Summary is the cart with its derived totals.
type Summary struct {
	Items         []domain.CartItem `json:"items"`
	TotalPrice    float64           `json:"totalPrice"`
	TotalShipping float64           `json:"totalShipping"`
	ItemCount     int               `json:"itemCount"`
}

func (c *Cart) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Summary{
		Items:         c.snapshot(),
		TotalPrice:    totalPrice(c.items),
		TotalShipping: totalShipping(c.items),
		ItemCount:     itemCount(c.items),
	}
}

func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalPrice(c.items)
}

// TotalShipping charges each seller once, using the shipping cost of that seller's first item.
func (c *Cart) TotalShipping() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalShipping(c.items)
}

func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return itemCount(c.items)
}

func totalPrice(items []domain.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func totalShipping(items []domain.CartItem) float64 {
	seen := make(map[string]bool, len(items))
	var total float64
	for _, it := range items {
		if seen[it.Seller.Name] {
			continue
		}
		seen[it.Seller.Name] = true
		total += it.Shipping.Cost
	}
	return total
}

func itemCount(items []domain.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
