package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/constants"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/kvstore"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/logger"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/pricing"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/repository"
)

// cartTTL bounds how long an untouched session cart survives.
const cartTTL = 30 * 24 * time.Hour

// CartView is a cart plus its running totals.
type CartView struct {
	Items     []models.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Subtotal  models.Money      `json:"subtotal"`
	Tax       models.Money      `json:"tax"`
	Total     models.Money      `json:"total"`
}

// CartService owns the session cart: line merging, quantity rules and
// persistence to the session store.
type CartService struct {
	store     kvstore.Store
	sweetRepo repository.SweetRepository
	table     pricing.Table
}

// NewCartService builds a cart service. The table must carry the cart
// preview tax rate.
func NewCartService(store kvstore.Store, sweetRepo repository.SweetRepository, table pricing.Table) *CartService {
	return &CartService{
		store:     store,
		sweetRepo: sweetRepo,
		table:     table,
	}
}

// Get loads the cart with totals.
func (s *CartService) Get(ctx context.Context, sessionID string) (*CartView, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildView(cart), nil
}

// AddInput describes an add-to-cart request.
type AddInput struct {
	SweetID      uint   `json:"sweet_id" binding:"required"`
	VariantLabel string `json:"selected_quantity"`
	Quantity     int    `json:"quantity"`
}

// Add puts a sweet/variant line into the cart. Adding an existing
// combination merges quantities into the existing line. An omitted
// quantity defaults to 1; a negative quantity is a no-op.
func (s *CartService) Add(ctx context.Context, sessionID string, input AddInput) (*CartView, error) {
	if input.Quantity < 0 {
		cart, err := s.load(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		return s.buildView(cart), nil
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.VariantLabel == "" {
		input.VariantLabel = constants.VariantHalfKilo
	}
	if _, ok := s.table.Multipliers[input.VariantLabel]; !ok {
		return nil, ErrVariantInvalid
	}

	sweet, err := s.sweetRepo.GetByID(input.SweetID)
	if err != nil {
		return nil, err
	}
	if sweet == nil {
		return nil, ErrSweetNotFound
	}

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lineID := models.CartLineID(sweet.ID, input.VariantLabel)
	merged := false
	for i := range cart.Items {
		if cart.Items[i].ID == lineID {
			cart.Items[i].Quantity += input.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			ID:           lineID,
			SweetID:      sweet.ID,
			SweetName:    sweet.Name,
			Image:        sweet.Image,
			BasePrice:    sweet.PriceAmount,
			VariantLabel: input.VariantLabel,
			Quantity:     input.Quantity,
			UnitPrice:    s.table.PriceForVariant(sweet.PriceAmount, input.VariantLabel),
		})
	}

	s.persist(ctx, sessionID, cart)
	return s.buildView(cart), nil
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the
// line; an absent line id leaves the cart untouched.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*CartView, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range cart.Items {
		if cart.Items[i].ID == lineID {
			index = i
			break
		}
	}
	if index < 0 {
		return s.buildView(cart), nil
	}

	if quantity <= 0 {
		cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)
	} else {
		cart.Items[index].Quantity = quantity
	}

	s.persist(ctx, sessionID, cart)
	return s.buildView(cart), nil
}

// Remove deletes a line. Removing an absent id is a no-op, so the call
// is safe to repeat.
func (s *CartService) Remove(ctx context.Context, sessionID, lineID string) (*CartView, error) {
	return s.UpdateQuantity(ctx, sessionID, lineID, 0)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Del(ctx, sessionID, constants.StoreKeyCart); err != nil {
		logger.Warnw("cart_clear_failed", "session_id", sessionID, "error", err)
	}
	return nil
}

// Load returns the raw cart for checkout.
func (s *CartService) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	return s.load(ctx, sessionID)
}

func (s *CartService) load(ctx context.Context, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	found, err := s.store.GetJSON(ctx, sessionID, constants.StoreKeyCart, &cart)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !found {
		return &models.Cart{Items: []models.CartItem{}}, nil
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

// persist writes the cart back. Store failures degrade to in-memory
// state for this request instead of failing the cart operation.
func (s *CartService) persist(ctx context.Context, sessionID string, cart *models.Cart) {
	if err := s.store.SetJSON(ctx, sessionID, constants.StoreKeyCart, cart, cartTTL); err != nil {
		logger.Warnw("cart_persist_failed", "session_id", sessionID, "error", err)
	}
}

func (s *CartService) buildView(cart *models.Cart) *CartView {
	lines := make([]pricing.Line, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, pricing.Line{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
	}
	totals := s.table.ComputeTotals(lines)
	return &CartView{
		Items:     cart.Items,
		ItemCount: cart.ItemCount(),
		Subtotal:  totals.Subtotal,
		Tax:       totals.Tax,
		Total:     totals.Total,
	}
}
