// Package checkout turns the active cart into an order on the user's
// session. There is no payment processing; the chosen method is only
// recorded on the order.
package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"craft-store/internal/cart"
	"craft-store/internal/catalog"
	"craft-store/internal/logger"
	"craft-store/internal/session"
)

var (
	// ErrEmptyCart rejects checkout of a cart with no lines
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidAddress rejects a shipping address with empty fields
	ErrInvalidAddress = errors.New("all address fields are required")
	// ErrInvalidPayment rejects an unknown payment method
	ErrInvalidPayment = errors.New("unknown payment method")
)

// Service places orders. It snapshots catalog prices into the order so
// later catalog changes do not rewrite order history, unlike the live
// cart whose totals always track current prices.
type Service struct {
	catalog *catalog.Store
}

// NewService creates a checkout service over the catalog
func NewService(cs *catalog.Store) *Service {
	return &Service{catalog: cs}
}

// PlaceOrder validates the request, builds an order from the current
// cart state, appends it to the authenticated session and clears the
// cart. The caller must hold an authenticated session store.
func (s *Service) PlaceOrder(ctx context.Context, eng *cart.Engine, sess *session.Store, addr session.Address, method session.PaymentMethod) (session.Order, error) {
	if _, ok := sess.Current(); !ok {
		return session.Order{}, session.ErrNotAuthenticated
	}
	if err := validateAddress(addr); err != nil {
		return session.Order{}, err
	}
	switch method {
	case session.PayCard, session.PayCash, session.PayOnline:
	default:
		return session.Order{}, ErrInvalidPayment
	}

	state := eng.State()
	if len(state.Lines) == 0 {
		return session.Order{}, ErrEmptyCart
	}

	order := session.Order{
		ID:              uuid.New().String(),
		Date:            time.Now().UTC(),
		Status:          session.StatusProcessing,
		TotalPrice:      state.TotalPrice,
		ShippingAddress: addr,
		PaymentMethod:   method,
	}
	for _, l := range state.Lines {
		p, ok := s.catalog.ByID(l.ProductID)
		if !ok {
			continue // product left the catalog; it priced at 0 anyway
		}
		item := session.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Price:       p.Price,
			Quantity:    l.Quantity,
		}
		if len(p.Images) > 0 {
			item.Image = p.Images[0]
		}
		order.Items = append(order.Items, item)
	}

	if _, err := sess.AppendOrder(ctx, order); err != nil {
		return session.Order{}, err
	}
	// past this point the order is durably recorded; a failed cart
	// persist only leaves stale lines behind, not a lost order
	if _, err := eng.Clear(ctx); err != nil {
		logger.Warnf("checkout: cart clear after order %s: %v", order.ID, err)
	}
	return order, nil
}

func validateAddress(a session.Address) error {
	if a.FullName == "" || a.Street == "" || a.City == "" || a.PostalCode == "" || a.Phone == "" {
		return ErrInvalidAddress
	}
	return nil
}
