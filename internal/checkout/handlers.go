package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"craft-store/internal/cart"
	mw "craft-store/internal/http/middleware"
	"craft-store/internal/logger"
	"craft-store/internal/session"
)

// Handler exposes checkout over HTTP
type Handler struct {
	service  *Service
	carts    *cart.Manager
	sessions *session.Manager
}

// NewHandler creates a new checkout handler
func NewHandler(service *Service, carts *cart.Manager, sessions *session.Manager) *Handler {
	return &Handler{service: service, carts: carts, sessions: sessions}
}

type placeOrderRequest struct {
	Address       session.Address       `json:"address"`
	PaymentMethod session.PaymentMethod `json:"payment_method"`
}

// PlaceOrder handles POST /api/checkout
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	clientID := mw.ClientID(r.Context())
	eng := h.carts.Load(r.Context(), clientID)
	sess := h.sessions.Load(r.Context(), clientID)

	order, err := h.service.PlaceOrder(r.Context(), eng, sess, req.Address, req.PaymentMethod)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrNotAuthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrInvalidAddress), errors.Is(err, ErrInvalidPayment):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	default:
		logger.Errorf("PlaceOrder: %v", err)
		http.Error(w, "failed to place order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}
