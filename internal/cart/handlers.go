package cart

import (
	"encoding/json"
	"net/http"
	"strconv"

	"craft-store/internal/catalog"
	mw "craft-store/internal/http/middleware"
	"craft-store/internal/logger"

	"github.com/gorilla/mux"
)

// Handler exposes the cart engine over HTTP, one cart per client id
type Handler struct {
	carts   *Manager
	catalog *catalog.Store
}

// NewHandler creates a new cart handler
func NewHandler(carts *Manager, cs *catalog.Store) *Handler {
	return &Handler{carts: carts, catalog: cs}
}

func (h *Handler) engine(r *http.Request) *Engine {
	return h.carts.Load(r.Context(), mw.ClientID(r.Context()))
}

// GetCart handles GET /api/cart
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine(r).State())
}

// addItemRequest is the payload for adding a product to the cart
type addItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// AddItem handles POST /api/cart/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, ok := h.catalog.ByID(req.ProductID)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	state, err := h.engine(r).Add(r.Context(), product, req.Quantity)
	if err != nil {
		logger.Errorf("AddItem persist: %v", err)
		http.Error(w, "failed to save cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// updateItemRequest is the payload for an absolute quantity update
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem handles PUT /api/cart/items/{productId}
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(mux.Vars(r)["productId"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := h.engine(r).SetQuantity(r.Context(), productID, req.Quantity)
	if err != nil {
		logger.Errorf("UpdateItem persist: %v", err)
		http.Error(w, "failed to save cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// RemoveItem handles DELETE /api/cart/items/{productId}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(mux.Vars(r)["productId"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	state, err := h.engine(r).Remove(r.Context(), productID)
	if err != nil {
		logger.Errorf("RemoveItem persist: %v", err)
		http.Error(w, "failed to save cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// ClearCart handles DELETE /api/cart
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	state, err := h.engine(r).Clear(r.Context())
	if err != nil {
		logger.Errorf("ClearCart persist: %v", err)
		http.Error(w, "failed to save cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
