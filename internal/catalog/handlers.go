package catalog

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"craft-store/internal/auth"
	"craft-store/internal/logger"

	"github.com/gorilla/mux"
)

// Handler handles HTTP requests for catalog operations
type Handler struct {
	store *Store
	db    *sql.DB // nil when the catalog is fixture-backed
}

// NewHandler creates a new catalog handler
func NewHandler(store *Store, db *sql.DB) *Handler {
	return &Handler{store: store, db: db}
}

// ListProducts handles GET /api/products with the browse pipeline:
// search or category selection, then price/brand filter, then sort.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var products []Product
	if search := q.Get("search"); search != "" {
		products = h.store.Search(search)
	} else {
		products = h.store.ByCategory(q.Get("category"))
	}

	var pr PriceRange
	pr.Min, _ = strconv.ParseFloat(q.Get("minPrice"), 64)
	pr.Max, _ = strconv.ParseFloat(q.Get("maxPrice"), 64)
	products = Filter(products, pr, q["brand"])
	products = Sort(products, SortKey(q.Get("sort")))

	writeJSON(w, http.StatusOK, ProductListResponse{
		Products: products,
		Total:    len(products),
	})
}

// GetProduct handles GET /api/products/{id}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	product, ok := h.store.ByID(id)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// GetRelated handles GET /api/products/{id}/related
func (h *Handler) GetRelated(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	product, ok := h.store.ByID(id)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	related := h.store.Related(product, limit)
	writeJSON(w, http.StatusOK, ProductListResponse{Products: related, Total: len(related)})
}

// ListPopular handles GET /api/products/popular
func (h *Handler) ListPopular(w http.ResponseWriter, _ *http.Request) {
	ps := h.store.Popular()
	writeJSON(w, http.StatusOK, ProductListResponse{Products: ps, Total: len(ps)})
}

// ListNew handles GET /api/products/new
func (h *Handler) ListNew(w http.ResponseWriter, _ *http.Request) {
	ps := h.store.New()
	writeJSON(w, http.StatusOK, ProductListResponse{Products: ps, Total: len(ps)})
}

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Categories())
}

// ListBrands handles GET /api/brands
func (h *Handler) ListBrands(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Brands())
}

// Reload handles POST /api/catalog/reload (admin only): re-reads the
// corpus from Postgres and swaps it in.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		http.Error(w, "catalog is fixture-backed, nothing to reload", http.StatusConflict)
		return
	}

	ps, err := LoadFromDB(r.Context(), h.db)
	if err != nil {
		logger.Errorf("catalog reload: %v", err)
		http.Error(w, "failed to reload catalog", http.StatusInternalServerError)
		return
	}
	h.store.Replace(ps)
	logger.Infof("catalog reloaded: %d products", len(ps))
	writeJSON(w, http.StatusOK, map[string]int{"products": len(ps)})
}

// RequireAdmin is middleware that requires a valid JWT token with admin role
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.GetBearerToken(r)
		if tokenStr == "" {
			logger.Debugf("RequireAdmin: no bearer token provided")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			logger.Debugf("RequireAdmin: JWT parse error: %v", err)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if !auth.HasRole(claims.Roles, "admin") {
			logger.Debugf("RequireAdmin: user lacks admin role")
			http.Error(w, "forbidden - admin role required", http.StatusForbidden)
			return
		}

		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
