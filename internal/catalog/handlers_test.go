package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *mux.Router {
	h := NewHandler(testStore(), nil)
	r := mux.NewRouter()
	r.HandleFunc("/api/products", h.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/api/products/popular", h.ListPopular).Methods(http.MethodGet)
	r.HandleFunc("/api/products/new", h.ListNew).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id:[0-9]+}", h.GetProduct).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id:[0-9]+}/related", h.GetRelated).Methods(http.MethodGet)
	r.HandleFunc("/api/categories", h.ListCategories).Methods(http.MethodGet)
	r.HandleFunc("/api/brands", h.ListBrands).Methods(http.MethodGet)
	r.HandleFunc("/api/catalog/reload", h.Reload).Methods(http.MethodPost)
	return r
}

func doList(t *testing.T, r *mux.Router, url string) ProductListResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProductListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestListProductsPipeline(t *testing.T) {
	r := testRouter()

	t.Run("plain list", func(t *testing.T) {
		resp := doList(t, r, "/api/products")
		assert.Equal(t, 6, resp.Total)
	})

	t.Run("category", func(t *testing.T) {
		resp := doList(t, r, "/api/products?category=sewing")
		assert.Equal(t, []int{5}, ids(resp.Products))
	})

	t.Run("search wins over category", func(t *testing.T) {
		resp := doList(t, r, "/api/products?search=пряжа&category=drawing")
		assert.Equal(t, []int{6}, ids(resp.Products))
	})

	t.Run("price and brand filters", func(t *testing.T) {
		resp := doList(t, r, "/api/products?minPrice=800&maxPrice=1500&brand=Сонет&brand=Ладога")
		assert.Equal(t, []int{1, 3}, ids(resp.Products))
	})

	t.Run("sort", func(t *testing.T) {
		resp := doList(t, r, "/api/products?category=drawing&sort=price-asc")
		assert.Equal(t, []int{3, 1, 4, 2}, ids(resp.Products))
	})
}

func TestGetProductHandler(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var p Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Цветные карандаши", p.Name)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRelatedHandler(t *testing.T) {
	r := testRouter()

	resp := doList(t, r, "/api/products/2/related?limit=2")
	assert.Equal(t, []int{1, 3}, ids(resp.Products))
}

func TestListBrandsHandler(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/brands", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var brands []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &brands))
	assert.Len(t, brands, 6)
}

func TestReloadWithoutDB(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/catalog/reload", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
