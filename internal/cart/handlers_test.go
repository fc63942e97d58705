package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "craft-store/internal/http/middleware"
	"craft-store/internal/storage"
)

func testCartRouter() *mux.Router {
	cs := testCatalog()
	h := NewHandler(NewManager(storage.NewMemory(), cs), cs)

	r := mux.NewRouter()
	r.Use(mw.WithClientID)
	r.HandleFunc("/api/cart", h.GetCart).Methods(http.MethodGet)
	r.HandleFunc("/api/cart", h.ClearCart).Methods(http.MethodDelete)
	r.HandleFunc("/api/cart/items", h.AddItem).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/items/{productId:[0-9]+}", h.UpdateItem).Methods(http.MethodPut)
	r.HandleFunc("/api/cart/items/{productId:[0-9]+}", h.RemoveItem).Methods(http.MethodDelete)
	return r
}

// client keeps the craft_client cookie across requests like a browser
type client struct {
	t      *testing.T
	router *mux.Router
	cookie *http.Cookie
}

func (c *client) do(method, url, body string) (*httptest.ResponseRecorder, State) {
	c.t.Helper()

	req := httptest.NewRequest(method, url, strings.NewReader(body))
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "craft_client" {
			c.cookie = ck
		}
	}

	var state State
	if rec.Code == http.StatusOK {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &state))
	}
	return rec, state
}

func TestCartHTTPFlow(t *testing.T) {
	c := &client{t: t, router: testCartRouter()}

	rec, state := c.do(http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, state.Lines)
	require.NotNil(t, c.cookie, "first contact mints a client cookie")

	_, state = c.do(http.MethodPost, "/api/cart/items", `{"productId":1,"quantity":2}`)
	assert.Equal(t, 2, state.ItemCount)
	assert.Equal(t, 2000.0, state.TotalPrice)

	_, state = c.do(http.MethodPost, "/api/cart/items", `{"productId":2,"quantity":1}`)
	assert.Equal(t, 3, state.ItemCount)
	assert.Equal(t, 2500.0, state.TotalPrice)

	_, state = c.do(http.MethodPut, "/api/cart/items/1", `{"quantity":1}`)
	assert.Equal(t, 1500.0, state.TotalPrice)

	// the cart belongs to the cookie, not the request
	_, state = c.do(http.MethodGet, "/api/cart", "")
	require.Len(t, state.Lines, 2)

	_, state = c.do(http.MethodDelete, "/api/cart/items/2", "")
	require.Len(t, state.Lines, 1)

	_, state = c.do(http.MethodDelete, "/api/cart", "")
	assert.Empty(t, state.Lines)
	assert.Equal(t, 0, state.ItemCount)
}

func TestAddUnknownProduct(t *testing.T) {
	c := &client{t: t, router: testCartRouter()}

	rec, _ := c.do(http.MethodPost, "/api/cart/items", `{"productId":999,"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartsAreIsolatedPerClient(t *testing.T) {
	router := testCartRouter()
	alice := &client{t: t, router: router}
	bob := &client{t: t, router: router}

	alice.do(http.MethodPost, "/api/cart/items", `{"productId":1,"quantity":1}`)
	_, bobState := bob.do(http.MethodGet, "/api/cart", "")

	assert.Empty(t, bobState.Lines)
	_, aliceState := alice.do(http.MethodGet, "/api/cart", "")
	assert.Equal(t, 1, aliceState.ItemCount)
}
