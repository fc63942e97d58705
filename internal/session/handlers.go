package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"craft-store/internal/auth"
	mw "craft-store/internal/http/middleware"
	"craft-store/internal/logger"

	"github.com/gorilla/mux"
)

const tokenTTL = 24 * time.Hour

// Handler exposes the session store over HTTP, one session per client id
type Handler struct {
	sessions *Manager
}

// NewHandler creates a new session handler
func NewHandler(sessions *Manager) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) store(r *http.Request) *Store {
	return h.sessions.Load(r.Context(), mw.ClientID(r.Context()))
}

// sessionResponse is returned by login/register/get. Token is the mock
// bearer token, omitted when JWT_SECRET is not configured.
type sessionResponse struct {
	User  User   `json:"user"`
	Token string `json:"token,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/session/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.store(r).Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.respond(user))
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/session/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.store(r).Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.respond(user))
}

// Logout handles POST /api/session/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store(r).Logout(r.Context()); err != nil {
		logger.Errorf("Logout persist: %v", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSession handles GET /api/session
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	user, ok := h.store(r).Current()
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{User: user})
}

// ToggleFavorite handles POST /api/session/favorites/{productId}
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(mux.Vars(r)["productId"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	user, err := h.store(r).ToggleFavorite(r.Context(), productID)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{User: user})
}

func (h *Handler) respond(user User) sessionResponse {
	resp := sessionResponse{User: user}
	token, err := auth.IssueToken(user.Email, []string{"customer"}, tokenTTL)
	if err != nil {
		logger.Debugf("session token not issued: %v", err)
		return resp
	}
	resp.Token = token
	return resp
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrMissingFields):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotAuthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		logger.Errorf("session: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
