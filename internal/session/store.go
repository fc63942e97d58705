// Package session implements the mocked user identity: two states,
// anonymous and authenticated, persisted through a storage adapter.
// There is no real credential verification anywhere in here.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"craft-store/internal/logger"
	"craft-store/internal/storage"
)

// mockName is the display name synthesized by Login, which has no real
// account to pull a name from
const mockName = "Тестовый Пользователь"

// mockUserID is the single mock account id
const mockUserID = 1

var (
	// ErrInvalidCredentials rejects a login with an empty email or password
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrMissingFields rejects a registration with any empty field
	ErrMissingFields = errors.New("all fields are required")
)

// Store holds the session bound to one storage key. Anonymous is the
// zero state; Login and Register move to authenticated, Logout back.
type Store struct {
	mu   sync.Mutex
	kv   storage.KV
	key  string
	user *User
}

// NewStore loads the session persisted under key. Missing or corrupt
// stored state means logged out, never an error.
func NewStore(ctx context.Context, kv storage.KV, key string) *Store {
	s := &Store{kv: kv, key: key}

	raw, err := kv.Get(ctx, key)
	if err != nil {
		if err != storage.ErrNotFound {
			logger.Warnf("session %s: load failed, treating as logged out: %v", key, err)
		}
		return s
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil || u.Email == "" {
		logger.Warnf("session %s: corrupt stored state, treating as logged out", key)
		return s
	}
	s.user = &u
	return s
}

// Current returns the logged-in user, or false when anonymous
func (s *Store) Current() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Login authenticates the mock account. Any non-empty email/password
// pair succeeds; calling it while already authenticated overwrites the
// session.
func (s *Store) Login(ctx context.Context, email, password string) (User, error) {
	if email == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}
	return s.establish(ctx, User{
		ID:        mockUserID,
		Name:      mockName,
		Email:     email,
		Favorites: []int{},
		Orders:    []Order{},
	})
}

// Register creates the mock account with the given name and email.
// All three fields must be non-empty.
func (s *Store) Register(ctx context.Context, name, email, password string) (User, error) {
	if name == "" || email == "" || password == "" {
		return User{}, ErrMissingFields
	}
	return s.establish(ctx, User{
		ID:        mockUserID,
		Name:      name,
		Email:     email,
		Favorites: []int{},
		Orders:    []Order{},
	})
}

// Logout clears the session unconditionally
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return s.kv.Delete(ctx, s.key)
}

// ToggleFavorite adds or removes a product id on the user's favorites
func (s *Store) ToggleFavorite(ctx context.Context, productID int) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return User{}, ErrNotAuthenticated
	}
	for i, id := range s.user.Favorites {
		if id == productID {
			s.user.Favorites = append(s.user.Favorites[:i], s.user.Favorites[i+1:]...)
			return *s.user, s.persist(ctx)
		}
	}
	s.user.Favorites = append(s.user.Favorites, productID)
	return *s.user, s.persist(ctx)
}

// AppendOrder records a placed order on the user
func (s *Store) AppendOrder(ctx context.Context, o Order) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return User{}, ErrNotAuthenticated
	}
	s.user.Orders = append(s.user.Orders, o)
	return *s.user, s.persist(ctx)
}

// ErrNotAuthenticated rejects account operations while anonymous
var ErrNotAuthenticated = errors.New("not authenticated")

func (s *Store) establish(ctx context.Context, u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	return u, s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.user)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key, raw)
}
