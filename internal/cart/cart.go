// Package cart implements the shopping cart engine: an ordered list of
// product-quantity lines with derived aggregates, persisted through a
// storage adapter on every mutation.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"craft-store/internal/catalog"
	"craft-store/internal/logger"
	"craft-store/internal/storage"
)

// Line is one product-quantity pair in the cart. This is also the
// persisted form: the cart stores product references, never price
// snapshots, so totals always reflect current catalog prices.
type Line struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// State is an immutable snapshot of the cart returned by every
// mutator, so callers re-read instead of subscribing to changes.
// The aggregates are always recomputed from Lines.
type State struct {
	Lines      []Line  `json:"lines"`
	ItemCount  int     `json:"item_count"`
	TotalPrice float64 `json:"total_price"`
}

// PriceLookup resolves current unit prices; *catalog.Store satisfies it
type PriceLookup interface {
	ByID(id int) (catalog.Product, bool)
}

// Engine holds the cart bound to one storage key. A mutex guards every
// read-modify-write so the invariants hold under concurrent requests
// for the same client.
type Engine struct {
	mu      sync.Mutex
	kv      storage.KV
	key     string
	catalog PriceLookup
	lines   []Line
}

// NewEngine loads the cart persisted under key. Missing or corrupt
// stored state yields an empty cart, never an error.
func NewEngine(ctx context.Context, kv storage.KV, key string, prices PriceLookup) *Engine {
	e := &Engine{kv: kv, key: key, catalog: prices}

	raw, err := kv.Get(ctx, key)
	if err != nil {
		if err != storage.ErrNotFound {
			logger.Warnf("cart %s: load failed, starting empty: %v", key, err)
		}
		return e
	}

	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		logger.Warnf("cart %s: corrupt stored state, starting empty: %v", key, err)
		return e
	}
	// drop lines an older writer may have left at quantity <= 0
	for _, l := range lines {
		if l.Quantity >= 1 {
			e.lines = append(e.lines, l)
		}
	}
	return e
}

// Add merges quantity into the line for p, appending a new line on
// first add. Non-positive quantities are clamped to 1.
func (e *Engine) Add(ctx context.Context, p catalog.Product, quantity int) (State, error) {
	if quantity < 1 {
		quantity = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	found := false
	for i := range e.lines {
		if e.lines[i].ProductID == p.ID {
			e.lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		e.lines = append(e.lines, Line{ProductID: p.ID, Quantity: quantity})
	}
	return e.snapshot(), e.persist(ctx)
}

// Remove deletes the line for productID; absent ids are a no-op
func (e *Engine) Remove(ctx context.Context, productID int) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].ProductID == productID {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			return e.snapshot(), e.persist(ctx)
		}
	}
	return e.snapshot(), nil
}

// SetQuantity sets the line for productID to exactly quantity. A
// quantity below 1 removes the line; an absent id is a no-op.
func (e *Engine) SetQuantity(ctx context.Context, productID, quantity int) (State, error) {
	if quantity < 1 {
		return e.Remove(ctx, productID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].ProductID == productID {
			e.lines[i].Quantity = quantity
			return e.snapshot(), e.persist(ctx)
		}
	}
	return e.snapshot(), nil
}

// Clear empties the cart
func (e *Engine) Clear(ctx context.Context) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lines = nil
	return e.snapshot(), e.persist(ctx)
}

// State returns the current snapshot
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// ItemCount is the sum of all line quantities
func (e *Engine) ItemCount() int {
	return e.State().ItemCount
}

// TotalPrice is the sum of quantity times current catalog unit price.
// Lines whose product left the catalog contribute nothing.
func (e *Engine) TotalPrice() float64 {
	return e.State().TotalPrice
}

func (e *Engine) snapshot() State {
	s := State{Lines: make([]Line, len(e.lines))}
	copy(s.Lines, e.lines)
	for _, l := range e.lines {
		s.ItemCount += l.Quantity
		if p, ok := e.catalog.ByID(l.ProductID); ok {
			s.TotalPrice += p.Price * float64(l.Quantity)
		}
	}
	return s
}

func (e *Engine) persist(ctx context.Context) error {
	lines := e.lines
	if lines == nil {
		lines = []Line{} // stored form is always a list
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return e.kv.Set(ctx, e.key, raw)
}
