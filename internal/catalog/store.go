package catalog

import (
	"strings"
	"sync"
)

// Store holds the product/category corpus and answers read-only
// queries over it. The corpus is fixed after load (Replace only swaps
// it wholesale, it never edits records); all queries are total:
// unknown identifiers yield empty results, never an error.
type Store struct {
	mu         sync.RWMutex
	products   []Product
	categories []Category
	byID       map[int]int // product id -> index in products
}

// NewStore creates a store over the embedded fixture corpus
func NewStore() *Store {
	return NewStoreFromProducts(products, categories)
}

// NewStoreFromProducts creates a store over an injected corpus. The
// slices are taken as-is; insertion order is the catalog order used by
// every query.
func NewStoreFromProducts(ps []Product, cs []Category) *Store {
	s := &Store{}
	s.replace(ps, cs)
	return s
}

// Replace swaps the whole product corpus, keeping categories
func (s *Store) Replace(ps []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setProducts(ps)
}

func (s *Store) replace(ps []Product, cs []Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = cs
	s.setProducts(ps)
}

func (s *Store) setProducts(ps []Product) {
	s.products = ps
	s.byID = make(map[int]int, len(ps))
	for i, p := range ps {
		s.byID[p.ID] = i
	}
}

// Products returns the whole corpus in catalog order
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// Categories returns all categories in catalog order
func (s *Store) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories
}

// ByCategory returns products in the given category, or the whole
// corpus when categoryID is empty. Unknown ids yield an empty slice.
func (s *Store) ByCategory(categoryID string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if categoryID == "" {
		return s.products
	}
	out := []Product{}
	for _, p := range s.products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// ByID returns the product with the given id, or false when absent
func (s *Store) ByID(id int) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// Popular returns products flagged popular, in catalog order
func (s *Store) Popular() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Product{}
	for _, p := range s.products {
		if p.IsPopular {
			out = append(out, p)
		}
	}
	return out
}

// New returns products flagged new, in catalog order
func (s *Store) New() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Product{}
	for _, p := range s.products {
		if p.IsNew {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to limit other products from the same category as
// p, excluding p itself, in catalog order.
func (s *Store) Related(p Product, limit int) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = 4
	}
	out := []Product{}
	for _, q := range s.products {
		if q.Category == p.Category && q.ID != p.ID {
			out = append(out, q)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// searchLimit caps Search results for the dropdown
const searchLimit = 5

// Search matches products whose name, description, brand or category
// contains every whitespace-separated token of the query as a
// case-insensitive substring. An empty or blank query matches nothing.
func (s *Store) Search(query string) []Product {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return []Product{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Product{}
	for _, p := range s.products {
		text := strings.ToLower(p.Name + " " + p.Description + " " + p.Brand + " " + p.Category)
		match := true
		for _, term := range terms {
			if !strings.Contains(text, term) {
				match = false
				break
			}
		}
		if match {
			out = append(out, p)
			if len(out) == searchLimit {
				break
			}
		}
	}
	return out
}

// Brands returns the distinct brands of the corpus, first-seen order
func (s *Store) Brands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := map[string]struct{}{}
	out := []string{}
	for _, p := range s.products {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		out = append(out, p.Brand)
	}
	return out
}
