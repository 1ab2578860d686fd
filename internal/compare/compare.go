package compare

import "github.com/martify/go-storefront/internal/catalog"

// MaxItems caps how many products can sit in a compare set.
const MaxItems = 4

// Set is an ordered compare selection. Duplicate and over-capacity adds
// are silent no-ops, matching the storefront behavior.
type Set struct {
	items []catalog.Product
}

func NewSet() *Set {
	return &Set{}
}

func (s *Set) Add(p catalog.Product) {
	if len(s.items) >= MaxItems {
		return
	}
	for i := range s.items {
		if s.items[i].ID == p.ID {
			return
		}
	}
	s.items = append(s.items, p)
}

func (s *Set) Remove(productID string) {
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *Set) Clear() {
	s.items = nil
}

func (s *Set) IsComparing(productID string) bool {
	for i := range s.items {
		if s.items[i].ID == productID {
			return true
		}
	}
	return false
}

func (s *Set) Items() []catalog.Product {
	out := make([]catalog.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Set) Len() int { return len(s.items) }
