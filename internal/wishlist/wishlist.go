package wishlist

// Set is the wishlist membership set for one session. Toggle semantics:
// adding a present id removes it.
type Set struct {
	ids   map[string]bool
	order []string
}

func NewSet() *Set {
	return &Set{ids: make(map[string]bool)}
}

// Toggle flips membership and reports whether the id is wishlisted
// afterwards.
func (s *Set) Toggle(productID string) bool {
	if s.ids[productID] {
		delete(s.ids, productID)
		for i, id := range s.order {
			if id == productID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	s.ids[productID] = true
	s.order = append(s.order, productID)
	return true
}

func (s *Set) IsWishlisted(productID string) bool {
	return s.ids[productID]
}

func (s *Set) Items() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Set) Len() int { return len(s.order) }
