package repo

import (
	"sync"
	"time"

	"github.com/rogerio-castellano/bakery-api/internal/models"
)

// InMemoryStore holds bakeries and baked goods for the in-memory repositories.
// Both tables share one lock so the bakery_id reference can be checked on insert.
type InMemoryStore struct {
	mu              sync.RWMutex
	bakeries        []models.Bakery
	bakedGoods      []models.BakedGood
	nextBakeryID    int
	nextBakedGoodID int
	now             func() time.Time
}

// NewInMemoryStore creates an empty store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		nextBakeryID:    1,
		nextBakedGoodID: 1,
		now:             time.Now,
	}
}

// Clear drops every row and resets the id sequences.
func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bakeries = nil
	s.bakedGoods = nil
	s.nextBakeryID = 1
	s.nextBakedGoodID = 1
}

// touch returns a timestamp strictly after prev.
func (s *InMemoryStore) touch(prev time.Time) time.Time {
	t := s.now().UTC()
	if !t.After(prev) {
		t = prev.Add(time.Microsecond)
	}
	return t
}

func (s *InMemoryStore) bakeryIndex(id int) int {
	for i, b := range s.bakeries {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func (s *InMemoryStore) bakedGoodIndex(id int) int {
	for i, g := range s.bakedGoods {
		if g.ID == id {
			return i
		}
	}
	return -1
}

// withBakedGoods returns a copy of b carrying its baked goods, ordered by id.
func (s *InMemoryStore) withBakedGoods(b models.Bakery) models.Bakery {
	b.BakedGoods = []models.BakedGood{}
	for _, g := range s.bakedGoods {
		if g.BakeryID == b.ID {
			g.Bakery = nil
			b.BakedGoods = append(b.BakedGoods, g)
		}
	}
	return b
}

// withBakery returns a copy of g carrying its owning bakery without children.
func (s *InMemoryStore) withBakery(g models.BakedGood) models.BakedGood {
	if i := s.bakeryIndex(g.BakeryID); i >= 0 {
		b := s.bakeries[i]
		b.BakedGoods = nil
		g.Bakery = &b
	}
	return g
}
